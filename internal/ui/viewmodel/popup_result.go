package viewmodel

import (
	"context"
	"sync"

	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/domain/lifecycle"
)

// Dismisser removes a displayed popup by name.
type Dismisser interface {
	Dismiss(ctx context.Context, name string, opts ...usecase.PopupOption) entity.Result
}

// PopupResult is the view-model side of a popup presented for a result.
// Embed a *PopupResult[T] in the popup view-model; it picks the pending
// completion out of the presentation parameters.
type PopupResult[T any] struct {
	popups Dismisser
	name   string

	mu         sync.Mutex
	completion *entity.Completion[T]

	// DismissOnBackRequested cancels the result on a back request.
	DismissOnBackRequested bool
	// DismissOnBackgroundTapped cancels the result when the area outside
	// the popup is tapped.
	DismissOnBackgroundTapped bool
}

var (
	_ lifecycle.PopupDismissible   = (*PopupResult[int])(nil)
	_ lifecycle.ParametersSetAware = (*PopupResult[int])(nil)
)

// NewPopupResult creates the result holder of the popup registered as name.
func NewPopupResult[T any](popups Dismisser, name string) *PopupResult[T] {
	return &PopupResult[T]{
		popups:                    popups,
		name:                      name,
		DismissOnBackgroundTapped: true,
	}
}

func (r *PopupResult[T]) Name() string { return r.name }

func (r *PopupResult[T]) OnParametersSet(params *entity.Parameters) {
	completion, ok := entity.Lookup[*entity.Completion[T]](params, entity.CompletionKey)
	if !ok || completion == nil {
		return
	}
	r.mu.Lock()
	r.completion = completion
	r.mu.Unlock()
}

// Pending reports whether a presenter is still waiting for the result.
func (r *PopupResult[T]) Pending() bool {
	c := r.current()
	return c != nil && c.State() == entity.CompletionPending
}

// Complete delivers value to the presenter and dismisses the popup.
func (r *PopupResult[T]) Complete(ctx context.Context, value T) entity.Result {
	if c := r.current(); c != nil {
		c.TryResolve(value)
	}
	return r.dismiss(ctx)
}

// Cancel cancels the pending result. The presenter dismisses the popup when
// it was waiting; otherwise the popup dismisses itself.
func (r *PopupResult[T]) Cancel(ctx context.Context) entity.Result {
	if c := r.current(); c != nil && c.TryCancel() {
		return entity.Ok()
	}
	return r.dismiss(ctx)
}

// Fail faults the pending result with err.
func (r *PopupResult[T]) Fail(ctx context.Context, err error) entity.Result {
	if c := r.current(); c != nil && c.TryFault(err) {
		return entity.Ok()
	}
	return r.dismiss(ctx)
}

func (r *PopupResult[T]) ShouldDismissOnBackRequested() bool    { return r.DismissOnBackRequested }
func (r *PopupResult[T]) ShouldDismissOnBackgroundTapped() bool { return r.DismissOnBackgroundTapped }

func (r *PopupResult[T]) NotifyCancellation() {
	if c := r.current(); c != nil {
		c.TryCancel()
	}
}

func (r *PopupResult[T]) current() *entity.Completion[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completion
}

func (r *PopupResult[T]) dismiss(ctx context.Context) entity.Result {
	if r.popups == nil {
		return entity.Fail(entity.ErrorCodeInvalidState, "popup %s has no dismisser", r.name)
	}
	return r.popups.Dismiss(ctx, r.name)
}
