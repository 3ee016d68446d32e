package usecase

import (
	"context"
	"errors"

	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/logging"
)

// PopupSuffix and PageSuffix replace "ViewModel" when a name is derived from
// a view-model type.
const (
	PopupSuffix = "Popup"
	PageSuffix  = "Page"
)

// PresentForResult presents the popup registered under name and waits for
// its view-model to settle the completion passed under entity.CompletionKey.
func PresentForResult[T any](ctx context.Context, popups *ManagePopupsUseCase, name string, params *entity.Parameters, opts ...PopupOption) entity.ValueResult[T] {
	log := logging.FromContext(logging.WithPopup(ctx, name))

	completion := entity.NewCompletion[T]()
	withCompletion := params.Clone().Set(entity.CompletionKey, completion)

	if res := popups.Present(ctx, name, withCompletion, opts...); res.IsFailure() {
		return entity.FailValue[T](entity.ErrorCodeInvalidState, "failed to display popup %s: %s", name, res.ErrorMessage)
	}

	value, err := completion.Wait(ctx)
	if err == nil {
		return entity.OkValue(value)
	}

	if ctx.Err() != nil {
		// The caller gave up; settle the completion so late results are dropped.
		completion.TryCancel()
	}

	dismissCtx := context.WithoutCancel(ctx)
	if errors.Is(err, entity.ErrCompletionCancelled) || ctx.Err() != nil {
		log.Debug().Err(err).Msg("popup result cancelled")
		res := entity.FailValue[T](entity.ErrorCodeCancelled, "popup %s was cancelled", name)
		if dismissed := popups.Dismiss(dismissCtx, name, opts...); dismissed.IsFailure() {
			res.Result = res.WithMessage("Additional info: %s", dismissed.ErrorMessage)
		}
		return res
	}

	log.Error().Err(err).Msg("popup result faulted")
	res := entity.FailValue[T](entity.ErrorCodeUnknown, "%s", err.Error())
	if dismissed := popups.Dismiss(dismissCtx, name, opts...); dismissed.IsFailure() {
		res.Result = res.WithMessage("Additional info: %s", dismissed.ErrorMessage)
	}
	return res
}

// PresentFor presents the popup named after VM ("ConfirmViewModel" ->
// "ConfirmPopup") and waits for its result.
func PresentFor[VM any, T any](ctx context.Context, popups *ManagePopupsUseCase, params *entity.Parameters, opts ...PopupOption) entity.ValueResult[T] {
	return PresentForResult[T](ctx, popups, PageNameFor[VM](PopupSuffix), params, opts...)
}

// DismissFor dismisses the popup named after VM.
func DismissFor[VM any](ctx context.Context, popups *ManagePopupsUseCase, opts ...PopupOption) entity.Result {
	return popups.Dismiss(ctx, PageNameFor[VM](PopupSuffix), opts...)
}
