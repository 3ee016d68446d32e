// Package dispatcher routes lifecycle notifications and keyboard actions to
// the view-models and use cases that handle them.
package dispatcher

import (
	"context"
	"fmt"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/domain/lifecycle"
	"github.com/bnema/navkit/internal/logging"
)

// TaskRunner runs an asynchronous hook.
type TaskRunner func(task func())

// ErrorSink receives the failures of asynchronous hooks.
type ErrorSink func(ctx context.Context, hook string, err error)

// GoRunner runs each task on its own goroutine.
func GoRunner(task func()) {
	go task()
}

// InlineRunner runs tasks synchronously.
func InlineRunner(task func()) {
	task()
}

// Option configures a LifecycleDispatcher.
type Option func(*LifecycleDispatcher)

// WithTaskRunner replaces the runner used for asynchronous hooks.
func WithTaskRunner(runner TaskRunner) Option {
	return func(d *LifecycleDispatcher) {
		d.runner = runner
	}
}

// WithErrorSink replaces the default logging sink.
func WithErrorSink(sink ErrorSink) Option {
	return func(d *LifecycleDispatcher) {
		d.sink = sink
	}
}

// WithLogger replaces how the default sink finds its logger.
func WithLogger(logger port.LoggerFromContext) Option {
	return func(d *LifecycleDispatcher) {
		d.logger = logger
	}
}

// LifecycleDispatcher implements port.LifecycleDispatcher. Synchronous hooks
// run inline; asynchronous hooks are fire-and-forget and report failures to
// the error sink.
type LifecycleDispatcher struct {
	runner TaskRunner
	sink   ErrorSink
	logger port.LoggerFromContext
}

var _ port.LifecycleDispatcher = (*LifecycleDispatcher)(nil)

// NewLifecycleDispatcher creates a dispatcher.
func NewLifecycleDispatcher(opts ...Option) *LifecycleDispatcher {
	d := &LifecycleDispatcher{
		runner: GoRunner,
		logger: logging.FromContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sink == nil {
		d.sink = d.logError
	}
	return d
}

func (d *LifecycleDispatcher) logError(ctx context.Context, hook string, err error) {
	d.logger(ctx).Error().Err(err).Str("hook", hook).Msg("lifecycle hook failed")
}

// DispatchPageEvent delivers a page signal.
func (d *LifecycleDispatcher) DispatchPageEvent(ctx context.Context, vm any, event port.PageEvent) {
	switch event {
	case port.PageAppearing:
		if h, ok := vm.(lifecycle.AppearingAware); ok {
			h.OnPageAppearing()
		}
		if h, ok := vm.(lifecycle.AppearingAwareAsync); ok {
			d.fireAndForget(ctx, "page_appearing", h.OnPageAppearingAsync)
		}
	case port.PageDisappearing:
		if h, ok := vm.(lifecycle.AppearingAware); ok {
			h.OnPageDisappearing()
		}
		if h, ok := vm.(lifecycle.AppearingAwareAsync); ok {
			d.fireAndForget(ctx, "page_disappearing", h.OnPageDisappearingAsync)
		}
	case port.PageNavigatedTo:
		if h, ok := vm.(lifecycle.NavigatedAware); ok {
			h.OnNavigatedTo()
		}
		if h, ok := vm.(lifecycle.NavigatedAwareAsync); ok {
			d.fireAndForget(ctx, "navigated_to", h.OnNavigatedToAsync)
		}
	case port.PageNavigatedFrom:
		if h, ok := vm.(lifecycle.NavigatedAware); ok {
			h.OnNavigatedFrom()
		}
		if h, ok := vm.(lifecycle.NavigatedAwareAsync); ok {
			d.fireAndForget(ctx, "navigated_from", h.OnNavigatedFromAsync)
		}
	case port.PageUnloaded:
		if h, ok := vm.(lifecycle.PageUnloadAware); ok {
			h.OnPageUnloaded()
		}
	}
}

// DispatchParametersSet notifies ParametersSetAware view-models.
func (d *LifecycleDispatcher) DispatchParametersSet(_ context.Context, vm any, params *entity.Parameters) {
	if h, ok := vm.(lifecycle.ParametersSetAware); ok {
		h.OnParametersSet(params)
	}
}

// DispatchWindowActivated notifies window-activation-aware view-models.
func (d *LifecycleDispatcher) DispatchWindowActivated(ctx context.Context, vm any) {
	if h, ok := vm.(lifecycle.WindowActivationAware); ok {
		h.OnWindowActivated()
	}
	if h, ok := vm.(lifecycle.WindowActivationAwareAsync); ok {
		d.fireAndForget(ctx, "window_activated", h.OnWindowActivatedAsync)
	}
}

// DispatchNavigatedToRoot runs the synchronous root hook, then awaits the
// asynchronous one and returns its error.
func (d *LifecycleDispatcher) DispatchNavigatedToRoot(ctx context.Context, vm any, params *entity.Parameters) (err error) {
	if h, ok := vm.(lifecycle.RootPageAware); ok {
		h.OnNavigatedToRoot(params)
	}
	h, ok := vm.(lifecycle.RootPageAwareAsync)
	if !ok {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("navigated_to_root panicked: %v", r)
		}
	}()
	return h.OnNavigatedToRootAsync(ctx, params)
}

// DispatchTabSelected notifies a tab view-model that it became current.
func (d *LifecycleDispatcher) DispatchTabSelected(ctx context.Context, tab any) {
	if h, ok := tab.(lifecycle.TabComponent); ok {
		h.OnTabSelected()
	}
	if h, ok := tab.(lifecycle.TabComponentAsync); ok {
		d.fireAndForget(ctx, "tab_selected", h.OnTabSelectedAsync)
	}
}

// DispatchTabUnselected notifies a tab view-model that it stopped being current.
func (d *LifecycleDispatcher) DispatchTabUnselected(ctx context.Context, tab any) {
	if h, ok := tab.(lifecycle.TabComponent); ok {
		h.OnTabUnselected()
	}
	if h, ok := tab.(lifecycle.TabComponentAsync); ok {
		d.fireAndForget(ctx, "tab_unselected", h.OnTabUnselectedAsync)
	}
}

func (d *LifecycleDispatcher) fireAndForget(ctx context.Context, hook string, fn func(context.Context) error) {
	hookCtx := context.WithoutCancel(ctx)
	d.runner(func() {
		defer func() {
			if r := recover(); r != nil {
				d.sink(hookCtx, hook, fmt.Errorf("%s panicked: %v", hook, r))
			}
		}()
		if err := fn(hookCtx); err != nil {
			d.sink(hookCtx, hook, err)
		}
	})
}
