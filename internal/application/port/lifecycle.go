package port

import (
	"context"

	"github.com/bnema/navkit/internal/domain/entity"
)

// LifecycleDispatcher delivers notifications to whichever capabilities a
// view-model implements. Implementations never propagate hook failures
// except from DispatchNavigatedToRoot.
type LifecycleDispatcher interface {
	DispatchPageEvent(ctx context.Context, vm any, event PageEvent)
	DispatchParametersSet(ctx context.Context, vm any, params *entity.Parameters)
	DispatchWindowActivated(ctx context.Context, vm any)
	DispatchNavigatedToRoot(ctx context.Context, vm any, params *entity.Parameters) error
	DispatchTabSelected(ctx context.Context, tab any)
	DispatchTabUnselected(ctx context.Context, tab any)
}
