package dispatcher

import (
	"context"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/ui/input"
)

// TabStepper moves the current tab of the displayed tab container.
type TabStepper interface {
	StepTab(delta int) bool
}

// KeyboardDispatcherConfig holds the collaborators of a KeyboardDispatcher.
type KeyboardDispatcherConfig struct {
	Navigator *usecase.NavigateUseCase
	Popups    *usecase.ManagePopupsUseCase
	// PopupSurface is consulted to route back requests to the top popup.
	PopupSurface port.PopupSurface
	Tabs         TabStepper
}

// KeyboardDispatcher routes keyboard actions to the navigation use cases.
type KeyboardDispatcher struct {
	navigator    *usecase.NavigateUseCase
	popups       *usecase.ManagePopupsUseCase
	popupSurface port.PopupSurface
	tabs         TabStepper
	onQuit       func()
	onHelp       func()
}

// NewKeyboardDispatcher creates a new KeyboardDispatcher.
func NewKeyboardDispatcher(ctx context.Context, cfg KeyboardDispatcherConfig) *KeyboardDispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating keyboard dispatcher")

	return &KeyboardDispatcher{
		navigator:    cfg.Navigator,
		popups:       cfg.Popups,
		popupSurface: cfg.PopupSurface,
		tabs:         cfg.Tabs,
	}
}

// SetOnQuit sets the callback for quit action.
func (d *KeyboardDispatcher) SetOnQuit(fn func()) {
	d.onQuit = fn
}

// SetOnToggleHelp sets the callback for the help action.
func (d *KeyboardDispatcher) SetOnToggleHelp(fn func()) {
	d.onHelp = fn
}

// Dispatch routes a keyboard action. Failed results are returned as errors.
func (d *KeyboardDispatcher) Dispatch(ctx context.Context, action input.Action) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Msg("dispatching keyboard action")

	switch action {
	case input.ActionGoBack:
		if top := d.topPopup(); top != nil {
			top.SendBackRequested()
			return nil
		}
		return resultErr(d.navigator.Back(ctx))
	case input.ActionGoRoot:
		return resultErr(d.navigator.ToRoot(ctx, nil))

	case input.ActionNextTab:
		d.stepTab(1)
	case input.ActionPreviousTab:
		d.stepTab(-1)

	case input.ActionDismissPopup:
		if d.topPopup() == nil {
			return nil
		}
		return resultErr(d.popups.Dismiss(ctx, ""))

	case input.ActionToggleHelp:
		if d.onHelp != nil {
			d.onHelp()
		}

	case input.ActionQuit:
		if d.onQuit != nil {
			d.onQuit()
		}

	default:
		log.Warn().Str("action", string(action)).Msg("unhandled keyboard action")
	}

	return nil
}

func (d *KeyboardDispatcher) stepTab(delta int) {
	if d.tabs == nil || d.topPopup() != nil {
		return
	}
	d.tabs.StepTab(delta)
}

func (d *KeyboardDispatcher) topPopup() port.Page {
	if d.popupSurface == nil {
		return nil
	}
	stack := d.popupSurface.Stack()
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func resultErr(res entity.Result) error {
	if res.IsSuccess {
		return nil
	}
	return res.Err()
}
