// Package lifecycle declares the optional capabilities a view-model can
// implement to receive navigation, tab, window and popup notifications.
// Dispatch is by interface assertion; a view-model implements only what it needs.
package lifecycle

import (
	"context"

	"github.com/bnema/navkit/internal/domain/entity"
)

// ParameterReceiver accepts named parameters. It returns false when the key
// is unknown or the value has the wrong type; such parameters are skipped.
type ParameterReceiver interface {
	ApplyParameter(key string, value any) bool
}

// ParametersSetAware is notified once, after all parameters were applied,
// with the caller-supplied parameters.
type ParametersSetAware interface {
	OnParametersSet(params *entity.Parameters)
}

type NavigatedAware interface {
	OnNavigatedTo()
	OnNavigatedFrom()
}

type NavigatedAwareAsync interface {
	OnNavigatedToAsync(ctx context.Context) error
	OnNavigatedFromAsync(ctx context.Context) error
}

type AppearingAware interface {
	OnPageAppearing()
	OnPageDisappearing()
}

type AppearingAwareAsync interface {
	OnPageAppearingAsync(ctx context.Context) error
	OnPageDisappearingAsync(ctx context.Context) error
}

// PageUnloadAware is notified when the page is removed for good.
type PageUnloadAware interface {
	OnPageUnloaded()
}

type WindowActivationAware interface {
	OnWindowActivated()
}

type WindowActivationAwareAsync interface {
	OnWindowActivatedAsync(ctx context.Context) error
}

// RootPageAware is notified on the bottom page of a stack after a
// navigate-to-root.
type RootPageAware interface {
	OnNavigatedToRoot(params *entity.Parameters)
}

// RootPageAwareAsync is awaited by navigate-to-root; its error fails the request.
type RootPageAwareAsync interface {
	OnNavigatedToRootAsync(ctx context.Context, params *entity.Parameters) error
}

// TabComponent is the view-model of a page hosted in a tab container.
type TabComponent interface {
	OnTabSelected()
	OnTabUnselected()
}

type TabComponentAsync interface {
	OnTabSelectedAsync(ctx context.Context) error
	OnTabUnselectedAsync(ctx context.Context) error
}

// TabHost is the view-model of a tab container.
// SelectedTabIndex stays within [0, len(Tabs())) whenever Tabs is non-empty.
type TabHost interface {
	SelectedTabIndex() int
	SetSelectedTabIndex(index int)
	Tabs() []TabComponent
	// OnSelectedTabIndexChanged registers fn and returns a function removing it.
	OnSelectedTabIndexChanged(fn func(index int)) (unsubscribe func())
}

// PopupDismissible is the view-model side of a popup's user-driven dismissal.
type PopupDismissible interface {
	ShouldDismissOnBackRequested() bool
	ShouldDismissOnBackgroundTapped() bool
	// NotifyCancellation cancels a pending result, if any.
	NotifyCancellation()
}
