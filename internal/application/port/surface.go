package port

import "context"

// Surface is the window-level host of the root page.
type Surface interface {
	Root() Page
	// SetRoot replaces the root page. The previous root is unloaded.
	SetRoot(ctx context.Context, page Page, animated bool) error
	// NewNavigationContainer creates an empty pushable container.
	NewNavigationContainer() (NavigationContainer, error)
}

// PopupSurface is the modal layer displayed above the root page.
type PopupSurface interface {
	Push(ctx context.Context, page Page, animated bool) error
	// Pop removes the top-most popup.
	Pop(ctx context.Context, animated bool) error
	Remove(ctx context.Context, page Page, animated bool) error
	PopAll(ctx context.Context, animated bool) error
	// Stack returns the displayed popups bottom first.
	Stack() []Page
}

// WindowEvents exposes the window notifications the navigation layer needs.
type WindowEvents interface {
	// OnActivated registers fn and returns a function removing it.
	OnActivated(fn func()) (unsubscribe func())
}
