package port

import (
	"context"

	"github.com/bnema/navkit/internal/domain/entity"
)

// PageID uniquely identifies a live page instance.
type PageID string

// PageEvent is a lifecycle signal raised by a page.
type PageEvent int

const (
	PageAppearing PageEvent = iota
	PageDisappearing
	PageNavigatedTo
	PageNavigatedFrom
	// PageUnloaded is raised once, when the page leaves the hierarchy for good.
	PageUnloaded
)

func (e PageEvent) String() string {
	switch e {
	case PageAppearing:
		return "appearing"
	case PageDisappearing:
		return "disappearing"
	case PageNavigatedTo:
		return "navigated_to"
	case PageNavigatedFrom:
		return "navigated_from"
	case PageUnloaded:
		return "unloaded"
	default:
		return "unknown"
	}
}

// PageEventHandler receives the signals of one page.
type PageEventHandler func(page Page, event PageEvent)

// Page is a toolkit page instance.
type Page interface {
	ID() PageID
	// TypeName is the registered name of the page type.
	TypeName() string
	ViewModel() any
	SetViewModel(vm any)
	// Subscribe registers handler and returns a function removing it.
	Subscribe(handler PageEventHandler) (unsubscribe func())
	// SendBackRequested offers a back request to the page. It returns true
	// when the page handled it.
	SendBackRequested() bool
}

// NavigationContainer is a page holding a push/pop stack of pages.
type NavigationContainer interface {
	Page
	Push(ctx context.Context, page Page, animated bool) error
	// Pop removes the top page. It returns nil when nothing could be popped.
	Pop(ctx context.Context, animated bool) (Page, error)
	PopToRoot(ctx context.Context, animated bool) error
	// Stack returns the pages bottom first.
	Stack() []Page
	CurrentPage() Page
}

// TabContainer is a page whose children are tabs with one current tab.
type TabContainer interface {
	Page
	Children() []Page
	CurrentTab() Page
	SetCurrentTab(page Page)
	// OnCurrentTabChanged registers fn and returns a function removing it.
	OnCurrentTabChanged(fn func()) (unsubscribe func())
}

// PageFamily separates page types from popup types during name resolution.
type PageFamily int

const (
	FamilyPage PageFamily = iota
	FamilyPopup
)

func (f PageFamily) String() string {
	if f == FamilyPopup {
		return "popup"
	}
	return "page"
}

// PageConstructor creates a fresh page instance.
type PageConstructor func() (Page, error)

// PageType describes a registered page type.
type PageType struct {
	Name   string
	Family PageFamily
	New    PageConstructor
}

// PageDescriptor is a resolved path segment, ready for instantiation.
type PageDescriptor struct {
	Type    PageType
	Segment entity.Segment
	// Parameters holds the segment's own query.
	Parameters *entity.Parameters
}

// PageSource enumerates the registered page types.
type PageSource interface {
	PageTypes() []PageType
}
