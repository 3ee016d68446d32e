// Package demo registers the sample pages and view-models driven by
// `navkit run`.
package demo

import (
	"context"
	"fmt"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/infrastructure/container"
	"github.com/bnema/navkit/internal/ui/tui"
)

// Page and popup type names.
const (
	HomePage      = "HomePage"
	DetailsPage   = "DetailsPage"
	MainTabsPage  = "MainTabsPage"
	FeedPage      = "FeedPage"
	SettingsPage  = "SettingsPage"
	ConfirmPopup  = "ConfirmPopup"
	DefaultStart  = "//" + usecase.NavigationPageName + "/" + HomePage
	feedItemCount = 5
)

// Register adds the demo page types to catalog and maps their view-models.
// View-models resolve *usecase.NavigateUseCase and *usecase.ManagePopupsUseCase
// from c when they are created.
func Register(catalog *container.Catalog, registry *container.PageRegistry, c *container.Container) error {
	catalog.Add(
		contentType(HomePage),
		contentType(DetailsPage),
		port.PageType{Name: MainTabsPage, Family: port.FamilyPage, New: func() (port.Page, error) {
			return newMainTabs(c)
		}},
		port.PageType{Name: ConfirmPopup, Family: port.FamilyPopup, New: func() (port.Page, error) {
			return tui.NewPopupPage(ConfirmPopup), nil
		}},
	)

	mappings := []error{
		container.MapPage(registry, c, HomePage, func(c *container.Container) (*HomeViewModel, error) {
			nav, popups, err := services(c)
			if err != nil {
				return nil, err
			}
			return NewHomeViewModel(nav, popups), nil
		}),
		container.MapPage(registry, c, DetailsPage, func(c *container.Container) (*DetailsViewModel, error) {
			nav, _, err := services(c)
			if err != nil {
				return nil, err
			}
			return NewDetailsViewModel(nav), nil
		}),
		container.MapPage(registry, c, MainTabsPage, func(*container.Container) (*MainTabsViewModel, error) {
			return NewMainTabsViewModel(), nil
		}),
		container.MapPage(registry, c, ConfirmPopup, func(c *container.Container) (*ConfirmViewModel, error) {
			_, popups, err := services(c)
			if err != nil {
				return nil, err
			}
			return NewConfirmViewModel(popups), nil
		}),
	}
	for _, err := range mappings {
		if err != nil {
			return err
		}
	}
	return nil
}

func contentType(name string) port.PageType {
	return port.PageType{Name: name, Family: port.FamilyPage, New: func() (port.Page, error) {
		return tui.NewContentPage(name), nil
	}}
}

func services(c *container.Container) (*usecase.NavigateUseCase, *usecase.ManagePopupsUseCase, error) {
	nav, err := container.ResolveAs[*usecase.NavigateUseCase](c)
	if err != nil {
		return nil, nil, fmt.Errorf("demo navigator: %w", err)
	}
	popups, err := container.ResolveAs[*usecase.ManagePopupsUseCase](c)
	if err != nil {
		return nil, nil, fmt.Errorf("demo popups: %w", err)
	}
	return nav, popups, nil
}

// newMainTabs builds the tab container: a pushable feed tab and a plain
// settings tab. Tab pages are children of the container, so their
// view-models are bound here rather than by the page factory.
func newMainTabs(c *container.Container) (port.Page, error) {
	nav, popups, err := services(c)
	if err != nil {
		return nil, err
	}

	feed := tui.NewContentPage(FeedPage)
	feed.SetViewModel(NewFeedViewModel(nav))
	feedStack := tui.NewNavigationStack(usecase.NavigationPageName)
	if err := feedStack.Push(context.Background(), feed, false); err != nil {
		return nil, err
	}

	settings := tui.NewContentPage(SettingsPage)
	settings.SetViewModel(NewSettingsViewModel(popups))

	return tui.NewTabbedPage(MainTabsPage, feedStack, settings), nil
}
