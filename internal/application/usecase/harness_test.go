package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/domain/lifecycle"
	"github.com/bnema/navkit/internal/infrastructure/container"
	"github.com/bnema/navkit/internal/ui/coordinator"
	"github.com/bnema/navkit/internal/ui/dispatcher"
	"github.com/bnema/navkit/internal/ui/tui"
	"github.com/bnema/navkit/internal/ui/viewmodel"
)

type pageVM struct {
	Name string
	ID   string

	mu          sync.Mutex
	navigated   int
	activated   int
	rootParams  []string
	rootErr     error
	rootBlock   chan struct{}
	rootEntered chan struct{}
}

var pageSchema = lifecycle.NewSchema(
	lifecycle.Property("name", func(vm *pageVM) *string { return &vm.Name }),
	lifecycle.Property("id", func(vm *pageVM) *string { return &vm.ID }),
)

func (vm *pageVM) ApplyParameter(key string, value any) bool {
	return pageSchema.Apply(vm, key, value)
}

func (vm *pageVM) OnNavigatedTo() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.navigated++
}

func (vm *pageVM) OnNavigatedFrom() {}

func (vm *pageVM) OnWindowActivated() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.activated++
}

func (vm *pageVM) OnNavigatedToRoot(params *entity.Parameters) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.rootParams = params.Keys()
}

func (vm *pageVM) OnNavigatedToRootAsync(ctx context.Context, _ *entity.Parameters) error {
	if vm.rootEntered != nil {
		close(vm.rootEntered)
	}
	if vm.rootBlock != nil {
		select {
		case <-vm.rootBlock:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return vm.rootErr
}

func (vm *pageVM) activations() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.activated
}

type HomeViewModel struct{ pageVM }
type DetailsViewModel struct{ pageVM }

type MainTabsViewModel struct {
	*viewmodel.TabHostState
}

type ConfirmViewModel struct {
	*viewmodel.PopupResult[bool]
	Question string
}

func (vm *ConfirmViewModel) ApplyParameter(key string, value any) bool {
	if s, ok := value.(string); ok && key == "question" {
		vm.Question = s
		return true
	}
	return false
}

type harness struct {
	ctx        context.Context
	window     *tui.Window
	catalog    *container.Catalog
	registry   *container.PageRegistry
	container  *container.Container
	resolver   *usecase.PageResolver
	factory    *usecase.PageFactory
	dispatcher *dispatcher.LifecycleDispatcher
	nav        *usecase.NavigateUseCase
	popups     *usecase.ManagePopupsUseCase

	mu  sync.Mutex
	vms map[string][]any
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		ctx:       context.Background(),
		window:    tui.NewWindow(nil, nil),
		registry:  container.NewPageRegistry(),
		container: container.New(),
		vms:       make(map[string][]any),
	}
	h.dispatcher = dispatcher.NewLifecycleDispatcher(dispatcher.WithTaskRunner(dispatcher.InlineRunner))

	h.catalog = container.NewCatalog(
		contentType("HomePage"),
		contentType("DetailsPage"),
		contentType("SettingsPage"),
		port.PageType{Name: "MainTabsPage", Family: port.FamilyPage, New: func() (port.Page, error) {
			feed := tui.NewNavigationStack(usecase.NavigationPageName)
			if err := feed.Push(context.Background(), tui.NewContentPage("FeedPage"), false); err != nil {
				return nil, err
			}
			return tui.NewTabbedPage("MainTabsPage", feed, tui.NewContentPage("SettingsPage")), nil
		}},
		port.PageType{Name: "BrokenPage", Family: port.FamilyPage, New: func() (port.Page, error) {
			return nil, errors.New("broken constructor")
		}},
		popupType("ConfirmPopup"),
	)
	h.resolver = usecase.NewPageResolver(h.catalog, usecase.NameCaseSensitive, usecase.NavigationPageType(h.window))
	h.catalog.OnChange(h.resolver.Invalidate)

	mapVM(t, h, "HomePage", func() *HomeViewModel { return &HomeViewModel{} })
	mapVM(t, h, "DetailsPage", func() *DetailsViewModel { return &DetailsViewModel{} })
	mapVM(t, h, "MainTabsPage", func() *MainTabsViewModel {
		return &MainTabsViewModel{TabHostState: viewmodel.NewTabHostState()}
	})
	mapVM(t, h, "ConfirmPopup", func() *ConfirmViewModel {
		return &ConfirmViewModel{PopupResult: viewmodel.NewPopupResult[bool](h.popups, "ConfirmPopup")}
	})

	h.factory = usecase.NewPageFactory(usecase.PageFactoryConfig{
		Registry:   h.registry,
		ViewModels: h.container,
		Dispatcher: h.dispatcher,
	})
	h.factory.Use(coordinator.AttachTabs(h.dispatcher))

	h.nav = usecase.NewNavigateUseCase(h.ctx, usecase.NavigateUseCaseConfig{
		Resolver:   h.resolver,
		Factory:    h.factory,
		Surface:    h.window,
		Dispatcher: h.dispatcher,
		Window:     h.window,
	})
	h.popups = usecase.NewManagePopupsUseCase(h.ctx, usecase.ManagePopupsUseCaseConfig{
		Resolver: h.resolver,
		Factory:  h.factory,
		Surface:  h.window.Popups(),
	})
	t.Cleanup(func() {
		h.nav.Close()
		h.popups.Close()
	})
	return h
}

func contentType(name string) port.PageType {
	return port.PageType{Name: name, Family: port.FamilyPage, New: func() (port.Page, error) {
		return tui.NewContentPage(name), nil
	}}
}

func popupType(name string) port.PageType {
	return port.PageType{Name: name, Family: port.FamilyPopup, New: func() (port.Page, error) {
		return tui.NewPopupPage(name), nil
	}}
}

func mapVM[VM any](t *testing.T, h *harness, page string, newVM func() VM) {
	t.Helper()
	err := container.MapPage(h.registry, h.container, page, func(*container.Container) (VM, error) {
		vm := newVM()
		h.mu.Lock()
		h.vms[page] = append(h.vms[page], vm)
		h.mu.Unlock()
		return vm, nil
	})
	require.NoError(t, err)
}

// lastVM returns the most recent view-model created for page.
func lastVM[VM any](t *testing.T, h *harness, page string) VM {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.vms[page]
	require.NotEmpty(t, list, "no view-model created for %s", page)
	vm, ok := list[len(list)-1].(VM)
	require.True(t, ok)
	return vm
}

func (h *harness) created(page string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.vms[page])
}

func (h *harness) rootStack(t *testing.T) port.NavigationContainer {
	t.Helper()
	nav, ok := h.window.Root().(port.NavigationContainer)
	require.True(t, ok, "root is %T", h.window.Root())
	return nav
}

func typeNames(pages []port.Page) []string {
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = p.TypeName()
	}
	return names
}
