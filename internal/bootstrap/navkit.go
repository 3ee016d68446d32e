// Package bootstrap composes the navigation graph from configuration.
package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/navkit/internal/app/demo"
	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/infrastructure/config"
	"github.com/bnema/navkit/internal/infrastructure/container"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/ui/coordinator"
	"github.com/bnema/navkit/internal/ui/dispatcher"
	"github.com/bnema/navkit/internal/ui/input"
	"github.com/bnema/navkit/internal/ui/tui"
)

// Options tunes the composed graph.
type Options struct {
	// TaskRunner runs async lifecycle hooks. Nil selects dispatcher.GoRunner.
	TaskRunner dispatcher.TaskRunner
	// Register adds page types. Nil registers the demo pages.
	Register func(catalog *container.Catalog, registry *container.PageRegistry, c *container.Container) error
}

// App is the composed navigation graph.
type App struct {
	Ctx context.Context

	Container  *container.Container
	Catalog    *container.Catalog
	Registry   *container.PageRegistry
	Resolver   *usecase.PageResolver
	Factory    *usecase.PageFactory
	Dispatcher *dispatcher.LifecycleDispatcher
	Window     *tui.Window
	Keyboard   *input.KeyboardHandler
	Keys       *dispatcher.KeyboardDispatcher
	Navigator  *usecase.NavigateUseCase
	Popups     *usecase.ManagePopupsUseCase

	mu        sync.Mutex
	config    *config.Config
	closeOnce sync.Once
	cleanup   []func()
}

// New builds the graph. ctx must carry the logger.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ctx = logging.WithComponent(ctx, "bootstrap")
	log := logging.FromContext(ctx)

	runner := opts.TaskRunner
	if runner == nil {
		runner = dispatcher.GoRunner
	}
	register := opts.Register
	if register == nil {
		register = demo.Register
	}

	concurrency, err := usecase.ParseConcurrencyPolicy(string(cfg.Navigation.Concurrency))
	if err != nil {
		return nil, err
	}

	keys := input.DefaultKeyMap()
	if err := keys.Rebind(cfg.Shortcuts); err != nil {
		log.Warn().Err(err).Msg("some shortcut overrides were ignored")
	}

	a := &App{
		Ctx:       ctx,
		Container: container.New(),
		Catalog:   container.NewCatalog(),
		Registry:  container.NewPageRegistry(),
		config:    cfg,
	}

	a.Keyboard = input.NewKeyboardHandler(ctx, keys)
	a.Window = tui.NewWindow(tui.NewTheme(), a.Keyboard)
	a.Dispatcher = dispatcher.NewLifecycleDispatcher(
		dispatcher.WithTaskRunner(runner),
		dispatcher.WithLogger(logging.FromContext),
	)

	a.Resolver = usecase.NewPageResolver(a.Catalog, namePolicy(cfg), usecase.NavigationPageType(a.Window))
	a.cleanup = append(a.cleanup, a.Catalog.OnChange(a.Resolver.Invalidate))

	a.Factory = usecase.NewPageFactory(usecase.PageFactoryConfig{
		Registry:   a.Registry,
		ViewModels: a.Container,
		Dispatcher: a.Dispatcher,
	})
	a.Factory.Use(coordinator.AttachTabs(a.Dispatcher))

	a.Navigator = usecase.NewNavigateUseCase(ctx, usecase.NavigateUseCaseConfig{
		Resolver:    a.Resolver,
		Factory:     a.Factory,
		Surface:     a.Window,
		Dispatcher:  a.Dispatcher,
		Window:      a.Window,
		Concurrency: concurrency,
		Animated:    cfg.Navigation.Animated,
	})
	a.Popups = usecase.NewManagePopupsUseCase(ctx, usecase.ManagePopupsUseCaseConfig{
		Resolver: a.Resolver,
		Factory:  a.Factory,
		Surface:  a.Window.Popups(),
		Animated: cfg.Popups.Animated,
	})
	a.cleanup = append(a.cleanup, a.Navigator.Close, a.Popups.Close)

	container.Instance(a.Container, a.Navigator)
	container.Instance(a.Container, a.Popups)
	container.Instance(a.Container, a.Window)

	a.Keys = dispatcher.NewKeyboardDispatcher(ctx, dispatcher.KeyboardDispatcherConfig{
		Navigator:    a.Navigator,
		Popups:       a.Popups,
		PopupSurface: a.Window.Popups(),
		Tabs:         a.Window,
	})
	a.Keys.SetOnToggleHelp(a.Window.ToggleHelp)
	a.Keyboard.SetOnAction(a.Keys.Dispatch)

	if err := register(a.Catalog, a.Registry, a.Container); err != nil {
		a.Close()
		return nil, fmt.Errorf("register pages: %w", err)
	}

	log.Debug().
		Int("page_types", len(a.Catalog.PageTypes())).
		Str("concurrency", concurrency.String()).
		Bool("case_insensitive", cfg.Navigation.CaseInsensitiveNames).
		Msg("navigation graph ready")
	return a, nil
}

func namePolicy(cfg *config.Config) usecase.NamePolicy {
	if cfg.Navigation.CaseInsensitiveNames {
		return usecase.NameCaseInsensitive
	}
	return usecase.NameCaseSensitive
}

// Start navigates to path, or to the configured start path when path is
// empty, or to the demo home page when neither is set.
func (a *App) Start(ctx context.Context, path string) entity.Result {
	if path == "" {
		a.mu.Lock()
		path = a.config.Navigation.StartPath
		a.mu.Unlock()
	}
	if path == "" {
		path = demo.DefaultStart
	}
	return a.Navigator.Navigate(ctx, path, nil)
}

// ApplyConfig applies the settings that can change while running: log
// level, name policy, concurrency policy and animation flags. Shortcut
// changes take effect on restart.
func (a *App) ApplyConfig(cfg *config.Config) error {
	concurrency, err := usecase.ParseConcurrencyPolicy(string(cfg.Navigation.Concurrency))
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	a.Resolver.SetNamePolicy(namePolicy(cfg))
	a.Navigator.SetConcurrencyPolicy(concurrency)
	a.Navigator.SetAnimated(cfg.Navigation.Animated)
	a.Popups.SetAnimated(cfg.Popups.Animated)

	a.mu.Lock()
	a.config = cfg
	a.mu.Unlock()

	logging.FromContext(a.Ctx).Info().
		Str("level", cfg.Logging.Level).
		Str("concurrency", concurrency.String()).
		Bool("case_insensitive", cfg.Navigation.CaseInsensitiveNames).
		Msg("configuration applied")
	return nil
}

// Config returns the configuration last applied.
func (a *App) Config() *config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.config
}

// Close releases subscriptions. It is safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		for i := len(a.cleanup) - 1; i >= 0; i-- {
			a.cleanup[i]()
		}
	})
}
