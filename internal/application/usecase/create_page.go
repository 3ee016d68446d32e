package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/domain/lifecycle"
	"github.com/bnema/navkit/internal/logging"
)

// PageInitializer runs on every created page after its view-model is bound
// and its parameters are applied.
type PageInitializer func(ctx context.Context, page port.Page)

// PageUnloadedHandler is notified once per page instance when it unloads.
type PageUnloadedHandler func(ctx context.Context, page port.Page)

// PageFactoryConfig holds the factory's collaborators.
type PageFactoryConfig struct {
	Registry   port.PageRegistry
	ViewModels port.ViewModelResolver
	Dispatcher port.LifecycleDispatcher
}

// PageFactory instantiates pages, binds their view-models, injects
// parameters and bridges page signals to the lifecycle dispatcher.
type PageFactory struct {
	registry   port.PageRegistry
	viewModels port.ViewModelResolver
	dispatcher port.LifecycleDispatcher

	mu           sync.RWMutex
	initializers []PageInitializer
	unloaded     map[int]PageUnloadedHandler
	nextID       int
}

// NewPageFactory creates a page factory.
func NewPageFactory(cfg PageFactoryConfig) *PageFactory {
	return &PageFactory{
		registry:   cfg.Registry,
		viewModels: cfg.ViewModels,
		dispatcher: cfg.Dispatcher,
		unloaded:   make(map[int]PageUnloadedHandler),
	}
}

// Use adds a page initializer.
func (f *PageFactory) Use(initializer PageInitializer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initializers = append(f.initializers, initializer)
}

// OnPageUnloaded registers handler and returns a function removing it.
func (f *PageFactory) OnPageUnloaded(handler PageUnloadedHandler) (unsubscribe func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.unloaded[id] = handler
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.unloaded, id)
	}
}

// CreatePage builds the page described by desc. Parameters from the path are
// applied first and extra parameters second, so the caller wins on conflicts.
func (f *PageFactory) CreatePage(ctx context.Context, desc port.PageDescriptor, extra *entity.Parameters) (port.Page, error) {
	log := logging.FromContext(ctx)

	page, err := instantiate(desc.Type)
	if err != nil {
		return nil, err
	}

	vm, err := f.bindViewModel(page)
	if err != nil {
		return nil, err
	}

	if vm != nil {
		applyParameters(ctx, vm, desc.Parameters, extra)
		setParams := extra
		if setParams == nil {
			setParams = entity.NewParameters()
		}
		f.dispatcher.DispatchParametersSet(ctx, vm, setParams)
	}

	f.mu.RLock()
	initializers := append([]PageInitializer(nil), f.initializers...)
	f.mu.RUnlock()
	for _, initialize := range initializers {
		initialize(ctx, page)
	}

	f.bridgeSignals(ctx, page)

	log.Debug().
		Str("page", page.TypeName()).
		Str("page_id", string(page.ID())).
		Bool("has_view_model", vm != nil).
		Msg("page created")
	return page, nil
}

func instantiate(pageType port.PageType) (page port.Page, err error) {
	if pageType.New == nil {
		return nil, fmt.Errorf("%s: no constructor: %w", pageType.Name, entity.ErrInstantiation)
	}
	defer func() {
		if r := recover(); r != nil {
			page = nil
			err = fmt.Errorf("%s: constructor panicked: %v: %w", pageType.Name, r, entity.ErrInstantiation)
		}
	}()

	page, err = pageType.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", pageType.Name, entity.ErrInstantiation, err)
	}
	if page == nil {
		return nil, fmt.Errorf("%s: constructor returned nil: %w", pageType.Name, entity.ErrInstantiation)
	}
	return page, nil
}

func (f *PageFactory) bindViewModel(page port.Page) (any, error) {
	if f.registry == nil {
		return page.ViewModel(), nil
	}
	vmType, ok := f.registry.ResolveViewModelType(page.TypeName())
	if !ok {
		return page.ViewModel(), nil
	}
	vm, err := f.viewModels.Resolve(vmType)
	if err != nil {
		return nil, fmt.Errorf("view-model for %s: %w", page.TypeName(), err)
	}
	page.SetViewModel(vm)
	return vm, nil
}

func applyParameters(ctx context.Context, vm any, sets ...*entity.Parameters) {
	receiver, ok := vm.(lifecycle.ParameterReceiver)
	if !ok {
		return
	}
	log := logging.FromContext(ctx)
	for _, params := range sets {
		params.Each(func(key string, value any) {
			if !receiver.ApplyParameter(key, value) {
				log.Trace().Str("key", key).Type("vm", vm).Msg("parameter skipped")
			}
		})
	}
}

func (f *PageFactory) bridgeSignals(ctx context.Context, page port.Page) {
	eventCtx := logging.WithPageID(context.WithoutCancel(ctx), string(page.ID()))

	var (
		once        sync.Once
		mu          sync.Mutex
		unsubscribe func()
	)
	dispatch := func(p port.Page, event port.PageEvent) {
		if vm := p.ViewModel(); vm != nil {
			f.dispatcher.DispatchPageEvent(eventCtx, vm, event)
		}
	}
	handler := func(p port.Page, event port.PageEvent) {
		if event != port.PageUnloaded {
			dispatch(p, event)
			return
		}
		once.Do(func() {
			dispatch(p, event)
			mu.Lock()
			stop := unsubscribe
			mu.Unlock()
			if stop != nil {
				stop()
			}
			f.notifyUnloaded(eventCtx, p)
		})
	}

	stop := page.Subscribe(handler)
	mu.Lock()
	unsubscribe = stop
	mu.Unlock()
}

func (f *PageFactory) notifyUnloaded(ctx context.Context, page port.Page) {
	f.mu.RLock()
	handlers := make([]PageUnloadedHandler, 0, len(f.unloaded))
	for _, h := range f.unloaded {
		handlers = append(handlers, h)
	}
	f.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, page)
	}
}
