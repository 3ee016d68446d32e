package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/logging"
)

// ConcurrencyPolicy decides what happens to a request issued while another
// one is in flight.
type ConcurrencyPolicy int

const (
	// ConcurrencyReject fails the new request with InvalidState.
	ConcurrencyReject ConcurrencyPolicy = iota
	// ConcurrencyQueue waits for the in-flight request to finish.
	ConcurrencyQueue
)

// ParseConcurrencyPolicy maps "reject" and "queue" to a policy.
func ParseConcurrencyPolicy(s string) (ConcurrencyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return ConcurrencyReject, nil
	case "queue":
		return ConcurrencyQueue, nil
	default:
		return ConcurrencyReject, fmt.Errorf("unknown concurrency policy %q", s)
	}
}

func (p ConcurrencyPolicy) String() string {
	if p == ConcurrencyQueue {
		return "queue"
	}
	return "reject"
}

// NavigationState is the phase of the current or last request.
type NavigationState int

const (
	StateIdle NavigationState = iota
	StateParsingPath
	StateResolvingTypes
	StateBuildingStack
	StatePresenting
	StateDone
	StateFailed
)

func (s NavigationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateParsingPath:
		return "parsing_path"
	case StateResolvingTypes:
		return "resolving_types"
	case StateBuildingStack:
		return "building_stack"
	case StatePresenting:
		return "presenting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// NavigateOption tunes one navigation request.
type NavigateOption func(*navigateOptions)

type navigateOptions struct {
	animated bool
}

// WithAnimation overrides the configured animation flag.
func WithAnimation(animated bool) NavigateOption {
	return func(o *navigateOptions) {
		o.animated = animated
	}
}

// NavigateUseCaseConfig holds the navigator's collaborators.
type NavigateUseCaseConfig struct {
	Resolver    *PageResolver
	Factory     *PageFactory
	Surface     port.Surface
	Dispatcher  port.LifecycleDispatcher
	Window      port.WindowEvents
	Concurrency ConcurrencyPolicy
	Animated    bool
}

// NavigateUseCase turns paths into page hierarchies on the surface and
// handles back and navigate-to-root requests. One request runs at a time.
type NavigateUseCase struct {
	resolver   *PageResolver
	factory    *PageFactory
	surface    port.Surface
	dispatcher port.LifecycleDispatcher
	gate       *semaphore.Weighted

	baseCtx    context.Context
	stopWindow func()

	mu       sync.Mutex
	state    NavigationState
	policy   ConcurrencyPolicy
	animated bool
}

// NewNavigateUseCase creates the navigator. ctx carries the logger used for
// window notifications.
func NewNavigateUseCase(ctx context.Context, cfg NavigateUseCaseConfig) *NavigateUseCase {
	uc := &NavigateUseCase{
		resolver:   cfg.Resolver,
		factory:    cfg.Factory,
		surface:    cfg.Surface,
		dispatcher: cfg.Dispatcher,
		gate:       semaphore.NewWeighted(1),
		baseCtx:    logging.WithComponent(context.WithoutCancel(ctx), "navigator"),
		policy:     cfg.Concurrency,
		animated:   cfg.Animated,
	}
	if cfg.Window != nil {
		uc.stopWindow = cfg.Window.OnActivated(uc.HandleWindowActivated)
	}
	return uc
}

// Close stops listening to window notifications.
func (uc *NavigateUseCase) Close() {
	if uc.stopWindow != nil {
		uc.stopWindow()
		uc.stopWindow = nil
	}
}

// State returns the phase of the current or last request.
func (uc *NavigateUseCase) State() NavigationState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// SetConcurrencyPolicy applies to requests issued afterwards.
func (uc *NavigateUseCase) SetConcurrencyPolicy(policy ConcurrencyPolicy) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.policy = policy
}

// SetAnimated changes the default animation flag.
func (uc *NavigateUseCase) SetAnimated(animated bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.animated = animated
}

// Navigate follows path. An absolute path replaces the root page; a relative
// path pushes onto the container currently displayed. params reach every
// page created by the request.
func (uc *NavigateUseCase) Navigate(ctx context.Context, path string, params *entity.Parameters, opts ...NavigateOption) (res entity.Result) {
	ctx = logging.WithPath(logging.WithComponent(ctx, "navigator"), path)
	release, res, ok := uc.enter(ctx)
	if !ok {
		return res
	}
	defer release()
	defer uc.recoverInto(ctx, "navigate", &res)
	options := uc.options(opts)

	uc.setState(ctx, StateParsingPath)
	parsed, err := entity.ParsePath(path)
	if err != nil {
		return uc.finish(ctx, entity.Fail(entity.ErrorCodeInvalidState, "invalid navigation path %q: %v", path, err))
	}

	uc.setState(ctx, StateResolvingTypes)
	descriptors, err := uc.resolver.Describe(port.FamilyPage, parsed)
	if err != nil {
		return uc.finish(ctx, entity.Fail(entity.ErrorCodeInvalidState, "cannot resolve %q: %v", path, err))
	}

	uc.setState(ctx, StateBuildingStack)
	if parsed.Absolute {
		return uc.finish(ctx, uc.navigateAbsolute(ctx, descriptors, params, options))
	}
	return uc.finish(ctx, uc.navigateRelative(ctx, descriptors, params, options))
}

func (uc *NavigateUseCase) navigateAbsolute(ctx context.Context, descriptors []port.PageDescriptor, params *entity.Parameters, options navigateOptions) entity.Result {
	pages, res := uc.createPages(ctx, descriptors, params)
	if res.IsFailure() {
		return res
	}
	first, rest := pages[0], pages[1:]

	if len(rest) > 0 {
		var target port.NavigationContainer
		switch root := first.(type) {
		case port.TabContainer:
			nav, ok := root.CurrentTab().(port.NavigationContainer)
			if !ok {
				return entity.Fail(entity.ErrorCodeNotSupported,
					"tab container %s: current tab cannot host pushed pages", root.TypeName())
			}
			target = nav
			// A NavigationPage segment right after the tab root names the
			// tab's own stack.
			if isEmptyNavigationPage(rest[0]) {
				rest = rest[1:]
			}
		case port.NavigationContainer:
			target = root
		default:
			nav, err := uc.surface.NewNavigationContainer()
			if err != nil {
				return entity.Fail(entity.ErrorCodeUnknown, "wrap %s in a navigation container: %v", first.TypeName(), err)
			}
			if err := nav.Push(ctx, first, false); err != nil {
				return entity.Fail(entity.ErrorCodeUnknown, "push %s onto %s: %v", first.TypeName(), nav.TypeName(), err)
			}
			target, first = nav, nav
		}
		// The stack is still off-screen, so pushes are never animated.
		if res := uc.pushAll(ctx, target, rest, false); res.IsFailure() {
			return res
		}
	}

	uc.setState(ctx, StatePresenting)
	if err := uc.surface.SetRoot(ctx, first, options.animated); err != nil {
		return entity.Fail(entity.ErrorCodeUnknown, "display root page %s: %v", first.TypeName(), err)
	}
	return entity.Ok()
}

func isEmptyNavigationPage(page port.Page) bool {
	nav, ok := page.(port.NavigationContainer)
	return ok && nav.TypeName() == NavigationPageName && len(nav.Stack()) == 0
}

func (uc *NavigateUseCase) navigateRelative(ctx context.Context, descriptors []port.PageDescriptor, params *entity.Parameters, options navigateOptions) entity.Result {
	root := uc.surface.Root()
	if root == nil {
		return entity.Fail(entity.ErrorCodeInvalidState, "no root page to navigate from")
	}

	var target port.NavigationContainer
	switch r := root.(type) {
	case port.TabContainer:
		current := r.CurrentTab()
		if current == nil {
			return entity.Fail(entity.ErrorCodeInvalidState, "tab container %s has no current tab", r.TypeName())
		}
		nav, ok := current.(port.NavigationContainer)
		if !ok {
			return entity.Fail(entity.ErrorCodeNotSupported,
				"current tab %s cannot host pushed pages", current.TypeName())
		}
		target = nav
	case port.NavigationContainer:
		target = r
	default:
		return entity.Fail(entity.ErrorCodeNotSupported,
			"root page %s cannot host pushed pages", root.TypeName())
	}

	pages, res := uc.createPages(ctx, descriptors, params)
	if res.IsFailure() {
		return res
	}

	uc.setState(ctx, StatePresenting)
	return uc.pushAll(ctx, target, pages, options.animated)
}

func (uc *NavigateUseCase) createPages(ctx context.Context, descriptors []port.PageDescriptor, params *entity.Parameters) ([]port.Page, entity.Result) {
	pages := make([]port.Page, 0, len(descriptors))
	for _, desc := range descriptors {
		page, err := uc.factory.CreatePage(ctx, desc, params)
		if err != nil {
			return nil, entity.Fail(entity.ErrorCodeUnknown, "create page %s: %v", desc.Type.Name, err)
		}
		pages = append(pages, page)
	}
	return pages, entity.Ok()
}

func (uc *NavigateUseCase) pushAll(ctx context.Context, target port.NavigationContainer, pages []port.Page, animated bool) entity.Result {
	for _, page := range pages {
		if err := target.Push(ctx, page, animated); err != nil {
			return entity.Fail(entity.ErrorCodeUnknown, "push %s onto %s: %v", page.TypeName(), target.TypeName(), err)
		}
	}
	return entity.Ok()
}

// Back pops the displayed stack, or offers the back request to the
// displayed page when it is not pushable.
func (uc *NavigateUseCase) Back(ctx context.Context, opts ...NavigateOption) (res entity.Result) {
	ctx = logging.WithComponent(ctx, "navigator")
	release, res, ok := uc.enter(ctx)
	if !ok {
		return res
	}
	defer release()
	defer uc.recoverInto(ctx, "back", &res)
	options := uc.options(opts)
	uc.setState(ctx, StatePresenting)

	root := uc.surface.Root()
	if root == nil {
		return uc.finish(ctx, entity.Fail(entity.ErrorCodeInvalidState, "no root page"))
	}

	switch r := root.(type) {
	case port.TabContainer:
		current := r.CurrentTab()
		if nav, ok := current.(port.NavigationContainer); ok {
			return uc.finish(ctx, uc.pop(ctx, nav, options.animated))
		}
		if current != nil {
			return uc.finish(ctx, sendBack(current))
		}
		return uc.finish(ctx, sendBack(r))
	case port.NavigationContainer:
		return uc.finish(ctx, uc.pop(ctx, r, options.animated))
	default:
		return uc.finish(ctx, sendBack(root))
	}
}

func (uc *NavigateUseCase) pop(ctx context.Context, nav port.NavigationContainer, animated bool) entity.Result {
	if len(nav.Stack()) <= 1 {
		return entity.Fail(entity.ErrorCodeInvalidState, "nothing to pop from %s", nav.TypeName())
	}
	popped, err := nav.Pop(ctx, animated)
	if err != nil {
		return entity.Fail(entity.ErrorCodeUnknown, "pop from %s: %v", nav.TypeName(), err)
	}
	if popped == nil {
		return entity.Fail(entity.ErrorCodeInvalidState, "%s returned no page on pop", nav.TypeName())
	}
	return entity.Ok()
}

func sendBack(page port.Page) entity.Result {
	if !page.SendBackRequested() {
		return entity.Fail(entity.ErrorCodeCancelled, "back request not handled by %s", page.TypeName())
	}
	return entity.Ok()
}

// ToRoot pops the displayed stack down to its bottom page and notifies
// that page's view-model with params.
func (uc *NavigateUseCase) ToRoot(ctx context.Context, params *entity.Parameters, opts ...NavigateOption) (res entity.Result) {
	ctx = logging.WithComponent(ctx, "navigator")
	release, res, ok := uc.enter(ctx)
	if !ok {
		return res
	}
	defer release()
	defer uc.recoverInto(ctx, "to_root", &res)
	options := uc.options(opts)
	uc.setState(ctx, StatePresenting)

	root := uc.surface.Root()
	if root == nil {
		return uc.finish(ctx, entity.Fail(entity.ErrorCodeInvalidState, "no root page"))
	}

	var nav port.NavigationContainer
	switch r := root.(type) {
	case port.TabContainer:
		current, ok := r.CurrentTab().(port.NavigationContainer)
		if !ok {
			return uc.finish(ctx, entity.Fail(entity.ErrorCodeInvalidState,
				"tab container %s has no pushable current tab", r.TypeName()))
		}
		nav = current
	case port.NavigationContainer:
		nav = r
	default:
		return uc.finish(ctx, entity.Fail(entity.ErrorCodeNotSupported,
			"root page %s has no stack", root.TypeName()))
	}

	if len(nav.Stack()) <= 1 {
		return uc.finish(ctx, entity.Fail(entity.ErrorCodeInvalidState, "%s is already at its root", nav.TypeName()))
	}
	if err := nav.PopToRoot(ctx, options.animated); err != nil {
		return uc.finish(ctx, entity.Fail(entity.ErrorCodeUnknown, "pop %s to root: %v", nav.TypeName(), err))
	}

	bottom := nav.CurrentPage()
	if bottom == nil {
		return uc.finish(ctx, entity.Ok())
	}
	if vm := bottom.ViewModel(); vm != nil {
		if params == nil {
			params = entity.NewParameters()
		}
		if err := uc.dispatcher.DispatchNavigatedToRoot(ctx, vm, params); err != nil {
			return uc.finish(ctx, entity.Fail(entity.ErrorCodeUnknown, "root page %s: %v", bottom.TypeName(), err))
		}
	}
	return uc.finish(ctx, entity.Ok())
}

// CurrentPage returns the leaf page currently displayed, or nil.
func (uc *NavigateUseCase) CurrentPage() port.Page {
	return LeafPage(uc.surface.Root())
}

// LeafPage descends through tab and navigation containers to the page the
// user is looking at.
func LeafPage(page port.Page) port.Page {
	for page != nil {
		switch p := page.(type) {
		case port.TabContainer:
			current := p.CurrentTab()
			if current == nil {
				return p
			}
			page = current
		case port.NavigationContainer:
			current := p.CurrentPage()
			if current == nil {
				return p
			}
			return current
		default:
			return p
		}
	}
	return nil
}

// HandleWindowActivated forwards window activation to the displayed page.
func (uc *NavigateUseCase) HandleWindowActivated() {
	page := uc.CurrentPage()
	if page == nil {
		return
	}
	if vm := page.ViewModel(); vm != nil {
		uc.dispatcher.DispatchWindowActivated(uc.baseCtx, vm)
	}
}

func (uc *NavigateUseCase) enter(ctx context.Context) (release func(), res entity.Result, ok bool) {
	log := logging.FromContext(ctx)
	if err := ctx.Err(); err != nil {
		return nil, entity.Fail(entity.ErrorCodeCancelled, "navigation cancelled: %v", err), false
	}

	uc.mu.Lock()
	policy := uc.policy
	uc.mu.Unlock()

	if policy == ConcurrencyQueue {
		if err := uc.gate.Acquire(ctx, 1); err != nil {
			log.Debug().Err(err).Msg("navigation cancelled while queued")
			return nil, entity.Fail(entity.ErrorCodeCancelled, "navigation cancelled while queued: %v", err), false
		}
	} else if !uc.gate.TryAcquire(1) {
		log.Warn().Msg("navigation rejected, another request is in progress")
		return nil, entity.Fail(entity.ErrorCodeInvalidState, "navigation already in progress"), false
	}
	return func() { uc.gate.Release(1) }, entity.Ok(), true
}

func (uc *NavigateUseCase) options(opts []NavigateOption) navigateOptions {
	uc.mu.Lock()
	o := navigateOptions{animated: uc.animated}
	uc.mu.Unlock()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (uc *NavigateUseCase) setState(ctx context.Context, state NavigationState) {
	uc.mu.Lock()
	uc.state = state
	uc.mu.Unlock()
	logging.FromContext(ctx).Trace().Str("state", state.String()).Msg("navigation state")
}

func (uc *NavigateUseCase) finish(ctx context.Context, res entity.Result) entity.Result {
	log := logging.FromContext(ctx)
	if res.IsSuccess {
		uc.setState(ctx, StateDone)
		log.Debug().Msg("navigation done")
		return res
	}
	uc.setState(ctx, StateFailed)
	log.Warn().
		Str("code", res.ErrorCode.String()).
		Str("reason", res.ErrorMessage).
		Msg("navigation failed")
	return res
}

func (uc *NavigateUseCase) recoverInto(ctx context.Context, op string, res *entity.Result) {
	r := recover()
	if r == nil {
		return
	}
	logging.FromContext(ctx).Error().
		Str("op", op).
		Interface("panic", r).
		Msg("navigation panicked")
	*res = uc.finish(ctx, entity.Fail(entity.ErrorCodeUnknown, "%s panicked: %v", op, r))
}
