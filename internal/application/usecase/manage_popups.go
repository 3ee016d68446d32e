package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/logging"
)

// PopupOption tunes one popup request.
type PopupOption func(*popupOptions)

type popupOptions struct {
	animated bool
}

// WithPopupAnimation overrides the configured animation flag.
func WithPopupAnimation(animated bool) PopupOption {
	return func(o *popupOptions) {
		o.animated = animated
	}
}

type activePopup struct {
	id        port.PageID
	canceller entity.Canceller
}

// ManagePopupsUseCaseConfig holds the popup controller's collaborators.
type ManagePopupsUseCaseConfig struct {
	Resolver *PageResolver
	Factory  *PageFactory
	Surface  port.PopupSurface
	Animated bool
}

// ManagePopupsUseCase presents and dismisses popups by name and keeps the
// registry of active popups. The registry holds page IDs only; the popup
// surface owns the pages.
type ManagePopupsUseCase struct {
	resolver *PageResolver
	factory  *PageFactory
	surface  port.PopupSurface
	baseCtx  context.Context
	stop     func()

	mu       sync.Mutex
	animated bool
	byName   map[string]activePopup
	names    map[port.PageID]string
}

// NewManagePopupsUseCase creates the popup controller and subscribes it to
// page unloads.
func NewManagePopupsUseCase(ctx context.Context, cfg ManagePopupsUseCaseConfig) *ManagePopupsUseCase {
	uc := &ManagePopupsUseCase{
		resolver: cfg.Resolver,
		factory:  cfg.Factory,
		surface:  cfg.Surface,
		baseCtx:  logging.WithComponent(context.WithoutCancel(ctx), "popups"),
		animated: cfg.Animated,
		byName:   make(map[string]activePopup),
		names:    make(map[port.PageID]string),
	}
	uc.stop = cfg.Factory.OnPageUnloaded(uc.handlePageUnloaded)
	return uc
}

// Close stops listening to page unloads.
func (uc *ManagePopupsUseCase) Close() {
	if uc.stop != nil {
		uc.stop()
		uc.stop = nil
	}
}

// SetAnimated changes the default animation flag.
func (uc *ManagePopupsUseCase) SetAnimated(animated bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.animated = animated
}

// Present displays the popup registered under name. name is a single path
// segment and may carry a query.
func (uc *ManagePopupsUseCase) Present(ctx context.Context, name string, params *entity.Parameters, opts ...PopupOption) (res entity.Result) {
	ctx = logging.WithComponent(ctx, "popups")
	defer recoverPopup(ctx, "present", &res)
	ctx = logging.WithPopup(ctx, name)
	log := logging.FromContext(ctx)
	options := uc.options(opts)

	parsed, err := entity.ParsePath(name)
	if err != nil {
		log.Warn().Err(err).Msg("invalid popup name")
		return entity.Fail(entity.ErrorCodeGeneral, "invalid popup name %q: %v", name, err)
	}
	if parsed.Len() > 1 {
		log.Warn().Int("segments", parsed.Len()).Msg("popup name has more than one segment")
		return entity.Fail(entity.ErrorCodeGeneral, "popup name %q must be a single segment", name)
	}

	descriptors, err := uc.resolver.Describe(port.FamilyPopup, parsed)
	if err != nil {
		log.Warn().Err(err).Msg("popup type not resolved")
		return entity.Fail(entity.ErrorCodeGeneral, "cannot resolve popup %q: %v", name, err)
	}
	desc := descriptors[0]

	page, err := uc.factory.CreatePage(ctx, desc, params)
	if err != nil {
		log.Error().Err(err).Msg("popup creation failed")
		return entity.Fail(entity.ErrorCodeGeneral, "create popup %s: %v", desc.Type.Name, err)
	}

	key := desc.Type.Name
	entry := activePopup{id: page.ID()}
	if c, ok := entity.Lookup[entity.Canceller](params, entity.CompletionKey); ok {
		entry.canceller = c
	}

	// Recorded before the push so an unload raised during or right after
	// the push finds the entry.
	uc.mu.Lock()
	if previous, ok := uc.byName[key]; ok {
		delete(uc.names, previous.id)
	}
	uc.byName[key] = entry
	uc.names[entry.id] = key
	uc.mu.Unlock()

	if err := uc.surface.Push(ctx, page, options.animated); err != nil {
		uc.forget(key, entry.id)
		log.Error().Err(err).Msg("popup push failed")
		return entity.Fail(entity.ErrorCodeGeneral, "display popup %s: %v", key, err)
	}

	log.Debug().Str("page_id", string(entry.id)).Msg("popup presented")
	return entity.Ok()
}

// Dismiss removes the named popup. An empty name pops the top-most popup.
func (uc *ManagePopupsUseCase) Dismiss(ctx context.Context, name string, opts ...PopupOption) (res entity.Result) {
	ctx = logging.WithComponent(ctx, "popups")
	defer recoverPopup(ctx, "dismiss", &res)
	log := logging.FromContext(ctx)
	options := uc.options(opts)

	if name == "" {
		if len(uc.surface.Stack()) == 0 {
			return entity.Fail(entity.ErrorCodeInvalidState, "no popup to dismiss")
		}
		if err := uc.surface.Pop(ctx, options.animated); err != nil {
			log.Error().Err(err).Msg("popup pop failed")
			return entity.Fail(entity.ErrorCodeGeneral, "dismiss top popup: %v", err)
		}
		return entity.Ok()
	}

	key := uc.canonicalName(name)
	uc.mu.Lock()
	entry, ok := uc.byName[key]
	uc.mu.Unlock()
	if !ok {
		log.Warn().Str("popup", name).Msg("popup not active")
		return entity.Fail(entity.ErrorCodeInvalidState, "popup %s is not active", name)
	}

	page := uc.findLive(entry.id)
	if page == nil {
		uc.forget(key, entry.id)
		log.Warn().Str("popup", name).Msg("popup no longer displayed")
		return entity.Fail(entity.ErrorCodeInvalidState, "popup %s is no longer displayed", name)
	}

	if err := uc.surface.Remove(ctx, page, options.animated); err != nil {
		log.Error().Err(err).Str("popup", name).Msg("popup removal failed")
		return entity.Fail(entity.ErrorCodeGeneral, "dismiss popup %s: %v", name, err)
	}
	uc.forget(key, entry.id)
	return entity.Ok()
}

// DismissAll removes every displayed popup.
func (uc *ManagePopupsUseCase) DismissAll(ctx context.Context, opts ...PopupOption) (res entity.Result) {
	ctx = logging.WithComponent(ctx, "popups")
	defer recoverPopup(ctx, "dismiss all", &res)
	options := uc.options(opts)
	if err := uc.surface.PopAll(ctx, options.animated); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("dismiss all popups failed")
		return entity.Fail(entity.ErrorCodeGeneral, "dismiss all popups: %v", err)
	}
	uc.mu.Lock()
	uc.byName = make(map[string]activePopup)
	uc.names = make(map[port.PageID]string)
	uc.mu.Unlock()
	return entity.Ok()
}

// IsActive reports whether a popup is recorded under name.
func (uc *ManagePopupsUseCase) IsActive(name string) bool {
	key := uc.canonicalName(name)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.byName[key]
	return ok
}

// ActiveNames returns the recorded popup names, sorted.
func (uc *ManagePopupsUseCase) ActiveNames() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	names := make([]string, 0, len(uc.byName))
	for name := range uc.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (uc *ManagePopupsUseCase) handlePageUnloaded(_ context.Context, page port.Page) {
	uc.mu.Lock()
	key, ok := uc.names[page.ID()]
	var entry activePopup
	if ok {
		delete(uc.names, page.ID())
		entry = uc.byName[key]
		if entry.id == page.ID() {
			delete(uc.byName, key)
		}
	}
	uc.mu.Unlock()

	if !ok {
		return
	}
	// A popup closed by anything but its own result still settles the
	// awaiting caller.
	if entry.canceller != nil && entry.canceller.TryCancel() {
		logging.FromContext(uc.baseCtx).Debug().Str("popup", key).Msg("pending popup result cancelled on unload")
	}
}

func (uc *ManagePopupsUseCase) forget(key string, id port.PageID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if entry, ok := uc.byName[key]; ok && entry.id == id {
		delete(uc.byName, key)
	}
	delete(uc.names, id)
}

func (uc *ManagePopupsUseCase) findLive(id port.PageID) port.Page {
	for _, page := range uc.surface.Stack() {
		if page.ID() == id {
			return page
		}
	}
	return nil
}

// canonicalName maps a user-supplied name to the registered type name.
func (uc *ManagePopupsUseCase) canonicalName(name string) string {
	parsed, err := entity.ParsePath(name)
	if err != nil || parsed.Len() != 1 {
		return name
	}
	segment := parsed.Segments[0].Name
	if matches := uc.resolver.Matches(port.FamilyPopup, segment); len(matches) == 1 {
		return matches[0].Name
	}
	return segment
}

func (uc *ManagePopupsUseCase) options(opts []PopupOption) popupOptions {
	uc.mu.Lock()
	o := popupOptions{animated: uc.animated}
	uc.mu.Unlock()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func recoverPopup(ctx context.Context, op string, res *entity.Result) {
	r := recover()
	if r == nil {
		return
	}
	logging.FromContext(ctx).Error().
		Str("op", op).
		Interface("panic", r).
		Msg("popup operation panicked")
	*res = entity.Fail(entity.ErrorCodeUnknown, "popup %s panicked: %v", op, r)
}
