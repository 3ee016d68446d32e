package input

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/navkit/internal/logging"
)

// ActionHandler is called when a keyboard action is triggered.
type ActionHandler func(ctx context.Context, action Action) error

// KeyboardHandler translates key presses into actions.
type KeyboardHandler struct {
	keys *KeyMap

	onAction     ActionHandler
	shouldBypass func() bool

	ctx context.Context
	mu  sync.RWMutex
}

// NewKeyboardHandler creates a keyboard handler using keys, or the default
// bindings when keys is nil.
func NewKeyboardHandler(ctx context.Context, keys *KeyMap) *KeyboardHandler {
	logging.FromContext(ctx).Debug().Msg("creating keyboard handler")
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &KeyboardHandler{keys: keys, ctx: ctx}
}

func (h *KeyboardHandler) KeyMap() *KeyMap { return h.keys }

// SetOnAction sets the callback for when actions are triggered.
func (h *KeyboardHandler) SetOnAction(fn ActionHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAction = fn
}

// SetShouldBypassInput sets a check that, when true, leaves every key to the
// focused page.
func (h *KeyboardHandler) SetShouldBypassInput(fn func() bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shouldBypass = fn
}

// HandleKey dispatches msg. It reports whether the key was bound to an action.
func (h *KeyboardHandler) HandleKey(msg tea.KeyMsg) (bool, error) {
	h.mu.RLock()
	onAction := h.onAction
	bypass := h.shouldBypass
	h.mu.RUnlock()

	if bypass != nil && bypass() {
		return false, nil
	}
	action, ok := h.keys.Lookup(msg)
	if !ok {
		return false, nil
	}

	log := logging.FromContext(h.ctx)
	log.Debug().Str("key", msg.String()).Str("action", string(action)).Msg("shortcut matched")
	if onAction == nil {
		return true, nil
	}
	if err := onAction(h.ctx, action); err != nil {
		log.Warn().Err(err).Str("action", string(action)).Msg("keyboard action failed")
		return true, err
	}
	return true, nil
}
