package viewmodel

import (
	"sync"

	"github.com/bnema/navkit/internal/domain/lifecycle"
)

// TabState tracks the selection of a single tab view-model.
// Embed it and call MarkSelected / MarkUnselected from the tab hooks.
type TabState struct {
	mu       sync.Mutex
	guard    InitGuard
	selected bool
}

// MarkSelected records the selection and reports whether it is the first one.
func (s *TabState) MarkSelected() (first bool) {
	s.mu.Lock()
	s.selected = true
	s.mu.Unlock()
	return s.guard.Do(nil)
}

func (s *TabState) MarkUnselected() {
	s.mu.Lock()
	s.selected = false
	s.mu.Unlock()
}

func (s *TabState) Selected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// TabHostState implements lifecycle.TabHost. The tab list is either provided
// by the owner or bound from the container children on attach.
type TabHostState struct {
	mu        sync.Mutex
	index     int
	tabs      []lifecycle.TabComponent
	listeners map[int]func(int)
	nextID    int
}

var _ lifecycle.TabHost = (*TabHostState)(nil)

// NewTabHostState creates a host with the given tabs, first tab selected.
func NewTabHostState(tabs ...lifecycle.TabComponent) *TabHostState {
	return &TabHostState{tabs: tabs}
}

func (h *TabHostState) SelectedTabIndex() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

// SetSelectedTabIndex changes the selected tab. Out of range indexes and
// unchanged values are ignored; listeners are called outside the lock.
func (h *TabHostState) SetSelectedTabIndex(index int) {
	h.mu.Lock()
	if index == h.index || index < 0 || (len(h.tabs) > 0 && index >= len(h.tabs)) {
		h.mu.Unlock()
		return
	}
	h.index = index
	listeners := make([]func(int), 0, len(h.listeners))
	for _, fn := range h.listeners {
		listeners = append(listeners, fn)
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(index)
	}
}

func (h *TabHostState) Tabs() []lifecycle.TabComponent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]lifecycle.TabComponent, len(h.tabs))
	copy(out, h.tabs)
	return out
}

// SetTabs replaces the tab list and clamps the selected index.
func (h *TabHostState) SetTabs(tabs []lifecycle.TabComponent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tabs = append([]lifecycle.TabComponent(nil), tabs...)
	if h.index >= len(h.tabs) {
		h.index = 0
	}
}

// CurrentTab returns the selected tab, or nil when there are none.
func (h *TabHostState) CurrentTab() lifecycle.TabComponent {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index < 0 || h.index >= len(h.tabs) {
		return nil
	}
	return h.tabs[h.index]
}

func (h *TabHostState) OnSelectedTabIndexChanged(fn func(index int)) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listeners == nil {
		h.listeners = make(map[int]func(int))
	}
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}
