// Package viewmodel provides building blocks for page, tab and popup
// view-models driven by the navigation layer.
package viewmodel

import "sync"

// InitGuard runs a one-time initializer. Navigation hooks such as
// OnNavigatedTo and OnTabSelected fire repeatedly; the guard turns the first
// of them into an initialization.
type InitGuard struct {
	mu   sync.Mutex
	done bool
}

// Do runs fn on the first call only. It reports whether fn ran.
func (g *InitGuard) Do(fn func()) bool {
	g.mu.Lock()
	if g.done {
		g.mu.Unlock()
		return false
	}
	g.done = true
	g.mu.Unlock()

	if fn != nil {
		fn()
	}
	return true
}

func (g *InitGuard) Initialized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.done
}
