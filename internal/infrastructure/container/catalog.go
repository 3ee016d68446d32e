package container

import (
	"sync"

	"github.com/bnema/navkit/internal/application/port"
)

// Catalog is the set of registered page and popup types.
type Catalog struct {
	mu        sync.RWMutex
	types     []port.PageType
	listeners map[int]func()
	nextID    int
}

// NewCatalog creates a catalog holding types.
func NewCatalog(types ...port.PageType) *Catalog {
	return &Catalog{
		types:     append([]port.PageType(nil), types...),
		listeners: make(map[int]func()),
	}
}

// Add registers more page types and notifies change listeners.
func (c *Catalog) Add(types ...port.PageType) {
	c.mu.Lock()
	c.types = append(c.types, types...)
	listeners := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// PageTypes implements port.PageSource.
func (c *Catalog) PageTypes() []port.PageType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]port.PageType(nil), c.types...)
}

// OnChange registers fn to run after Add.
func (c *Catalog) OnChange(fn func()) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}
