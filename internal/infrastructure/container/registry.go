package container

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/bnema/navkit/internal/domain/entity"
)

// PageRegistry maps page type names to view-model types.
type PageRegistry struct {
	mu     sync.RWMutex
	byPage map[string]reflect.Type
}

// NewPageRegistry creates an empty registry.
func NewPageRegistry() *PageRegistry {
	return &PageRegistry{byPage: make(map[string]reflect.Type)}
}

// Map associates pageTypeName with vmType. Mapping a page twice fails.
func (r *PageRegistry) Map(pageTypeName string, vmType reflect.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byPage[pageTypeName]; ok {
		return fmt.Errorf("map %s to %v: %w (already %v)", pageTypeName, vmType, entity.ErrAlreadyMapped, existing)
	}
	r.byPage[pageTypeName] = vmType
	return nil
}

// ResolveViewModelType implements port.PageRegistry.
func (r *PageRegistry) ResolveViewModelType(pageTypeName string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byPage[pageTypeName]
	return t, ok
}

// Pages returns the mapped page names, sorted.
func (r *PageRegistry) Pages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byPage))
	for name := range r.byPage {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MapPage maps pageTypeName to VM and registers newVM as a transient
// provider, so every page instance gets its own view-model.
func MapPage[VM any](r *PageRegistry, c *Container, pageTypeName string, newVM func(c *Container) (VM, error)) error {
	if err := r.Map(pageTypeName, TypeOf[VM]()); err != nil {
		return err
	}
	if !c.Has(TypeOf[VM]()) {
		Transient(c, newVM)
	}
	return nil
}
