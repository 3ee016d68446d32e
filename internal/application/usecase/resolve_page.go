package usecase

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/entity"
)

// NavigationPageName is the well-known pseudo page type that wraps the rest
// of a path in a pushable container.
const NavigationPageName = "NavigationPage"

// NamePolicy controls how segment names match registered type names.
type NamePolicy int

const (
	NameCaseSensitive NamePolicy = iota
	NameCaseInsensitive
)

// PageResolver maps segment names to registered page types. Lookup tables
// are built lazily, once per family, and dropped by Invalidate.
type PageResolver struct {
	source    port.PageSource
	wellKnown []port.PageType

	mu     sync.RWMutex
	policy NamePolicy
	caches map[port.PageFamily]map[string][]port.PageType
}

// NewPageResolver creates a resolver over source. wellKnown types are added
// to their family's table on every build.
func NewPageResolver(source port.PageSource, policy NamePolicy, wellKnown ...port.PageType) *PageResolver {
	return &PageResolver{
		source:    source,
		wellKnown: wellKnown,
		policy:    policy,
		caches:    make(map[port.PageFamily]map[string][]port.PageType),
	}
}

// NavigationPageType describes the pseudo type backed by the surface's
// navigation container.
func NavigationPageType(surface port.Surface) port.PageType {
	return port.PageType{
		Name:   NavigationPageName,
		Family: port.FamilyPage,
		New: func() (port.Page, error) {
			return surface.NewNavigationContainer()
		},
	}
}

// SetNamePolicy changes the matching policy and invalidates the caches.
func (r *PageResolver) SetNamePolicy(policy NamePolicy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.policy == policy {
		return
	}
	r.policy = policy
	r.caches = make(map[port.PageFamily]map[string][]port.PageType)
}

// Invalidate drops every lookup table.
func (r *PageResolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caches = make(map[port.PageFamily]map[string][]port.PageType)
}

// Matches returns every type of family whose name matches name.
func (r *PageResolver) Matches(family port.PageFamily, name string) []port.PageType {
	table, key := r.table(family, name)
	return append([]port.PageType(nil), table[key]...)
}

// Resolve returns the single type of family matching name.
func (r *PageResolver) Resolve(family port.PageFamily, name string) (port.PageType, error) {
	matches := r.Matches(family, name)
	switch len(matches) {
	case 0:
		return port.PageType{}, fmt.Errorf("%s %q: %w", family, name, entity.ErrPageNotFound)
	case 1:
		return matches[0], nil
	default:
		return port.PageType{}, fmt.Errorf("%s %q matches %d types: %w", family, name, len(matches), entity.ErrAmbiguousPage)
	}
}

// Describe resolves every segment of path. Nothing is returned unless all
// segments resolve.
func (r *PageResolver) Describe(family port.PageFamily, path entity.NavigationPath) ([]port.PageDescriptor, error) {
	descriptors := make([]port.PageDescriptor, 0, path.Len())
	for _, segment := range path.Segments {
		pageType, err := r.Resolve(family, segment.Name)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, port.PageDescriptor{
			Type:       pageType,
			Segment:    segment,
			Parameters: segment.Query,
		})
	}
	return descriptors, nil
}

func (r *PageResolver) table(family port.PageFamily, name string) (map[string][]port.PageType, string) {
	r.mu.RLock()
	table, ok := r.caches[family]
	key := r.normalize(name)
	r.mu.RUnlock()
	if ok {
		return table, key
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key = r.normalize(name)
	if table, ok := r.caches[family]; ok {
		return table, key
	}
	table = r.build(family)
	r.caches[family] = table
	return table, key
}

// build must be called with r.mu held.
func (r *PageResolver) build(family port.PageFamily) map[string][]port.PageType {
	table := make(map[string][]port.PageType)
	add := func(pt port.PageType) {
		if pt.Family != family {
			return
		}
		key := r.normalize(pt.Name)
		table[key] = append(table[key], pt)
	}
	if r.source != nil {
		for _, pt := range r.source.PageTypes() {
			add(pt)
		}
	}
	for _, pt := range r.wellKnown {
		add(pt)
	}
	return table
}

func (r *PageResolver) normalize(name string) string {
	if r.policy == NameCaseInsensitive {
		return strings.ToLower(name)
	}
	return name
}
