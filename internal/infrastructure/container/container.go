// Package container holds the composition root: view-model providers, the
// page to view-model registry and the catalog of registered page types.
package container

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/bnema/navkit/internal/domain/entity"
)

// Provider builds an instance for one registered type.
type Provider func(c *Container) (any, error)

type registration struct {
	provider  Provider
	singleton bool
	once      sync.Once
	instance  any
	err       error
}

// Container resolves view-models and their dependencies by type.
type Container struct {
	mu            sync.RWMutex
	registrations map[reflect.Type]*registration
}

// New creates an empty container.
func New() *Container {
	return &Container{registrations: make(map[reflect.Type]*registration)}
}

// TypeOf returns the reflect.Type used as registration key for T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register adds or replaces the provider for t. A transient provider runs on
// every Resolve.
func (c *Container) Register(t reflect.Type, provider Provider, singleton bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations[t] = &registration{provider: provider, singleton: singleton}
}

// Has reports whether t is registered.
func (c *Container) Has(t reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.registrations[t]
	return ok
}

// Resolve implements port.ViewModelResolver.
func (c *Container) Resolve(t reflect.Type) (any, error) {
	c.mu.RLock()
	reg, ok := c.registrations[t]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("resolve %v: %w", t, entity.ErrNotRegistered)
	}

	if !reg.singleton {
		return build(c, t, reg.provider)
	}
	reg.once.Do(func() {
		reg.instance, reg.err = build(c, t, reg.provider)
	})
	return reg.instance, reg.err
}

func build(c *Container, t reflect.Type, provider Provider) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolve %v: provider panicked: %v", t, r)
		}
	}()
	instance, err = provider(c)
	if err != nil {
		return nil, fmt.Errorf("resolve %v: %w", t, err)
	}
	return instance, nil
}

// Transient registers fn as a per-resolve provider for T.
func Transient[T any](c *Container, fn func(c *Container) (T, error)) {
	c.Register(TypeOf[T](), func(c *Container) (any, error) { return fn(c) }, false)
}

// Singleton registers fn as a lazily built shared provider for T.
func Singleton[T any](c *Container, fn func(c *Container) (T, error)) {
	c.Register(TypeOf[T](), func(c *Container) (any, error) { return fn(c) }, true)
}

// Instance registers an existing value for T.
func Instance[T any](c *Container, value T) {
	c.Register(TypeOf[T](), func(*Container) (any, error) { return value, nil }, true)
}

// ResolveAs resolves T from c.
func ResolveAs[T any](c *Container) (T, error) {
	var zero T
	raw, err := c.Resolve(TypeOf[T]())
	if err != nil {
		return zero, err
	}
	value, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("resolve %v: provider returned %T", TypeOf[T](), raw)
	}
	return value, nil
}
