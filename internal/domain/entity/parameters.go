package entity

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Parameters is an ordered string-keyed bag handed to pages and view-models.
// The zero value and a nil pointer both read as an empty set. Set on a nil
// pointer returns a new set.
type Parameters struct {
	values *orderedmap.OrderedMap[string, any]
}

// NewParameters creates an empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{values: orderedmap.New[string, any]()}
}

// ParametersOf builds a parameter set from alternating key/value pairs.
// A trailing key without value is ignored.
func ParametersOf(pairs ...any) *Parameters {
	p := NewParameters()
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		p.Set(key, pairs[i+1])
	}
	return p
}

// Set stores value under key and returns p for chaining.
func (p *Parameters) Set(key string, value any) *Parameters {
	if p == nil {
		p = NewParameters()
	}
	if p.values == nil {
		p.values = orderedmap.New[string, any]()
	}
	p.values.Set(key, value)
	return p
}

// Get returns the value stored under key.
func (p *Parameters) Get(key string) (any, bool) {
	if p == nil || p.values == nil {
		return nil, false
	}
	return p.values.Get(key)
}

// Has reports whether key is present.
func (p *Parameters) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete removes key.
func (p *Parameters) Delete(key string) {
	if p == nil || p.values == nil {
		return
	}
	p.values.Delete(key)
}

// Len returns the number of entries.
func (p *Parameters) Len() int {
	if p == nil || p.values == nil {
		return 0
	}
	return p.values.Len()
}

// Keys returns keys in insertion order.
func (p *Parameters) Keys() []string {
	keys := make([]string, 0, p.Len())
	p.Each(func(key string, _ any) {
		keys = append(keys, key)
	})
	return keys
}

// Each calls fn for every entry in insertion order.
func (p *Parameters) Each(fn func(key string, value any)) {
	if p == nil || p.values == nil {
		return
	}
	for pair := p.values.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a shallow copy. Cloning nil yields an empty set.
func (p *Parameters) Clone() *Parameters {
	out := NewParameters()
	p.Each(func(key string, value any) {
		out.Set(key, value)
	})
	return out
}

// Merge copies every entry of other into p, overwriting existing keys.
func (p *Parameters) Merge(other *Parameters) *Parameters {
	other.Each(func(key string, value any) {
		p.Set(key, value)
	})
	return p
}

// Lookup returns the value under key when it has type T.
func Lookup[T any](p *Parameters, key string) (T, bool) {
	var zero T
	raw, ok := p.Get(key)
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return value, true
}
