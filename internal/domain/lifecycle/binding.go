package lifecycle

// Binding assigns one named parameter onto a view-model of type VM.
type Binding[VM any] struct {
	key    string
	assign func(vm VM, value any) bool
}

// Key returns the parameter name this binding handles.
func (b Binding[VM]) Key() string {
	return b.key
}

// Property binds key to a field of type T. A value of type T or a non-nil
// *T is assigned; anything else, nil included, is rejected.
func Property[VM any, T any](key string, field func(vm VM) *T) Binding[VM] {
	return Binding[VM]{
		key: key,
		assign: func(vm VM, value any) bool {
			switch v := value.(type) {
			case T:
				*field(vm) = v
				return true
			case *T:
				if v == nil {
					return false
				}
				*field(vm) = *v
				return true
			default:
				return false
			}
		},
	}
}

// OptionalProperty binds key to a pointer field. It accepts T, *T and nil.
func OptionalProperty[VM any, T any](key string, field func(vm VM) **T) Binding[VM] {
	return Binding[VM]{
		key: key,
		assign: func(vm VM, value any) bool {
			switch v := value.(type) {
			case nil:
				*field(vm) = nil
				return true
			case T:
				*field(vm) = &v
				return true
			case *T:
				*field(vm) = v
				return true
			default:
				return false
			}
		},
	}
}

// Setter binds key to an arbitrary assignment function.
func Setter[VM any, T any](key string, set func(vm VM, value T)) Binding[VM] {
	return Binding[VM]{
		key: key,
		assign: func(vm VM, value any) bool {
			v, ok := value.(T)
			if !ok {
				return false
			}
			set(vm, v)
			return true
		},
	}
}

// Schema is the set of parameters a view-model type accepts.
// View-models implement ParameterReceiver by delegating to their schema.
type Schema[VM any] struct {
	keys     []string
	bindings map[string]func(VM, any) bool
}

// NewSchema builds a schema. A later binding for the same key replaces an
// earlier one.
func NewSchema[VM any](bindings ...Binding[VM]) *Schema[VM] {
	s := &Schema[VM]{bindings: make(map[string]func(VM, any) bool, len(bindings))}
	for _, b := range bindings {
		if _, exists := s.bindings[b.key]; !exists {
			s.keys = append(s.keys, b.key)
		}
		s.bindings[b.key] = b.assign
	}
	return s
}

// Apply assigns value to the field bound to key. Unknown keys and type
// mismatches return false and leave vm untouched.
func (s *Schema[VM]) Apply(vm VM, key string, value any) bool {
	assign, ok := s.bindings[key]
	if !ok {
		return false
	}
	return assign(vm, value)
}

// Keys returns the bound keys in declaration order.
func (s *Schema[VM]) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}
