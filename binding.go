package npartial

import (
	"sort"
)

// Args maps constructor parameter names to values.  An untyped nil
// value means absent: it binds nothing.
type Args map[string]any

// Binding is an immutable set of values bound to some of the
// parameters of a Descriptor.  Operations that change a Binding
// return a new one.  The zero Binding has no descriptor and
// cannot be used.
type Binding struct {
	d      *Descriptor
	values map[string]any
}

// EmptyBinding returns a binding with nothing bound
func EmptyBinding(d *Descriptor) Binding {
	return Binding{d: d}
}

// Descriptor returns the descriptor whose parameters are bound
func (b Binding) Descriptor() *Descriptor { return b.d }

func (b Binding) clone(extra int) Binding {
	values := make(map[string]any, len(b.values)+extra)
	for k, v := range b.values {
		values[k] = v
	}
	return Binding{d: b.d, values: values}
}

func (b Binding) nameError(name string) error {
	return &NameError{
		Target:     b.d.name,
		Name:       name,
		Known:      b.d.Names(),
		Suggestion: nameSuggestion(name, b.d.names),
	}
}

// set modifies the receiver: only use on a fresh clone
func (b Binding) set(name string, value any) {
	if value == nil {
		delete(b.values, name)
		return
	}
	b.values[name] = value
}

// Set returns a new Binding with name bound to value.  Setting
// a nil value leaves name unbound.
func (b Binding) Set(name string, value any) (Binding, error) {
	if !b.d.has(name) {
		return b, b.nameError(name)
	}
	n := b.clone(1)
	n.set(name, value)
	return n, nil
}

// Get returns the bound value.  The second return value is
// false if the name is not bound.
func (b Binding) Get(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Has reports if name is bound
func (b Binding) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Len is the number of bound parameters
func (b Binding) Len() int { return len(b.values) }

// IsSaturated is true when every parameter is bound
func (b Binding) IsSaturated() bool {
	for _, name := range b.d.names {
		if _, ok := b.values[name]; !ok {
			return false
		}
	}
	return true
}

// Fill sets every entry of args.  Entries are visited in sorted
// name order.  If any name is unknown, nothing is set and a
// *NameError is returned.
func (b Binding) Fill(args Args) (Binding, error) {
	n := b.clone(len(args))
	for _, name := range sortedNames(args) {
		if !b.d.has(name) {
			return b, b.nameError(name)
		}
		n.set(name, args[name])
	}
	return n, nil
}

// MergeOnto combines two bindings of the same descriptor.  For every
// parameter, the value in b is used if present, otherwise the value in
// base is kept.  It is not symmetric: merge the new binding onto
// the old one.
func (b Binding) MergeOnto(base Binding) Binding {
	n := Binding{
		d:      b.d,
		values: make(map[string]any, len(b.d.names)),
	}
	for _, name := range b.d.names {
		if v, ok := b.values[name]; ok {
			n.values[name] = v
		} else if v, ok := base.values[name]; ok {
			n.values[name] = v
		}
	}
	return n
}

// Bound returns the names of the bound parameters in declaration order
func (b Binding) Bound() []string {
	names := make([]string, 0, len(b.values))
	for _, name := range b.d.names {
		if _, ok := b.values[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Missing returns the names of the unbound parameters in declaration order
func (b Binding) Missing() []string {
	names := make([]string, 0, len(b.d.names)-len(b.values))
	for _, name := range b.d.names {
		if _, ok := b.values[name]; !ok {
			names = append(names, name)
		}
	}
	return names
}

// Equal reports if two bindings have the same descriptor and the same
// values.  Values are compared with ==, so bindings holding values that
// are not comparable are never equal.
func (b Binding) Equal(o Binding) (equal bool) {
	if b.d != o.d || len(b.values) != len(o.values) {
		return false
	}
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	for k, v := range b.values {
		ov, ok := o.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

func sortedNames(args Args) []string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
