package npartial

import (
	"reflect"

	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

// Descriptor is what is known about the constructor of a target type:
// its parameter names in declaration order and the ExpectedType of each.
// Descriptors are built once per target type by a Registry and are
// never modified afterwards.
type Descriptor struct {
	target  reflect.Type
	name    string
	names   []string
	index   map[string]int
	typeMap map[string]ExpectedType
	ctor    Constructor
}

func buildDescriptor(c Constructor) (*Descriptor, error) {
	if c == nil {
		return nil, configurationError("", "no target type specified")
	}
	target := c.Target()
	if target == nil {
		if _, err := c.Parameters(); err != nil {
			return nil, &ConfigurationError{cause: errors.Wrap(err, "no inspectable constructor")}
		}
		return nil, configurationError("", "no target type specified")
	}
	name := typeName(target)
	params, err := c.Parameters()
	if err != nil {
		return nil, &ConfigurationError{
			Target: name,
			cause:  errors.Wrap(err, "no inspectable constructor"),
		}
	}
	if len(params) == 0 {
		return nil, configurationError(name,
			"there is no point in enabling partial construction for %s which has zero parameters", name)
	}
	d := &Descriptor{
		target:  target,
		name:    name,
		names:   make([]string, len(params)),
		index:   make(map[string]int, len(params)),
		typeMap: make(map[string]ExpectedType),
		ctor:    c,
	}
	for i, p := range params {
		if p.Name == "" {
			return nil, configurationError(name, "parameter %d has no name", i)
		}
		if _, dup := d.index[p.Name]; dup {
			return nil, configurationError(name, "parameter name %q is used more than once", p.Name)
		}
		if p.Expected.Kind == NamedTypeKind && p.Expected.Type == nil {
			return nil, configurationError(name, "parameter %q is a named type without a type", p.Name)
		}
		d.names[i] = p.Name
		d.index[p.Name] = i
		if p.Expected.Kind != UnconstrainedKind {
			d.typeMap[p.Name] = p.Expected
		}
	}
	return d, nil
}

// Target is the type that is constructed
func (d *Descriptor) Target() reflect.Type { return d.target }

// String is the name of the target type
func (d *Descriptor) String() string { return d.name }

// NumIn is the number of constructor parameters
func (d *Descriptor) NumIn() int { return len(d.names) }

// Names returns the parameter names in declaration order.  The
// returned slice is a copy.
func (d *Descriptor) Names() []string {
	n := make([]string, len(d.names))
	copy(n, d.names)
	return n
}

// Expected returns the ExpectedType for a parameter.  Parameters that
// have no recorded expectation are Unconstrained.
func (d *Descriptor) Expected(name string) ExpectedType {
	if e, ok := d.typeMap[name]; ok {
		return e
	}
	return Unconstrained()
}

func (d *Descriptor) has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// construct invokes the constructor with values in parameter order
func (d *Descriptor) construct(b Binding) (any, error) {
	args := make([]reflect.Value, len(d.names))
	for i, name := range d.names {
		v, _ := b.Get(name)
		args[i] = reflect.ValueOf(v)
	}
	out, err := d.ctor.Call(args)
	if err != nil {
		return nil, errors.Wrapf(err, "construct %s", d.name)
	}
	if !out.IsValid() {
		return nil, nil
	}
	return out.Interface(), nil
}

// typeName renders the non-pointer name of a type: it is how
// partial-capable names are derived.
func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return reflectutils.TypeName(t)
}
