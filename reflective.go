package npartial

import (
	"reflect"

	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

// Constructor is how a target type is introspected and instantiated.
// Go reflection cannot discover constructor parameter names so a
// Constructor supplies them.  Parameters must be deterministic.
//
// Call receives one value per parameter, in the order returned by
// Parameters.  Values have already been checked against the
// ExpectedType of their parameter.
type Constructor interface {
	Target() reflect.Type
	Parameters() ([]Parameter, error)
	Call(args []reflect.Value) (reflect.Value, error)
}

// Parameter is one named constructor input
type Parameter struct {
	Name     string
	Expected ExpectedType
}

// Func creates a Constructor from a constructor function.  The target
// type is the first return value of fn.  fn may also return an error
// as its second return value.  Since parameter names are not available
// through reflection, a name must be provided for each input of fn.
//
//	npartial.Func(NewApple, "color", "worm")
//
// Variadic functions are not supported.
func Func(fn any, names ...string) Constructor {
	return funcConstructor{
		fn:    reflect.ValueOf(fn),
		names: names,
	}
}

type funcConstructor struct {
	fn    reflect.Value
	names []string
}

var _ Constructor = funcConstructor{}

func (c funcConstructor) Target() reflect.Type {
	if !c.fn.IsValid() || c.fn.Kind() != reflect.Func || c.fn.Type().NumOut() == 0 {
		return nil
	}
	return c.fn.Type().Out(0)
}

func (c funcConstructor) Parameters() ([]Parameter, error) {
	if !c.fn.IsValid() {
		return nil, errors.New("constructor function is not a valid value")
	}
	t := c.fn.Type()
	if t.Kind() != reflect.Func {
		return nil, errors.Errorf("constructor must be a function, not %s", reflectutils.TypeName(t))
	}
	if c.fn.IsNil() {
		return nil, errors.New("constructor function cannot be nil")
	}
	if t.IsVariadic() {
		return nil, errors.Errorf("variadic constructor %s is not supported", t)
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return nil, errors.Errorf("second return value of constructor %s must be error", t)
		}
	default:
		return nil, errors.Errorf("constructor %s must return the target or the target and an error", t)
	}
	if t.NumIn() != len(c.names) {
		return nil, errors.Errorf("constructor %s takes %d parameters but %d names were given",
			t, t.NumIn(), len(c.names))
	}
	params := make([]Parameter, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		params[i] = Parameter{
			Name:     c.names[i],
			Expected: ExpectedFor(t.In(i)),
		}
	}
	return params, nil
}

func (c funcConstructor) Call(args []reflect.Value) (reflect.Value, error) {
	t := c.fn.Type()
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = assignable(arg, t.In(i))
	}
	out := c.fn.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}
	return out[0], nil
}

// assignable converts untyped values into the zero value of the
// parameter type so that reflect.Value.Call accepts them
func assignable(v reflect.Value, t reflect.Type) reflect.Value {
	if !v.IsValid() {
		return reflect.Zero(t)
	}
	return v
}

// DescriptionBuilder registers a constructor explicitly: each
// parameter is listed with its name and ExpectedType.
type DescriptionBuilder struct {
	target reflect.Type
	params []Parameter
}

// Describe starts an explicit description of how to construct target.
// The model can be a reflect.Type or a value of the target type.
//
//	npartial.Describe(Apple{}).
//		Param("color", npartial.NamedType(reflect.TypeOf(Color{}))).
//		Param("worm", npartial.Unconstrained()).
//		Build(func(args []any) (any, error) { ... })
func Describe(model any) *DescriptionBuilder {
	t, isType := model.(reflect.Type)
	if !isType {
		t = reflect.TypeOf(model)
	}
	return &DescriptionBuilder{target: t}
}

// Param adds a parameter.  The builder is modified and returned.
func (b *DescriptionBuilder) Param(name string, expected ExpectedType) *DescriptionBuilder {
	b.params = append(b.params, Parameter{Name: name, Expected: expected})
	return b
}

// Build finishes the description.  fn is called with the argument values
// in parameter order once every parameter is bound.
func (b *DescriptionBuilder) Build(fn func(args []any) (any, error)) Constructor {
	params := make([]Parameter, len(b.params))
	copy(params, b.params)
	return describedConstructor{
		target: b.target,
		params: params,
		fn:     fn,
	}
}

type describedConstructor struct {
	target reflect.Type
	params []Parameter
	fn     func(args []any) (any, error)
}

var _ Constructor = describedConstructor{}

func (c describedConstructor) Target() reflect.Type { return c.target }

func (c describedConstructor) Parameters() ([]Parameter, error) {
	if c.fn == nil {
		return nil, errors.New("described constructor has no construction function")
	}
	return c.params, nil
}

func (c describedConstructor) Call(args []reflect.Value) (reflect.Value, error) {
	in := make([]any, len(args))
	for i, arg := range args {
		if arg.IsValid() {
			in[i] = arg.Interface()
		}
	}
	out, err := c.fn(in)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(out), nil
}
