// Obligatory // comment

/*

Package npartial provides partial application of constructors.  A
Partial binds some of the named parameters of a target type's
constructor.  More arguments can be supplied later, possibly in several
steps.  When the last parameter is bound, the target is constructed.

This is useful for partial dependency injection: bind the dependencies
that are known at program initialization and let the call sites supply
the rest.

Constructors

Go reflection does not expose parameter names so the names of the
constructor parameters must come from somewhere.  There are three ways
to describe a constructor.

Structs are introspected: each exported field is a parameter.  The
parameter name is the field name unless a struct tag overrides it.

	type Apple struct {
		Color Color `npartial:"color"`
		Worm  *Worm `npartial:"worm"`
	}

Constructor functions are registered with their parameter names:

	npartial.MustRegister(npartial.Func(NewApple, "color", "worm"))

Anything else can be described explicitly:

	npartial.MustRegister(npartial.Describe(Apple{}).
		Param("color", npartial.NamedType(reflect.TypeOf(Color{}))).
		Param("worm", npartial.Unconstrained()).
		Build(func(args []any) (any, error) {
			return Apple{Color: args[0].(Color), Worm: args[1].(*Worm)}, nil
		}))

Applying arguments

	p, err := npartial.New(Apple{})
	r, err := p.Apply(npartial.Args{"color": Color{}})
	r.IsResolved() // false
	r, err = r.Partial().Apply(npartial.Args{"worm": &Worm{}})
	apple, err := npartial.Instance[Apple](r)

Partials are never modified by Apply so the same Partial can be
completed more than once with different arguments.  Arguments to
Apply override values that are already bound.

NewWith creates a Partial with some arguments already bound.  Unlike
Apply, it refuses arguments that would bind every parameter: use the
constructor directly in that case.

Types

Each parameter has an ExpectedType derived from its declared Go type.
Values are checked when they are applied and an Apply that fails does
not bind anything.  Parameters declared as the empty interface accept
anything.  Function parameters accept functions, slice, array, and map
parameters accept collections, and everything else accepts values that
are assignable to the declared type.

Names

A Registry relates a partial-capable name (by default the type name
followed by "_") to a registered type.  Lookup("pkg.Apple_") returns
an empty Partial for pkg.Apple.

*/
package npartial
