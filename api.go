package npartial

import (
	"reflect"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Partial is a target type with some of its constructor parameters
// bound.  A Partial is never saturated: once the last parameter is
// bound, Apply constructs the target instead.  A Partial is never
// modified so it can be reused and shared.
type Partial struct {
	d   *Descriptor
	b   Binding
	log hclog.Logger
}

// New creates an empty Partial using the DefaultRegistry.  The
// target can be a reflect.Type or a value of the target type.
func New(target any) (*Partial, error) {
	return DefaultRegistry.New(target)
}

// NewWith creates a Partial with initial arguments using the DefaultRegistry
func NewWith(target any, args Args) (*Partial, error) {
	return DefaultRegistry.NewWith(target, args)
}

// New creates an empty Partial.  The target can be a reflect.Type or
// a value of the target type.
func (r *Registry) New(target any) (*Partial, error) {
	d, err := r.Descriptor(target)
	if err != nil {
		return nil, err
	}
	return &Partial{
		d:   d,
		b:   EmptyBinding(d),
		log: r.options.logger,
	}, nil
}

// NewWith creates a Partial with initial arguments.  It is like New
// followed by Apply except that the arguments may not bind every
// parameter: if they would, an *OversaturationError is returned and
// the target should be constructed directly instead.
//
// Apply does not have this restriction.
func (r *Registry) NewWith(target any, args Args) (*Partial, error) {
	p, err := r.New(target)
	if err != nil {
		return nil, err
	}
	if err := CheckAll(p.d, args); err != nil {
		return nil, err
	}
	b, err := p.b.Fill(args)
	if err != nil {
		return nil, err
	}
	if b.IsSaturated() {
		return nil, &OversaturationError{
			Target: p.d.name,
			Names:  b.Bound(),
		}
	}
	p.b = b
	return p, nil
}

// Apply binds more arguments.  Arguments override values that are
// already bound.  If every parameter is then bound, the target is
// constructed and returned in the Result.  Otherwise the Result holds
// a new Partial.  Either way, p is not modified.
//
// Arguments are type checked before anything is bound: on error,
// nothing has changed.
func (p *Partial) Apply(args Args) (Result, error) {
	if err := CheckAll(p.d, args); err != nil {
		return Result{}, err
	}
	incoming, err := EmptyBinding(p.d).Fill(args)
	if err != nil {
		return Result{}, err
	}
	b := incoming.MergeOnto(p.b)
	if !b.IsSaturated() {
		p.log.Trace("partially applied", "target", p.d.name, "bound", b.Bound(), "missing", b.Missing())
		return Result{
			partial: &Partial{
				d:   p.d,
				b:   b,
				log: p.log,
			},
		}, nil
	}
	instance, err := p.d.construct(b)
	if err != nil {
		return Result{}, err
	}
	p.log.Trace("constructed", "target", p.d.name)
	return Result{
		instance: instance,
		resolved: true,
	}, nil
}

// MustApply calls Apply and panics if Apply returns an error
func (p *Partial) MustApply(args Args) Result {
	r, err := p.Apply(args)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// Descriptor returns the shared descriptor of the target
func (p *Partial) Descriptor() *Descriptor { return p.d }

// Binding returns the bound values
func (p *Partial) Binding() Binding { return p.b }

// Get returns a bound value
func (p *Partial) Get(name string) (any, bool) { return p.b.Get(name) }

// Has reports if a parameter is bound
func (p *Partial) Has(name string) bool { return p.b.Has(name) }

// Bound returns the names of the bound parameters in declaration order
func (p *Partial) Bound() []string { return p.b.Bound() }

// Missing returns the names of the unbound parameters in declaration order
func (p *Partial) Missing() []string { return p.b.Missing() }

// Instance always fails: a Partial is not the target.  It returns a
// *NotYetConstructedError describing what is bound and what is missing.
func (p *Partial) Instance() (any, error) {
	return nil, p.notYetConstructed()
}

func (p *Partial) notYetConstructed() error {
	return &NotYetConstructedError{
		Target:  p.d.name,
		Bound:   p.b.Bound(),
		Missing: p.b.Missing(),
	}
}

// Result is what Apply returns: either a still-partial Partial or
// a constructed instance of the target.
type Result struct {
	partial  *Partial
	instance any
	resolved bool
}

// IsResolved is true if the target was constructed
func (r Result) IsResolved() bool { return r.resolved }

// Partial returns the still-partial result or nil if the
// target was constructed.
func (r Result) Partial() *Partial { return r.partial }

// Instance returns the constructed target.  If the result is still
// partial, it returns a *NotYetConstructedError.
func (r Result) Instance() (any, error) {
	if r.resolved {
		return r.instance, nil
	}
	if r.partial == nil {
		return nil, errors.New("npartial: empty result")
	}
	return r.partial.Instance()
}

// Instance returns the constructed target as a T
func Instance[T any](r Result) (T, error) {
	var zero T
	i, err := r.Instance()
	if err != nil {
		return zero, err
	}
	if i == nil {
		return zero, nil
	}
	t, ok := i.(T)
	if !ok {
		return zero, errors.Errorf("npartial: constructed %s is not a %s",
			describeType(reflect.TypeOf(i)), describeType(reflect.TypeOf((*T)(nil)).Elem()))
	}
	return t, nil
}
