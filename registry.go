package npartial

import (
	"reflect"
	"sort"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Registry holds Constructors and the Descriptors built from them.
// A Descriptor is built the first time a target type is used and is
// then shared by every Partial of that type.
//
// Struct types do not need to be registered: they are introspected
// with Struct when first used.
type Registry struct {
	lock        sync.Mutex
	options     registryOptions
	ctors       map[reflect.Type]Constructor
	descriptors map[reflect.Type]*Descriptor
	byName      map[string]reflect.Type
}

type registryOptions struct {
	logger  hclog.Logger
	tag     string
	mapping NameMapping
}

// RegistryOpt is a functional argument for NewRegistry
type RegistryOpt func(*registryOptions)

// WithLogger sets the logger.  The default discards everything.
// Descriptor builds are logged at debug level and applications
// at trace level.
func WithLogger(logger hclog.Logger) RegistryOpt {
	return func(o *registryOptions) {
		o.logger = logger
	}
}

// WithTag sets the struct tag used to name parameters of structs
// that are introspected without being registered.  The default
// tag is "npartial".
func WithTag(tag string) RegistryOpt {
	return func(o *registryOptions) {
		o.tag = tag
	}
}

// WithNameMapping sets how partial-capable names are derived from
// target type names.  The default is Postfix("_").
func WithNameMapping(mapping NameMapping) RegistryOpt {
	return func(o *registryOptions) {
		o.mapping = mapping
	}
}

// NewRegistry creates an empty Registry
func NewRegistry(opts ...RegistryOpt) *Registry {
	options := registryOptions{
		logger:  hclog.NewNullLogger(),
		tag:     defaultTag,
		mapping: Postfix("_"),
	}
	for _, f := range opts {
		f(&options)
	}
	options.logger = options.logger.Named("npartial")
	return &Registry{
		options:     options,
		ctors:       make(map[reflect.Type]Constructor),
		descriptors: make(map[reflect.Type]*Descriptor),
		byName:      make(map[string]reflect.Type),
	}
}

// DefaultRegistry backs the package-level functions
var DefaultRegistry = NewRegistry()

// Register records how to introspect and construct the target type
// of c.  Each target type can only be registered once and it must be
// registered before its first use.
func Register(c Constructor) error {
	return DefaultRegistry.Register(c)
}

// MustRegister calls Register and panics if Register returns an error
func MustRegister(c Constructor) {
	DefaultRegistry.MustRegister(c)
}

// Register records how to introspect and construct the target type
// of c.
func (r *Registry) Register(c Constructor) error {
	if c == nil || c.Target() == nil {
		_, err := buildDescriptor(c)
		return err
	}
	t := c.Target()
	name := typeName(t)
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.ctors[t]; ok {
		return configurationError(name, "a constructor for %s is already registered", describeType(t))
	}
	if _, ok := r.descriptors[t]; ok {
		return configurationError(name, "%s was used before it was registered", describeType(t))
	}
	if other, ok := r.byName[name]; ok {
		return configurationError(name, "%s and %s have the same name", describeType(other), describeType(t))
	}
	r.ctors[t] = c
	r.byName[name] = t
	r.options.logger.Debug("registered constructor", "target", name)
	return nil
}

// MustRegister calls Register and panics if Register returns an error
func (r *Registry) MustRegister(c Constructor) {
	if err := r.Register(c); err != nil {
		panic(err.Error())
	}
}

// Descriptor returns the descriptor for target, building it if
// this is the first use of target.  The target can be a reflect.Type
// or a value of the target type.  Failed builds are not remembered.
func (r *Registry) Descriptor(target any) (*Descriptor, error) {
	t := targetType(target)
	if t == nil {
		return nil, configurationError("", "no target type specified")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if d, ok := r.descriptors[t]; ok {
		return d, nil
	}
	c, ok := r.ctors[t]
	if !ok {
		c = structWithTag(t, r.options.tag)
	}
	d, err := buildDescriptor(c)
	if err != nil {
		r.options.logger.Debug("cannot build descriptor", "target", describeType(t), "error", err)
		return nil, err
	}
	r.descriptors[t] = d
	r.options.logger.Debug("built descriptor", "target", d.name, "parameters", d.names)
	return d, nil
}

// Preload builds the descriptors for several targets so that
// configuration problems are found at program initialization.
// All failures are returned together.
func (r *Registry) Preload(targets ...any) error {
	var result *multierror.Error
	for _, target := range targets {
		if _, err := r.Descriptor(target); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Cached returns the names of the types that have descriptors, sorted
func (r *Registry) Cached() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	names := make([]string, 0, len(r.descriptors))
	for t := range r.descriptors {
		names = append(names, describeType(t))
	}
	sort.Strings(names)
	return names
}

func (r *Registry) registered(name string) (reflect.Type, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	t, ok := r.byName[name]
	return t, ok
}

func targetType(target any) reflect.Type {
	if target == nil {
		return nil
	}
	if t, isType := target.(reflect.Type); isType {
		return t
	}
	return reflect.TypeOf(target)
}
