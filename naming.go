package npartial

import (
	"strings"
)

// NameMapping relates the name of a target type to the name that
// refers to its partial-capable form.
type NameMapping interface {
	// From returns the target type name for a partial-capable
	// name.  The second return value is false if name is not
	// a partial-capable name.
	From(name string) (string, bool)
	// To returns the partial-capable name for a target type name
	To(name string) string
}

// Postfix is a NameMapping that appends a suffix to target type
// names: with Postfix("_"), "pkg.Apple_" refers to "pkg.Apple".
type Postfix string

var _ NameMapping = Postfix("")

func (p Postfix) From(name string) (string, bool) {
	if p == "" || len(name) <= len(p) || !strings.HasSuffix(name, string(p)) {
		return "", false
	}
	return strings.TrimSuffix(name, string(p)), true
}

func (p Postfix) To(name string) string {
	return name + string(p)
}

// PartialName returns the partial-capable name of a target type.  The
// target can be a reflect.Type or a value of the target type.
func (r *Registry) PartialName(target any) string {
	t := targetType(target)
	if t == nil {
		return ""
	}
	return r.options.mapping.To(typeName(t))
}

// Lookup resolves a partial-capable name to a new, empty, Partial for
// the registered type that it names.  Only registered types can be
// looked up by name.
func (r *Registry) Lookup(partialName string) (*Partial, error) {
	targetName, ok := r.options.mapping.From(partialName)
	if !ok {
		return nil, configurationError("", "%q is not a partial-capable name", partialName)
	}
	t, ok := r.registered(targetName)
	if !ok {
		return nil, configurationError(targetName, "no type named %s is registered", targetName)
	}
	return r.New(t)
}

// Lookup resolves a partial-capable name using the DefaultRegistry
func Lookup(partialName string) (*Partial, error) {
	return DefaultRegistry.Lookup(partialName)
}
