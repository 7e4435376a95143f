package npartial

// Parameters must be classified before values can be checked against them.
// This file defines the categories and how Go types map onto them.

import (
	"reflect"

	"github.com/muir/reflectutils"
)

// ExpectedKind is the category of an ExpectedType
type ExpectedKind int

const (
	UnconstrainedKind     ExpectedKind = iota // unconstrained
	NamedTypeKind                             // named-type
	GenericCollectionKind                     // collection
	InvocableKind                             // invocable
)

func (k ExpectedKind) String() string {
	switch k {
	case UnconstrainedKind:
		return "unconstrained"
	case NamedTypeKind:
		return "named-type"
	case GenericCollectionKind:
		return "collection"
	case InvocableKind:
		return "invocable"
	default:
		return "?"
	}
}

// ExpectedType describes what values are acceptable for one
// constructor parameter.  Type is always set for NamedTypeKind.
// For GenericCollectionKind and InvocableKind, Type is optional:
// when it is set, values must also be assignable to it.
type ExpectedType struct {
	Kind ExpectedKind
	Type reflect.Type
}

// Unconstrained accepts any value
func Unconstrained() ExpectedType {
	return ExpectedType{Kind: UnconstrainedKind}
}

// NamedType accepts values that are assignable to t: values of
// type t, and values that implement t when t is an interface.
func NamedType(t reflect.Type) ExpectedType {
	return ExpectedType{Kind: NamedTypeKind, Type: t}
}

// GenericCollection accepts slices, arrays, and maps.  If t is not
// nil, the value must also be assignable to t.
func GenericCollection(t reflect.Type) ExpectedType {
	return ExpectedType{Kind: GenericCollectionKind, Type: t}
}

// Invocable accepts functions.  If t is not nil, the value
// must also be assignable to t.
func Invocable(t reflect.Type) ExpectedType {
	return ExpectedType{Kind: InvocableKind, Type: t}
}

// ExpectedFor classifies a declared parameter type.
//
// The empty interface is unconstrained.  Functions are invocable.
// Slices, arrays, and maps are collections.  Everything else,
// including basic types, is a named type since a reflective call
// cannot accept a value that isn't assignable.
func ExpectedFor(t reflect.Type) ExpectedType {
	if t == nil {
		return Unconstrained()
	}
	//nolint:exhaustive // on purpose
	switch t.Kind() {
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return Unconstrained()
		}
		return NamedType(t)
	case reflect.Func:
		return Invocable(t)
	case reflect.Slice, reflect.Array, reflect.Map:
		return GenericCollection(t)
	default:
		return NamedType(t)
	}
}

// String is used in error messages: it names the declared type
// when there is one, otherwise the kind.
func (e ExpectedType) String() string {
	if e.Type != nil && e.Kind != UnconstrainedKind {
		return reflectutils.TypeName(e.Type)
	}
	return e.Kind.String()
}

// accepts reports if the value could be bound to a parameter
// with this expectation.  An invalid value (untyped nil) is
// only acceptable when unconstrained.
func (e ExpectedType) accepts(v reflect.Value) bool {
	switch e.Kind {
	case UnconstrainedKind:
		return true
	case NamedTypeKind:
		return v.IsValid() && e.Type != nil && v.Type().AssignableTo(e.Type)
	case GenericCollectionKind:
		if !v.IsValid() {
			return false
		}
		//nolint:exhaustive // on purpose
		switch v.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
		default:
			return false
		}
		return e.Type == nil || v.Type().AssignableTo(e.Type)
	case InvocableKind:
		if !v.IsValid() || v.Kind() != reflect.Func {
			return false
		}
		return e.Type == nil || v.Type().AssignableTo(e.Type)
	default:
		return false
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// actualKind names the type of a value for error messages
func actualKind(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return reflectutils.TypeName(v.Type())
}
