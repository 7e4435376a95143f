package npartial

import (
	"reflect"
)

// Check validates a single value against the ExpectedType recorded for
// name.  Names with no recorded expectation, including names that are
// not parameters at all, are unconstrained.  Untyped nil always passes
// since it binds nothing.
func Check(d *Descriptor, name string, value any) error {
	if value == nil {
		return nil
	}
	expected := d.Expected(name)
	v := reflect.ValueOf(value)
	if expected.accepts(v) {
		return nil
	}
	return &TypeMismatchError{
		Target:   d.name,
		Name:     name,
		Expected: expected.String(),
		Actual:   actualKind(v),
	}
}

// CheckAll validates every entry of args, in sorted name order, and
// returns the first mismatch.
func CheckAll(d *Descriptor, args Args) error {
	for _, name := range sortedNames(args) {
		if err := Check(d, name, args[name]); err != nil {
			return err
		}
	}
	return nil
}
