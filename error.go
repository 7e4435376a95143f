package npartial

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ConfigurationError is returned when a descriptor cannot be built for
// a target type: no target was given, the target has no constructor that
// can be inspected, or the constructor takes no parameters.
type ConfigurationError struct {
	Target string
	cause  error
}

func configurationError(target string, format string, args ...any) error {
	return &ConfigurationError{
		Target: target,
		cause:  errors.Errorf(format, args...),
	}
}

func (e *ConfigurationError) Error() string {
	if e.Target == "" {
		return "npartial: " + e.cause.Error()
	}
	return fmt.Sprintf("npartial: %s: %s", e.Target, e.cause)
}

func (e *ConfigurationError) Cause() error  { return e.cause }
func (e *ConfigurationError) Unwrap() error { return e.cause }

// NameError is returned when an argument name is not one of the
// constructor parameters of the target.
type NameError struct {
	Target     string
	Name       string
	Known      []string
	Suggestion string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("npartial: constructor parameter %q does not exist for %s", e.Name, e.Target)
}

func (e *NameError) details() string {
	s := "parameters: " + strings.Join(e.Known, ", ")
	if e.Suggestion != "" {
		s = fmt.Sprintf("Did you mean %q?\n", e.Suggestion) + s
	}
	return s
}

// TypeMismatchError is returned when a value is not acceptable for
// the parameter it is supplied for.
type TypeMismatchError struct {
	Target   string
	Name     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("npartial: expected %q of %s to be of type %s, but got a value of type %s",
		e.Name, e.Target, e.Expected, e.Actual)
}

// OversaturationError is returned when a partial is created with
// arguments that already satisfy every parameter.  Such a value should
// be constructed directly.
type OversaturationError struct {
	Target string
	Names  []string
}

func (e *OversaturationError) Error() string {
	return fmt.Sprintf("npartial: %s should be partially applied, otherwise use regular construction", e.Target)
}

func (e *OversaturationError) details() string {
	return "supplied: " + strings.Join(e.Names, ", ")
}

// NotYetConstructedError is returned when an instance is requested
// from a result that is still partial.
type NotYetConstructedError struct {
	Target  string
	Bound   []string
	Missing []string
}

func (e *NotYetConstructedError) Error() string {
	return fmt.Sprintf("npartial: %s is only partially constructed, missing %s",
		e.Target, strings.Join(e.Missing, ", "))
}

func (e *NotYetConstructedError) details() string {
	return renderNames(e.Bound, e.Missing)
}

type detailer interface {
	details() string
}

// DetailedError transforms errors into strings.  If the error
// carries diagnostics (the bound and missing parameters of a partial,
// a suggested parameter name) then those are included after the
// message.  Otherwise it is the same as err.Error().
func DetailedError(err error) string {
	if err == nil {
		return ""
	}
	var d detailer
	if errors.As(err, &d) {
		return err.Error() + "\n\n" + d.details()
	}
	return err.Error()
}
