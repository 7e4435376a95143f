package npartial

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

const defaultTag = "npartial"

// Struct creates a Constructor that builds a struct by assigning each
// of its exported fields.  The model must be a struct or a pointer to
// a struct.  If it is a pointer, the constructed value is a pointer.
//
// Parameters are the exported fields in declaration order.  Fields of
// embedded structs are parameters too.  The parameter name is the
// field name unless the struct tag (default "npartial") provides
// another one.  A tag of "-" skips the field.
//
//	type Apple struct {
//		Color Color `npartial:"color"`
//		Worm  *Worm `npartial:"worm"`
//		Bites int   `npartial:"-"`
//	}
func Struct(model any) Constructor {
	return structWithTag(model, defaultTag)
}

func structWithTag(model any, tag string) Constructor {
	t, isType := model.(reflect.Type)
	if !isType {
		t = reflect.TypeOf(model)
	}
	f := filler{
		model: t,
		tag:   tag,
	}
	f.params, f.mappings, f.err = f.inputs()
	return f
}

// filler tracks how to fill a struct
type filler struct {
	model    reflect.Type
	tag      string
	params   []Parameter
	mappings [][]int
	err      error
}

var _ Constructor = filler{}

func (f filler) Target() reflect.Type { return f.model }

func (f filler) structType() (reflect.Type, bool) {
	t := f.model
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

// inputs walks the struct and returns the parameters and, for each one,
// the index path to the field that it fills.
func (f filler) inputs() ([]Parameter, [][]int, error) {
	t, ok := f.structType()
	if !ok {
		return nil, nil, errors.Errorf("struct constructor must be given a struct or pointer to struct, not %s",
			describeType(f.model))
	}
	var params []Parameter
	var mappings [][]int
	seen := make(map[string]struct{})
	var walkErr error
	reflectutils.WalkStructElements(t, func(field reflect.StructField) bool {
		if walkErr != nil {
			return false
		}
		r, _ := utf8.DecodeRuneInString(field.Name)
		if !unicode.IsUpper(r) && !field.Anonymous {
			return false
		}
		name := field.Name
		if f.tag != "" {
			if tv, ok := field.Tag.Lookup(f.tag); ok {
				tv = strings.Split(tv, ",")[0]
				switch tv {
				case "-":
					return false
				case "":
				default:
					name = tv
				}
			}
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			// filled field-by-field
			return true
		}
		if !unicode.IsUpper(r) {
			return false
		}
		if _, dup := seen[name]; dup {
			walkErr = errors.Errorf("parameter name %q is used by more than one field of %s",
				name, reflectutils.TypeName(t))
			return false
		}
		seen[name] = struct{}{}
		params = append(params, Parameter{
			Name:     name,
			Expected: ExpectedFor(field.Type),
		})
		mappings = append(mappings, copyIntSlice(field.Index))
		return false
	})
	if walkErr != nil {
		return nil, nil, walkErr
	}
	return params, mappings, nil
}

func (f filler) Parameters() ([]Parameter, error) {
	return f.params, f.err
}

func (f filler) Call(args []reflect.Value) (reflect.Value, error) {
	if f.err != nil {
		return reflect.Value{}, f.err
	}
	t, _ := f.structType()
	if len(args) != len(f.mappings) {
		return reflect.Value{}, errors.Errorf("%s needs %d fields, got %d",
			reflectutils.TypeName(t), len(f.mappings), len(args))
	}
	r := reflect.New(t)
	v := r.Elem()
	for i, arg := range args {
		fv := v.FieldByIndex(f.mappings[i])
		fv.Set(assignable(arg, fv.Type()))
	}
	if f.model.Kind() == reflect.Ptr {
		return r, nil
	}
	return v, nil
}

func copyIntSlice(in []int) []int {
	c := make([]int, len(in))
	copy(c, in)
	return c
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return reflectutils.TypeName(t)
}
