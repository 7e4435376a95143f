package npartial

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Inner struct {
	Depth int `npartial:"depth"`
}

type Outer struct {
	Inner
	Name    string `npartial:"name,omitempty"`
	Skipped string `npartial:"-"`
	private string
	Nested  Color
	Ptr     *Worm
}

func NewInfectedColorApple(color Color, worm *Worm) InfectedColorApple {
	return InfectedColorApple{Color: color, Worm: worm}
}

func TestStructIntrospection(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	d, err := r.Descriptor(Outer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"depth", "name", "Nested", "Ptr"}, d.Names())
	assert.Equal(t, 4, d.NumIn())
	assert.Equal(t, reflect.TypeOf(Outer{}), d.Target())
	assert.Equal(t, NamedType(reflect.TypeOf(Color{})), d.Expected("Nested"))

	p, err := r.New(Outer{})
	require.NoError(t, err)
	assert.Same(t, d, p.Descriptor())
	res, err := p.Apply(Args{
		"depth":  1,
		"name":   "n",
		"Nested": Color{Name: "c"},
		"Ptr":    &Worm{Size: 9},
	})
	require.NoError(t, err)
	o, err := Instance[Outer](res)
	require.NoError(t, err)
	assert.Equal(t, 1, o.Depth)
	assert.Equal(t, "n", o.Name)
	assert.Equal(t, "", o.Skipped)
	assert.Equal(t, "c", o.Nested.Name)
	assert.Equal(t, 9, o.Ptr.Size)
}

func TestStructPointerModel(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	p, err := r.New(&InfectedColorApple{})
	require.NoError(t, err)
	res, err := p.Apply(Args{"color": Color{Name: "red"}, "worm": &Worm{}})
	require.NoError(t, err)
	a, err := Instance[*InfectedColorApple](res)
	require.NoError(t, err)
	assert.Equal(t, "red", a.Color.Name)
}

func TestStructWithOtherTag(t *testing.T) {
	t.Parallel()
	type tagged struct {
		A int `other:"alpha"`
		B int `npartial:"beta"`
	}
	d, err := NewRegistry(WithTag("other")).Descriptor(tagged{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "B"}, d.Names())
}

func TestFuncConstructor(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Register(Func(NewInfectedColorApple, "color", "worm")))
	d, err := r.Descriptor(InfectedColorApple{})
	require.NoError(t, err)
	assert.Equal(t, []string{"color", "worm"}, d.Names())
	assert.Equal(t, NamedType(reflect.TypeOf(&Worm{})), d.Expected("worm"))

	p, err := r.NewWith(InfectedColorApple{}, Args{"worm": &Worm{Size: 2}})
	require.NoError(t, err)
	a, err := Instance[InfectedColorApple](p.MustApply(Args{"color": Color{Name: "blue"}}))
	require.NoError(t, err)
	assert.Equal(t, "blue", a.Color.Name)
	assert.Equal(t, 2, a.Worm.Size)
}

func TestDescribedConstructor(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Register(Describe(Bar{}).
		Param("g", Invocable(nil)).
		Param("label", NamedType(reflect.TypeOf(""))).
		Build(func(args []any) (any, error) {
			return Bar{G: args[0].(func(int) int)}, nil
		})))
	p, err := r.NewWith(Bar{}, Args{"label": "double"})
	require.NoError(t, err)
	assert.Equal(t, []string{"g"}, p.Missing())
	b, err := Instance[Bar](p.MustApply(Args{"g": func(i int) int { return i * 2 }}))
	require.NoError(t, err)
	assert.Equal(t, 8, b.G(4))
}

func TestConfigurationErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		want   string
		ctor   Constructor
		target any
	}{
		{
			want:   "zero parameters",
			target: Empty{},
		},
		{
			want:   "no target type specified",
			target: nil,
		},
		{
			want:   "must be given a struct or pointer to struct",
			target: 7,
		},
		{
			want: "no target type specified",
			ctor: Describe(nil).Param("a", Unconstrained()).Build(func([]any) (any, error) { return nil, nil }),
		},
		{
			want: "has no construction function",
			ctor: Describe(Foo{}).Param("a", Unconstrained()).Build(nil),
		},
		{
			want: "zero parameters",
			ctor: Func(func() Triple { return Triple{} }),
		},
		{
			want: "constructor must be a function",
			ctor: Func(7),
		},
		{
			want: "takes 2 parameters but 1 names were given",
			ctor: Func(NewInfectedColorApple, "color"),
		},
		{
			want: "is used more than once",
			ctor: Func(NewInfectedColorApple, "color", "color"),
		},
		{
			want: "has no name",
			ctor: Func(NewInfectedColorApple, "color", ""),
		},
		{
			want: "variadic",
			ctor: Func(func(a ...int) Triple { return Triple{} }, "a"),
		},
		{
			want: "second return value",
			ctor: Func(func(a int) (Triple, int) { return Triple{}, a }, "a"),
		},
		{
			want: "is a named type without a type",
			ctor: Describe(Foo{}).Param("a", ExpectedType{Kind: NamedTypeKind}).Build(func([]any) (any, error) { return nil, nil }),
		},
	}
	for _, tc := range cases {
		t.Log(tc.want)
		r := NewRegistry()
		var err error
		if tc.ctor != nil {
			err = r.Register(tc.ctor)
			if err == nil {
				_, err = r.Descriptor(tc.ctor.Target())
			}
		} else {
			_, err = r.Descriptor(tc.target)
		}
		if assert.Error(t, err, tc.want) {
			assert.Contains(t, err.Error(), tc.want)
			var ce *ConfigurationError
			assert.True(t, errors.As(err, &ce), "%T", err)
		}
	}
}

func TestDuplicateFieldNames(t *testing.T) {
	t.Parallel()
	type dup struct {
		A int `npartial:"x"`
		B int `npartial:"x"`
	}
	_, err := NewRegistry().Descriptor(dup{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter name "x" is used by more than one field`)
}
