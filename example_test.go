package npartial_test

import (
	"fmt"

	"github.com/muir/npartial"
)

type Database struct {
	DSN string
}

type Logger struct {
	Prefix string
}

type Service struct {
	DB     *Database `npartial:"db"`
	Log    *Logger   `npartial:"log"`
	Tenant string    `npartial:"tenant"`
}

// Example binds the dependencies that are known at startup and lets
// each call site supply the rest.
func Example() {
	base, err := npartial.NewWith(Service{}, npartial.Args{
		"db":  &Database{DSN: "postgres://"},
		"log": &Logger{Prefix: "svc"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("missing:", base.Missing())

	for _, tenant := range []string{"acme", "globex"} {
		res, err := base.Apply(npartial.Args{"tenant": tenant})
		if err != nil {
			fmt.Println(err)
			return
		}
		svc, err := npartial.Instance[Service](res)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(svc.Tenant, svc.DB.DSN, svc.Log.Prefix)
	}
	// Output: missing: [tenant]
	// acme postgres:// svc
	// globex postgres:// svc
}

type Point struct {
	X, Y, Z int
}

func NewPoint(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// ExampleFunc shows a constructor function registered with
// the names of its parameters.
func ExampleFunc() {
	r := npartial.NewRegistry()
	r.MustRegister(npartial.Func(NewPoint, "x", "y", "z"))

	p, _ := r.New(Point{})
	res, _ := p.Apply(npartial.Args{"x": 1})
	fmt.Println(res.IsResolved(), res.Partial().Missing())

	_, err := res.Instance()
	fmt.Println(err)

	res, _ = res.Partial().Apply(npartial.Args{"y": 2, "z": 3})
	point, _ := npartial.Instance[Point](res)
	fmt.Println(res.IsResolved(), point)
	// Output: false [y z]
	// npartial: npartial_test.Point is only partially constructed, missing y, z
	// true {1 2 3}
}

// ExampleRegistry_Lookup finds a partial by its partial-capable name
func ExampleRegistry_Lookup() {
	r := npartial.NewRegistry()
	r.MustRegister(npartial.Func(NewPoint, "x", "y", "z"))

	p, err := r.Lookup(r.PartialName(Point{}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Missing())
	// Output: [x y z]
}

// ExampleDetailedError shows the diagnostics that come with a typo
func ExampleDetailedError() {
	r := npartial.NewRegistry()
	r.MustRegister(npartial.Func(NewPoint, "x", "y", "z"))
	p, _ := r.New(Point{})
	_, err := p.Apply(npartial.Args{"xx": 1})
	fmt.Println(npartial.DetailedError(err))
	// Output: npartial: constructor parameter "xx" does not exist for npartial_test.Point
	//
	// Did you mean "x"?
	// parameters: x, y, z
}
