package npartial

import (
	"strings"
)

// String describes the target and what is bound and missing:
//
//	partial pkg.Apple
//	bound: color
//	missing: worm
func (p *Partial) String() string {
	return "partial " + p.d.name + "\n" + renderNames(p.b.Bound(), p.b.Missing())
}

// String lists the bound and missing parameters
func (b Binding) String() string {
	if b.d == nil {
		return "empty binding"
	}
	return renderNames(b.Bound(), b.Missing())
}

func renderNames(bound []string, missing []string) string {
	return "bound: " + strings.Join(bound, ", ") + "\n" +
		"missing: " + strings.Join(missing, ", ")
}
