package latex

import "fmt"

// Equation is a single equation inside an align environment. The source is
// emitted verbatim, followed by an optional label reference and an optional
// numbering suppression marker.
type Equation struct {
	// Text is the raw equation source.
	Text string

	label       string
	notNumbered bool
}

// NewEquation creates an equation from raw source.
func NewEquation(src string) *Equation {
	return &Equation{Text: src}
}

// NewEquationWithLabel creates a labelled equation from raw source.
func NewEquationWithLabel(label, src string) *Equation {
	return &Equation{Text: src, label: label}
}

// Label sets the equation's label so it can be referenced later.
func (e *Equation) Label(label string) *Equation {
	e.label = label
	return e
}

// NotNumbered suppresses numbering for this equation.
func (e *Equation) NotNumbered() *Equation {
	e.notNumbered = true
	return e
}

// LabelText returns the label, or the empty string if unset.
func (e *Equation) LabelText() string {
	return e.label
}

// IsNotNumbered reports whether numbering is suppressed.
func (e *Equation) IsNotNumbered() bool {
	return e.notNumbered
}

// Align is an ordered group of equations rendered as one align environment.
type Align struct {
	equations []Equation
}

// NewAlign creates an empty equation group.
func NewAlign() *Align {
	return &Align{}
}

// Push appends equations to the group. Each value may be an Equation, an
// *Equation, or a raw source string. Push panics on any other type.
func (a *Align) Push(equations ...any) *Align {
	for _, eq := range equations {
		switch x := eq.(type) {
		case Equation:
			a.equations = append(a.equations, x)
		case *Equation:
			a.equations = append(a.equations, *x)
		case string:
			a.equations = append(a.equations, Equation{Text: x})
		default:
			panic(fmt.Sprintf("latex: cannot convert %T into an Equation", eq))
		}
	}
	return a
}

// Equations returns the group's equations in insertion order.
func (a *Align) Equations() []Equation {
	return a.equations
}
