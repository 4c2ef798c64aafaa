package latex

// DocumentClass selects the document class emitted in the class declaration.
// Any value outside the predefined constants is treated as a custom class
// and emitted verbatim.
type DocumentClass string

// Predefined document classes.
const (
	Article DocumentClass = "article"
	Book    DocumentClass = "book"
	Report  DocumentClass = "report"

	// Part marks a document fragment meant to be included in another
	// document. Part documents render without the class declaration,
	// preamble, and begin/end markers: only the body elements are emitted.
	Part DocumentClass = "part"
)

// Document is the root of the tree: a document class, a preamble, and an
// ordered sequence of elements. Insertion order is render order.
type Document struct {
	// Class is the document class declared at the top of the output.
	Class DocumentClass

	// Preamble holds metadata and setup directives rendered before the
	// document body.
	Preamble Preamble

	elements []Element
}

// NewDocument creates an empty document of the given class.
func NewDocument(class DocumentClass) *Document {
	return &Document{Class: class}
}

// Push appends elements to the document body. Each child may be anything
// convertible into an Element: a raw string becomes a single-run paragraph,
// typed sub-builders (*Section, *List, *Table, *Align, *Paragraph,
// *Environment) are taken as-is. Push panics on any other type.
func (d *Document) Push(children ...any) *Document {
	for _, child := range children {
		d.elements = append(d.elements, asElement(child))
	}
	return d
}

// PushAll appends copies of every element of other to the document body, in
// order. The other document's class and preamble are not merged.
func (d *Document) PushAll(other *Document) *Document {
	d.elements = append(d.elements, other.elements...)
	return d
}

// Elements returns the document's body elements in insertion order.
func (d *Document) Elements() []Element {
	return d.elements
}
