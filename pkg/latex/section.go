package latex

// Section is a named container of elements. Sections nest: a section may be
// pushed into another section through the element union.
type Section struct {
	// Name is the heading text of the section.
	Name string

	elements []Element
}

// NewSection creates an empty section with the given heading.
func NewSection(name string) *Section {
	return &Section{Name: name}
}

// Push appends elements to the section. The conversion rules are the same
// as Document.Push: a raw string becomes a single-run paragraph, typed
// sub-builders are taken as-is.
func (s *Section) Push(children ...any) *Section {
	for _, child := range children {
		s.elements = append(s.elements, asElement(child))
	}
	return s
}

// Elements returns the section's child elements in insertion order.
func (s *Section) Elements() []Element {
	return s.elements
}
