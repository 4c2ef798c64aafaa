package latex

import "fmt"

// ElementKind classifies the type of a top-level document element.
type ElementKind uint8

// Element kinds.
const (
	ElementParagraph ElementKind = iota
	ElementSection
	ElementTableOfContents
	ElementTitlePage
	ElementClearPage
	ElementPageBreak
	ElementAlign
	ElementEnvironment
	ElementUserDefined
	ElementList
	ElementTable
	ElementInput
)

// Element is the closed union of every renderable node a Document or Section
// can contain. Exactly one payload field is populated, selected by Kind;
// marker kinds (table of contents, title page, clear page, page break) carry
// no payload at all.
type Element struct {
	// Kind identifies what type of element this is.
	Kind ElementKind

	Paragraph   *Paragraph
	Section     *Section
	Align       *Align
	List        *List
	Table       *Table
	Environment *Environment

	// Raw holds the verbatim content of UserDefined elements.
	Raw string

	// Path holds the file path of Input elements.
	Path string
}

// Environment is a generic named LaTeX environment whose lines are emitted
// verbatim between the begin and end markers. No escaping is applied; the
// caller is responsible for the correctness of the raw content.
type Environment struct {
	Name  string
	lines []string
}

// NewEnvironment creates a named environment with the given raw lines.
func NewEnvironment(name string, lines ...string) *Environment {
	return &Environment{Name: name, lines: lines}
}

// Push appends raw lines to the environment body.
func (e *Environment) Push(lines ...string) *Environment {
	e.lines = append(e.lines, lines...)
	return e
}

// Lines returns the environment's body lines in insertion order.
func (e *Environment) Lines() []string {
	return e.lines
}

// TableOfContents creates the table-of-contents marker element.
func TableOfContents() Element {
	return Element{Kind: ElementTableOfContents}
}

// TitlePage creates the title-page marker element.
func TitlePage() Element {
	return Element{Kind: ElementTitlePage}
}

// ClearPage creates the clear-page marker element.
func ClearPage() Element {
	return Element{Kind: ElementClearPage}
}

// PageBreak creates the page-break marker element.
func PageBreak() Element {
	return Element{Kind: ElementPageBreak}
}

// Input creates an element referencing another LaTeX file by path.
func Input(path string) Element {
	return Element{Kind: ElementInput, Path: path}
}

// UserDefined creates an element whose raw LaTeX is emitted verbatim,
// followed by a newline. No escaping is applied.
func UserDefined(raw string) Element {
	return Element{Kind: ElementUserDefined, Raw: raw}
}

// ToElement converts a value into an Element using the same rules as
// Document.Push and Section.Push: a bare string becomes a single-run
// paragraph, typed sub-builders are wrapped as-is. Any other type is a
// caller bug and panics.
func ToElement(v any) Element {
	return asElement(v)
}

// asElement converts a value into an Element. A bare string becomes a
// single-run paragraph; typed sub-builders are wrapped as-is. Any other type
// is a caller bug and panics.
func asElement(v any) Element {
	switch x := v.(type) {
	case Element:
		return x
	case *Element:
		return *x
	case string:
		return Element{Kind: ElementParagraph, Paragraph: textParagraph(x)}
	case *Paragraph:
		return Element{Kind: ElementParagraph, Paragraph: x}
	case *Section:
		return Element{Kind: ElementSection, Section: x}
	case *Align:
		return Element{Kind: ElementAlign, Align: x}
	case *List:
		return Element{Kind: ElementList, List: x}
	case *Table:
		return Element{Kind: ElementTable, Table: x}
	case *Environment:
		return Element{Kind: ElementEnvironment, Environment: x}
	default:
		panic(fmt.Sprintf("latex: cannot convert %T into an Element", v))
	}
}
