package latex

// PreambleKind classifies the type of a preamble element.
type PreambleKind uint8

// Preamble element kinds.
const (
	// PreambleUsePackage is a package import with an optional argument.
	PreambleUsePackage PreambleKind = iota
	// PreambleNewCommand is a macro definition.
	PreambleNewCommand
	// PreambleUserDefined is a raw line emitted verbatim.
	PreambleUserDefined
)

// PreambleElement is one import, macro definition, or raw line of the
// preamble.
type PreambleElement struct {
	// Kind identifies what type of preamble element this is.
	Kind PreambleKind

	// Name is the package name (UsePackage) or macro name without the
	// leading backslash (NewCommand).
	Name string

	// Argument is the optional bracket argument of UsePackage.
	Argument string

	// ArgCount is the number of macro arguments of NewCommand.
	ArgCount int

	// Definition is the macro body of NewCommand.
	Definition string

	// Raw is the verbatim line of UserDefined.
	Raw string
}

// Preamble holds document metadata and setup directives. Imports and
// definitions render first in declaration order, then the title and author
// lines, separated by one blank line when both groups are present.
type Preamble struct {
	title    string
	author   string
	elements []PreambleElement
}

// Title sets the document title. An earlier title is silently overwritten.
func (p *Preamble) Title(title string) *Preamble {
	p.title = title
	return p
}

// Author sets the document author. An earlier author is silently
// overwritten.
func (p *Preamble) Author(author string) *Preamble {
	p.author = author
	return p
}

// UsePackage appends a package import.
func (p *Preamble) UsePackage(name string) *Preamble {
	p.elements = append(p.elements, PreambleElement{Kind: PreambleUsePackage, Name: name})
	return p
}

// UsePackageWithArgument appends a package import with a bracket argument.
func (p *Preamble) UsePackageWithArgument(name, argument string) *Preamble {
	p.elements = append(p.elements, PreambleElement{
		Kind:     PreambleUsePackage,
		Name:     name,
		Argument: argument,
	})
	return p
}

// NewCommand appends a macro definition taking argCount arguments. The name
// is given without the leading backslash.
func (p *Preamble) NewCommand(name string, argCount int, definition string) *Preamble {
	p.elements = append(p.elements, PreambleElement{
		Kind:       PreambleNewCommand,
		Name:       name,
		ArgCount:   argCount,
		Definition: definition,
	})
	return p
}

// Push appends a raw preamble line, emitted verbatim without escaping.
func (p *Preamble) Push(raw string) *Preamble {
	p.elements = append(p.elements, PreambleElement{Kind: PreambleUserDefined, Raw: raw})
	return p
}

// TitleText returns the title, or the empty string if unset.
func (p *Preamble) TitleText() string {
	return p.title
}

// AuthorText returns the author, or the empty string if unset.
func (p *Preamble) AuthorText() string {
	return p.author
}

// Elements returns the preamble's imports, definitions, and raw lines in
// declaration order.
func (p *Preamble) Elements() []PreambleElement {
	return p.elements
}
