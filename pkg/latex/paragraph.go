package latex

// InlineKind classifies the type of an inline paragraph element.
type InlineKind uint8

// Inline element kinds.
const (
	// InlineKindPlain is a run of unformatted text, emitted verbatim.
	InlineKindPlain InlineKind = iota
	// InlineKindBold wraps one inline element in a bold command.
	InlineKindBold
	// InlineKindItalic wraps one inline element in an italic command.
	InlineKindItalic
	// InlineKindMath is raw inline math, emitted between math delimiters.
	InlineKindMath
)

// ParagraphElement is one inline fragment of a paragraph.
//
// Bold and Italic hold exactly one child element, so nested formatting
// (bold-italic and deeper) is expressed as a chain of single-child wrappers
// rather than a multi-child tree.
type ParagraphElement struct {
	// Kind identifies what type of inline element this is.
	Kind InlineKind

	// Text holds the content of Plain and Math elements.
	Text string

	// Child is the wrapped element of Bold and Italic; nil otherwise.
	Child *ParagraphElement
}

// Plain creates an unformatted text run.
func Plain(text string) ParagraphElement {
	return ParagraphElement{Kind: InlineKindPlain, Text: text}
}

// Bold wraps an inline element in bold formatting.
func Bold(child ParagraphElement) ParagraphElement {
	return ParagraphElement{Kind: InlineKindBold, Child: &child}
}

// Italic wraps an inline element in italic formatting.
func Italic(child ParagraphElement) ParagraphElement {
	return ParagraphElement{Kind: InlineKindItalic, Child: &child}
}

// InlineMath creates an inline math fragment. The source is emitted between
// the math delimiters verbatim, without escaping.
func InlineMath(src string) ParagraphElement {
	return ParagraphElement{Kind: InlineKindMath, Text: src}
}

// Paragraph is an ordered run of inline elements. Elements are concatenated
// with no separator when rendered.
type Paragraph struct {
	elements []ParagraphElement
}

// NewParagraph creates an empty paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// Push appends inline elements to the paragraph.
func (p *Paragraph) Push(elements ...ParagraphElement) *Paragraph {
	p.elements = append(p.elements, elements...)
	return p
}

// PushText appends a plain text run to the paragraph.
func (p *Paragraph) PushText(text string) *Paragraph {
	return p.Push(Plain(text))
}

// Elements returns the paragraph's inline elements in insertion order.
func (p *Paragraph) Elements() []ParagraphElement {
	return p.elements
}

// textParagraph builds the one-run paragraph a bare string converts into.
func textParagraph(text string) *Paragraph {
	return NewParagraph().PushText(text)
}
