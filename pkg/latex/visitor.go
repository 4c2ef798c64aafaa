package latex

// Visitor visits every node kind of the document tree. The Printer is the
// default implementation; custom visitors (alternative output dialects,
// document analyses) implement the interface and delegate to the Walk*
// helpers for the kinds they do not override, inheriting the default
// recursive descent.
type Visitor interface {
	VisitDocument(doc *Document) error
	VisitPreamble(preamble *Preamble) error
	VisitPreambleElement(element *PreambleElement) error
	VisitElement(element *Element) error
	VisitSection(section *Section) error
	VisitParagraph(paragraph *Paragraph) error
	VisitParagraphElement(element *ParagraphElement) error
	VisitList(list *List) error
	VisitAlign(align *Align) error
	VisitEquation(equation *Equation) error
	VisitTable(table *Table) error
}

// WalkDocument performs the default recursion for a document: the preamble,
// then each body element in order, dispatched back through v. It stops at
// the first error.
func WalkDocument(v Visitor, doc *Document) error {
	if err := v.VisitPreamble(&doc.Preamble); err != nil {
		return err
	}
	for i := range doc.elements {
		if err := v.VisitElement(&doc.elements[i]); err != nil {
			return err
		}
	}
	return nil
}

// WalkPreamble performs the default recursion for a preamble, dispatching
// each import, definition, and raw line back through v.
func WalkPreamble(v Visitor, preamble *Preamble) error {
	for i := range preamble.elements {
		if err := v.VisitPreambleElement(&preamble.elements[i]); err != nil {
			return err
		}
	}
	return nil
}

// WalkElement performs the default recursion for one element, dispatching
// its payload back through v. Marker and raw elements have no children and
// produce no calls.
func WalkElement(v Visitor, element *Element) error {
	switch element.Kind {
	case ElementParagraph:
		return v.VisitParagraph(element.Paragraph)
	case ElementSection:
		return v.VisitSection(element.Section)
	case ElementAlign:
		return v.VisitAlign(element.Align)
	case ElementList:
		return v.VisitList(element.List)
	case ElementTable:
		return v.VisitTable(element.Table)
	default:
		return nil
	}
}

// WalkSection performs the default recursion for a section, dispatching each
// child element back through v.
func WalkSection(v Visitor, section *Section) error {
	for i := range section.elements {
		if err := v.VisitElement(&section.elements[i]); err != nil {
			return err
		}
	}
	return nil
}

// WalkParagraph performs the default recursion for a paragraph, dispatching
// each inline element back through v.
func WalkParagraph(v Visitor, paragraph *Paragraph) error {
	for i := range paragraph.elements {
		if err := v.VisitParagraphElement(&paragraph.elements[i]); err != nil {
			return err
		}
	}
	return nil
}

// WalkParagraphElement performs the default recursion for an inline element,
// dispatching the wrapped child of Bold and Italic back through v. Plain and
// math elements have no children.
func WalkParagraphElement(v Visitor, element *ParagraphElement) error {
	if element.Child != nil {
		return v.VisitParagraphElement(element.Child)
	}
	return nil
}

// WalkAlign performs the default recursion for an equation group,
// dispatching each equation back through v.
func WalkAlign(v Visitor, align *Align) error {
	for i := range align.equations {
		if err := v.VisitEquation(&align.equations[i]); err != nil {
			return err
		}
	}
	return nil
}
