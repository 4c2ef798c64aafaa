package latex_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/gotex/pkg/latex"
)

// countingVisitor counts nodes per kind, delegating all recursion to the
// Walk helpers. It is the "document analysis" use of the visitor contract.
type countingVisitor struct {
	documents  int
	sections   int
	paragraphs int
	inlines    int
	lists      int
	tables     int
	aligns     int
	equations  int
}

func (c *countingVisitor) VisitDocument(doc *latex.Document) error {
	c.documents++
	return latex.WalkDocument(c, doc)
}

func (c *countingVisitor) VisitPreamble(p *latex.Preamble) error {
	return latex.WalkPreamble(c, p)
}

func (c *countingVisitor) VisitPreambleElement(_ *latex.PreambleElement) error {
	return nil
}

func (c *countingVisitor) VisitElement(el *latex.Element) error {
	return latex.WalkElement(c, el)
}

func (c *countingVisitor) VisitSection(s *latex.Section) error {
	c.sections++
	return latex.WalkSection(c, s)
}

func (c *countingVisitor) VisitParagraph(p *latex.Paragraph) error {
	c.paragraphs++
	return latex.WalkParagraph(c, p)
}

func (c *countingVisitor) VisitParagraphElement(el *latex.ParagraphElement) error {
	c.inlines++
	return latex.WalkParagraphElement(c, el)
}

func (c *countingVisitor) VisitList(_ *latex.List) error {
	c.lists++
	return nil
}

func (c *countingVisitor) VisitAlign(a *latex.Align) error {
	c.aligns++
	return latex.WalkAlign(c, a)
}

func (c *countingVisitor) VisitEquation(_ *latex.Equation) error {
	c.equations++
	return nil
}

func (c *countingVisitor) VisitTable(_ *latex.Table) error {
	c.tables++
	return nil
}

func TestCustomVisitorCollectsStatistics(t *testing.T) {
	t.Parallel()

	sec := latex.NewSection("Intro")
	sec.Push("plain text")
	sec.Push(latex.NewParagraph().Push(latex.Bold(latex.Italic(latex.Plain("x")))))
	sec.Push(latex.NewAlign().Push("y &= m x + c", "E &= m c^2"))
	sec.Push(latex.NewList(latex.Itemize).Push("a", "b"))
	sec.Push(latex.NewTable())

	doc := latex.NewDocument(latex.Article)
	doc.Push(sec)
	doc.Push("closing paragraph")

	counter := &countingVisitor{}
	if err := counter.VisitDocument(doc); err != nil {
		t.Fatalf("visit returned error: %v", err)
	}

	if counter.documents != 1 || counter.sections != 1 {
		t.Errorf("expected 1 document and 1 section, got %d and %d",
			counter.documents, counter.sections)
	}
	if counter.paragraphs != 3 {
		t.Errorf("expected 3 paragraphs, got %d", counter.paragraphs)
	}
	// Bold(Italic(Plain)) is three inline nodes; the two plain-text
	// paragraphs contribute one each.
	if counter.inlines != 5 {
		t.Errorf("expected 5 inline elements, got %d", counter.inlines)
	}
	if counter.lists != 1 || counter.tables != 1 {
		t.Errorf("expected 1 list and 1 table, got %d and %d", counter.lists, counter.tables)
	}
	if counter.aligns != 1 || counter.equations != 2 {
		t.Errorf("expected 1 align with 2 equations, got %d and %d",
			counter.aligns, counter.equations)
	}
}

// shoutingPrinter overrides a single visitation kind and inherits the
// printer's behavior for everything else: the "custom dialect" use of the
// visitor contract.
type shoutingPrinter struct {
	*latex.Printer
	out *strings.Builder
}

func (s *shoutingPrinter) VisitParagraphElement(el *latex.ParagraphElement) error {
	if el.Kind == latex.InlineKindPlain {
		s.out.WriteString(strings.ToUpper(el.Text))
		return nil
	}
	return s.Printer.VisitParagraphElement(el)
}

func TestVisitorOverridesSingleKind(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	printer := &shoutingPrinter{Printer: latex.NewPrinter(&out), out: &out}

	para := latex.NewParagraph().PushText("quiet words")
	if err := latex.WalkParagraph(printer, para); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}
	if err := printer.Flush(); err != nil {
		t.Fatalf("flush returned error: %v", err)
	}

	if got := out.String(); got != "QUIET WORDS" {
		t.Errorf("expected %q, got %q", "QUIET WORDS", got)
	}
}

func TestWalkStopsAtFirstError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")

	sec := latex.NewSection("S")
	sec.Push("one", "two", "three")

	doc := latex.NewDocument(latex.Article)
	doc.Push(sec)

	visited := 0
	v := &stoppingVisitor{limit: 2, err: errStop, visited: &visited}

	err := latex.WalkDocument(v, doc)
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
	if visited != 2 {
		t.Errorf("expected traversal to stop after 2 paragraphs, got %d", visited)
	}
}

type stoppingVisitor struct {
	limit   int
	err     error
	visited *int
}

func (s *stoppingVisitor) VisitDocument(doc *latex.Document) error {
	return latex.WalkDocument(s, doc)
}

func (s *stoppingVisitor) VisitPreamble(p *latex.Preamble) error {
	return latex.WalkPreamble(s, p)
}

func (s *stoppingVisitor) VisitPreambleElement(_ *latex.PreambleElement) error { return nil }

func (s *stoppingVisitor) VisitElement(el *latex.Element) error {
	return latex.WalkElement(s, el)
}

func (s *stoppingVisitor) VisitSection(sec *latex.Section) error {
	return latex.WalkSection(s, sec)
}

func (s *stoppingVisitor) VisitParagraph(p *latex.Paragraph) error {
	*s.visited++
	if *s.visited >= s.limit {
		return s.err
	}
	return latex.WalkParagraph(s, p)
}

func (s *stoppingVisitor) VisitParagraphElement(el *latex.ParagraphElement) error {
	return latex.WalkParagraphElement(s, el)
}

func (s *stoppingVisitor) VisitList(_ *latex.List) error        { return nil }
func (s *stoppingVisitor) VisitAlign(a *latex.Align) error      { return latex.WalkAlign(s, a) }
func (s *stoppingVisitor) VisitEquation(_ *latex.Equation) error { return nil }
func (s *stoppingVisitor) VisitTable(_ *latex.Table) error      { return nil }
