package latex

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidOutput is returned by Print when the rendered bytes are not
// valid UTF-8. This cannot happen for trees built from Go strings; it guards
// raw byte content injected through custom sinks or visitors.
var ErrInvalidOutput = errors.New("latex: rendered output is not valid UTF-8")

// Render serializes the document to w as LaTeX source. The first write error
// aborts the traversal; output already written is not rolled back.
func Render(doc *Document, w io.Writer) error {
	printer := NewPrinter(w)
	if err := printer.VisitDocument(doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	if err := printer.Flush(); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// Print serializes the document and returns the LaTeX source as a string.
func Print(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := Render(doc, &buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", ErrInvalidOutput
	}
	return buf.String(), nil
}

// Printer is the default Visitor: it walks the tree in document order and
// emits LaTeX source to a buffered writer.
type Printer struct {
	w *bufio.Writer
}

// Compile-time interface check.
var _ Visitor = (*Printer)(nil)

// NewPrinter creates a printer emitting to w. Call Flush after the final
// visit to drain the buffer.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

// Flush drains buffered output to the underlying writer.
func (p *Printer) Flush() error {
	return p.w.Flush()
}

func (p *Printer) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format, args...)
	return err
}

// VisitDocument emits the class declaration, preamble, and begin/end markers
// around the body elements. Part documents emit only the body elements, so a
// part can be included in another document via Input or PushAll.
func (p *Printer) VisitDocument(doc *Document) error {
	if doc.Class == Part {
		for i := range doc.elements {
			if err := p.VisitElement(&doc.elements[i]); err != nil {
				return err
			}
		}
		return nil
	}

	if err := p.printf("\\documentclass{%s}\n", doc.Class); err != nil {
		return err
	}
	if err := p.VisitPreamble(&doc.Preamble); err != nil {
		return err
	}
	if err := p.printf("\\begin{document}\n"); err != nil {
		return err
	}
	for i := range doc.elements {
		if err := p.VisitElement(&doc.elements[i]); err != nil {
			return err
		}
	}
	return p.printf("\\end{document}\n")
}

// VisitPreamble emits imports and definitions in declaration order, one
// blank separator line when both groups are present, then the title and
// author lines.
func (p *Printer) VisitPreamble(preamble *Preamble) error {
	if err := WalkPreamble(p, preamble); err != nil {
		return err
	}

	if len(preamble.elements) > 0 && (preamble.title != "" || preamble.author != "") {
		if err := p.printf("\n"); err != nil {
			return err
		}
	}

	if preamble.title != "" {
		if err := p.printf("\\title{%s}\n", preamble.title); err != nil {
			return err
		}
	}
	if preamble.author != "" {
		if err := p.printf("\\author{%s}\n", preamble.author); err != nil {
			return err
		}
	}
	return nil
}

// VisitPreambleElement emits one import, macro definition, or raw line.
func (p *Printer) VisitPreambleElement(element *PreambleElement) error {
	switch element.Kind {
	case PreambleUsePackage:
		if element.Argument != "" {
			return p.printf("\\usepackage[%s]{%s}\n", element.Argument, element.Name)
		}
		return p.printf("\\usepackage{%s}\n", element.Name)
	case PreambleNewCommand:
		if element.ArgCount > 0 {
			return p.printf("\\newcommand{\\%s}[%d]{%s}\n",
				element.Name, element.ArgCount, element.Definition)
		}
		return p.printf("\\newcommand{\\%s}{%s}\n", element.Name, element.Definition)
	case PreambleUserDefined:
		return p.printf("%s\n", element.Raw)
	default:
		return nil
	}
}

// VisitElement emits one element. Container kinds recurse; marker kinds emit
// their fixed single-line commands; raw kinds emit their content verbatim.
func (p *Printer) VisitElement(element *Element) error {
	switch element.Kind {
	case ElementParagraph:
		return p.VisitParagraph(element.Paragraph)
	case ElementSection:
		return p.VisitSection(element.Section)
	case ElementTableOfContents:
		return p.printf("\\tableofcontents\n")
	case ElementTitlePage:
		return p.printf("\\maketitle\n")
	case ElementClearPage:
		return p.printf("\\clearpage\n")
	case ElementPageBreak:
		return p.printf("\\pagebreak\n")
	case ElementAlign:
		return p.VisitAlign(element.Align)
	case ElementEnvironment:
		return p.visitEnvironment(element.Environment)
	case ElementUserDefined:
		return p.printf("%s\n", element.Raw)
	case ElementList:
		return p.VisitList(element.List)
	case ElementTable:
		return p.VisitTable(element.Table)
	case ElementInput:
		return p.printf("\\input{%s}\n", element.Path)
	default:
		return nil
	}
}

func (p *Printer) visitEnvironment(env *Environment) error {
	if err := p.printf("\\begin{%s}\n", env.Name); err != nil {
		return err
	}
	for _, line := range env.lines {
		if err := p.printf("%s\n", line); err != nil {
			return err
		}
	}
	return p.printf("\\end{%s}\n", env.Name)
}

// VisitSection emits the heading line; for a non-empty section, one blank
// line follows the heading and every child element is followed by another
// blank line, the last one included. LaTeX otherwise concatenates adjacent
// paragraphs, and downstream consumers depend on the trailing spacing.
func (p *Printer) VisitSection(section *Section) error {
	if err := p.printf("\\section{%s}\n", section.Name); err != nil {
		return err
	}

	if len(section.elements) > 0 {
		if err := p.printf("\n"); err != nil {
			return err
		}
	}

	for i := range section.elements {
		if err := p.VisitElement(&section.elements[i]); err != nil {
			return err
		}
		if err := p.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}

// VisitParagraph emits the inline elements concatenated with no separator,
// then one trailing newline.
func (p *Printer) VisitParagraph(paragraph *Paragraph) error {
	if err := WalkParagraph(p, paragraph); err != nil {
		return err
	}
	return p.printf("\n")
}

// VisitParagraphElement emits one inline element. Formatting wrappers emit
// their command around the recursively emitted child, so recursion depth
// equals the nesting depth of the formatting.
func (p *Printer) VisitParagraphElement(element *ParagraphElement) error {
	switch element.Kind {
	case InlineKindPlain:
		return p.printf("%s", element.Text)
	case InlineKindMath:
		return p.printf("$%s$", element.Text)
	case InlineKindBold:
		if err := p.printf("\\textbf{"); err != nil {
			return err
		}
		if err := WalkParagraphElement(p, element); err != nil {
			return err
		}
		return p.printf("}")
	case InlineKindItalic:
		if err := p.printf("\\textit{"); err != nil {
			return err
		}
		if err := WalkParagraphElement(p, element); err != nil {
			return err
		}
		return p.printf("}")
	default:
		return nil
	}
}

// VisitList emits the begin marker (with the bracket argument if set), one
// item line per item, then the end marker.
func (p *Printer) VisitList(list *List) error {
	env := list.Kind.EnvironmentName()

	if list.argument != "" {
		if err := p.printf("\\begin{%s}[%s]\n", env, list.argument); err != nil {
			return err
		}
	} else if err := p.printf("\\begin{%s}\n", env); err != nil {
		return err
	}

	for _, item := range list.items {
		if err := p.printf("\\item %s\n", item); err != nil {
			return err
		}
	}

	return p.printf("\\end{%s}\n", env)
}

// VisitAlign emits the align environment around its equations.
func (p *Printer) VisitAlign(align *Align) error {
	if err := p.printf("\\begin{align}\n"); err != nil {
		return err
	}
	if err := WalkAlign(p, align); err != nil {
		return err
	}
	return p.printf("\\end{align}\n")
}

// VisitEquation emits the equation source, the label reference if set, the
// numbering suppression marker if flagged, then the row terminator, in that
// fixed order.
func (p *Printer) VisitEquation(equation *Equation) error {
	if err := p.printf("%s", equation.Text); err != nil {
		return err
	}
	if equation.label != "" {
		if err := p.printf(" \\label{%s}", equation.label); err != nil {
			return err
		}
	}
	if equation.notNumbered {
		if err := p.printf(" \\nonumber"); err != nil {
			return err
		}
	}
	return p.printf(" \\\\\n")
}

// VisitTable emits the tabular environment: the begin marker with the
// resolved column spec, each row's cells joined by the column separator with
// a row terminator (rule pseudo-rows suppress the terminator and are not
// padded), then the end marker. Rows shorter than the widest row are padded
// with empty cells.
func (p *Printer) VisitTable(table *Table) error {
	if err := p.printf("\\begin{tabular}{%s}\n", table.resolvedColumnSpec()); err != nil {
		return err
	}

	columns := table.NumberColumns()
	for _, row := range table.rows {
		if row.suppressTerminator {
			if err := p.printf("%s\n", strings.Join(row.cells, " & ")); err != nil {
				return err
			}
			continue
		}

		cells := row.cells
		for len(cells) < columns {
			cells = append(cells, "")
		}
		if err := p.printf("%s \\\\\n", strings.Join(cells, " & ")); err != nil {
			return err
		}
	}

	return p.printf("\\end{tabular}\n")
}
