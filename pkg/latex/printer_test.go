package latex_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/gotex/pkg/latex"
)

func mustPrint(t *testing.T, doc *latex.Document) string {
	t.Helper()

	rendered, err := latex.Print(doc)
	if err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	return rendered
}

func TestPrintEmptyArticle(t *testing.T) {
	t.Parallel()

	expected := "\\documentclass{article}\n" +
		"\\begin{document}\n" +
		"\\end{document}\n"

	doc := latex.NewDocument(latex.Article)

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPrintCustomClass(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.DocumentClass("scrartcl"))

	got := mustPrint(t, doc)
	if !strings.HasPrefix(got, "\\documentclass{scrartcl}\n") {
		t.Errorf("expected scrartcl class declaration, got %q", got)
	}
}

func TestPrintPartEmitsBodyOnly(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Part)
	doc.Preamble.Title("Ignored").Author("Ignored")
	doc.Push("Just the body.")

	expected := "Just the body.\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPrintDeterministic(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Article)
	doc.Preamble.Title("Sample").UsePackage("amsmath")
	doc.Push(latex.TitlePage(), "A paragraph.", latex.NewSection("One").Push("body"))

	first := mustPrint(t, doc)
	second := mustPrint(t, doc)

	if first != second {
		t.Errorf("rendering is not deterministic:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestPreambleTitleOnly(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Article)
	doc.Preamble.Title("Sample Document")

	expected := "\\documentclass{article}\n" +
		"\\title{Sample Document}\n" +
		"\\begin{document}\n" +
		"\\end{document}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPreambleSeparatorBetweenImportsAndTitle(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Article)
	doc.Preamble.
		Title("Sample Document").
		UsePackage("amsmath").
		UsePackage("graphics")

	expected := "\\documentclass{article}\n" +
		"\\usepackage{amsmath}\n" +
		"\\usepackage{graphics}\n" +
		"\n" +
		"\\title{Sample Document}\n" +
		"\\begin{document}\n" +
		"\\end{document}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPreambleTitleAndAuthorNoSeparator(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Article)
	doc.Preamble.Title("Sample Document").Author("Jane Doe")

	expected := "\\documentclass{article}\n" +
		"\\title{Sample Document}\n" +
		"\\author{Jane Doe}\n" +
		"\\begin{document}\n" +
		"\\end{document}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPreamblePackageArgumentAndCommands(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Article)
	doc.Preamble.
		UsePackageWithArgument("geometry", "margin=2cm").
		NewCommand("half", 1, `\frac{#1}{2}`).
		NewCommand("answer", 0, "42").
		Push(`\setlength{\parindent}{0pt}`)

	expected := "\\documentclass{article}\n" +
		"\\usepackage[margin=2cm]{geometry}\n" +
		"\\newcommand{\\half}[1]{\\frac{#1}{2}}\n" +
		"\\newcommand{\\answer}{42}\n" +
		"\\setlength{\\parindent}{0pt}\n" +
		"\\begin{document}\n" +
		"\\end{document}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSectionEmpty(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Part)
	doc.Push(latex.NewSection("First Section"))

	expected := "\\section{First Section}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSectionChildrenKeepTrailingBlankLine(t *testing.T) {
	t.Parallel()

	sec := latex.NewSection("First Section")
	sec.Push("Lorem Ipsum...", "Hello World!")

	doc := latex.NewDocument(latex.Part)
	doc.Push(sec)

	// Every child is followed by a blank line, the last one included.
	expected := "\\section{First Section}\n" +
		"\n" +
		"Lorem Ipsum...\n" +
		"\n" +
		"Hello World!\n" +
		"\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestNestedSections(t *testing.T) {
	t.Parallel()

	inner := latex.NewSection("Inner")
	inner.Push("deep text")

	outer := latex.NewSection("Outer")
	outer.Push(inner)

	doc := latex.NewDocument(latex.Part)
	doc.Push(outer)

	expected := "\\section{Outer}\n" +
		"\n" +
		"\\section{Inner}\n" +
		"\n" +
		"deep text\n" +
		"\n" +
		"\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestListRendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		list     *latex.List
		expected string
	}{
		{
			name:     "empty enumerate",
			list:     latex.NewList(latex.Enumerate),
			expected: "\\begin{enumerate}\n\\end{enumerate}\n",
		},
		{
			name:     "empty itemize",
			list:     latex.NewList(latex.Itemize),
			expected: "\\begin{itemize}\n\\end{itemize}\n",
		},
		{
			name: "itemize with items in input order",
			list: latex.NewList(latex.Itemize).Push("a", "b", "c"),
			expected: "\\begin{itemize}\n" +
				"\\item a\n" +
				"\\item b\n" +
				"\\item c\n" +
				"\\end{itemize}\n",
		},
		{
			name: "enumerate with argument",
			list: latex.NewList(latex.Enumerate).Argument("label=(\\roman*)").Push("first"),
			expected: "\\begin{enumerate}[label=(\\roman*)]\n" +
				"\\item first\n" +
				"\\end{enumerate}\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := latex.NewDocument(latex.Part)
			doc.Push(tt.list)

			if got := mustPrint(t, doc); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAlignRendering(t *testing.T) {
	t.Parallel()

	align := latex.NewAlign()
	align.Push(
		"y &= m x + c",
		latex.NewEquationWithLabel("eq:mass-energy", "E &= m c^2"),
		latex.NewEquation("a^2 &= b^2 + c^2").NotNumbered(),
	)

	doc := latex.NewDocument(latex.Part)
	doc.Push(align)

	expected := "\\begin{align}\n" +
		"y &= m x + c \\\\\n" +
		"E &= m c^2 \\label{eq:mass-energy} \\\\\n" +
		"a^2 &= b^2 + c^2 \\nonumber \\\\\n" +
		"\\end{align}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestEquationLabelThenNonumberOrder(t *testing.T) {
	t.Parallel()

	eq := latex.NewEquation("E &= m c^2")
	eq.Label("eq:both").NotNumbered()

	doc := latex.NewDocument(latex.Part)
	doc.Push(latex.NewAlign().Push(eq))

	expected := "\\begin{align}\n" +
		"E &= m c^2 \\label{eq:both} \\nonumber \\\\\n" +
		"\\end{align}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestParagraphInlineElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		para     *latex.Paragraph
		expected string
	}{
		{
			name:     "plain text",
			para:     latex.NewParagraph().PushText("Hello World"),
			expected: "Hello World\n",
		},
		{
			name: "bold run",
			para: latex.NewParagraph().
				PushText("Hello ").
				Push(latex.Bold(latex.Plain("World"))),
			expected: "Hello \\textbf{World}\n",
		},
		{
			name: "italic run",
			para: latex.NewParagraph().
				PushText("Hello ").
				Push(latex.Italic(latex.Plain("World"))),
			expected: "Hello \\textit{World}\n",
		},
		{
			name: "inline math",
			para: latex.NewParagraph().
				PushText("Hello ").
				Push(latex.InlineMath(`\lambda`)).
				PushText(" World!"),
			expected: "Hello $\\lambda$ World!\n",
		},
		{
			name:     "nested bold italic is strictly nested",
			para:     latex.NewParagraph().Push(latex.Bold(latex.Italic(latex.Plain("x")))),
			expected: "\\textbf{\\textit{x}}\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := latex.NewDocument(latex.Part)
			doc.Push(tt.para)

			if got := mustPrint(t, doc); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestEnvironmentAndRawElements(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Part)
	doc.Push(
		latex.NewEnvironment("verbatim", "unescaped % and \\ content", "second line"),
		latex.UserDefined(`\vspace{1em}`),
		latex.Input("chapters/intro"),
		latex.TableOfContents(),
		latex.TitlePage(),
		latex.ClearPage(),
		latex.PageBreak(),
	)

	expected := "\\begin{verbatim}\n" +
		"unescaped % and \\ content\n" +
		"second line\n" +
		"\\end{verbatim}\n" +
		"\\vspace{1em}\n" +
		"\\input{chapters/intro}\n" +
		"\\tableofcontents\n" +
		"\\maketitle\n" +
		"\\clearpage\n" +
		"\\pagebreak\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestTableRendering(t *testing.T) {
	t.Parallel()

	table := latex.NewTable()
	table.PushRow(latex.Row("a", "b")).
		PushRow(latex.Row(1, 1))

	doc := latex.NewDocument(latex.Article)
	doc.Push(table)

	expected := "\\documentclass{article}\n" +
		"\\begin{document}\n" +
		"\\begin{tabular}{ll}\n" +
		"a & b \\\\\n" +
		"1 & 1 \\\\\n" +
		"\\end{tabular}\n" +
		"\\end{document}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestTableRaggedRowsPaddedToWidest(t *testing.T) {
	t.Parallel()

	table := latex.NewTable()
	table.PushRow(latex.Row("a", "b")).
		PushRow(latex.HLine{}).
		PushRow(latex.Row(1, 2, 3))

	doc := latex.NewDocument(latex.Part)
	doc.Push(table)

	expected := "\\begin{tabular}{lll}\n" +
		"a & b &  \\\\\n" +
		"\\hline\n" +
		"1 & 2 & 3 \\\\\n" +
		"\\end{tabular}\n"

	if got := mustPrint(t, doc); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestTableColumnSpecResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spec     latex.ColumnSpec
		expected string
	}{
		{
			name:     "default settings",
			spec:     latex.ColumnSpec{},
			expected: "lll",
		},
		{
			name:     "one setting applies to all columns",
			spec:     latex.TypedColumns(latex.ColumnSettings{Alignment: latex.AlignCenter}),
			expected: "ccc",
		},
		{
			name: "missing trailing columns inherit the last setting",
			spec: latex.TypedColumns(
				latex.ColumnSettings{Alignment: latex.AlignLeft},
				latex.ColumnSettings{Alignment: latex.AlignRight},
			),
			expected: "lrr",
		},
		{
			name:     "raw spec is emitted verbatim",
			spec:     latex.RawColumns(`|c|c|p{2cm}|`),
			expected: `|c|c|p{2cm}|`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := latex.NewTable()
			table.PushRow(latex.Row("a", "b", "c"))
			table.SetColumnSpec(tt.spec)

			doc := latex.NewDocument(latex.Part)
			doc.Push(table)

			got := mustPrint(t, doc)
			want := "\\begin{tabular}{" + tt.expected + "}\n"
			if !strings.HasPrefix(got, want) {
				t.Errorf("expected prefix %q, got %q", want, got)
			}
		})
	}
}

func TestPushAllMergesBodyOnly(t *testing.T) {
	t.Parallel()

	a := latex.NewDocument(latex.Article)
	a.Preamble.Title("A")
	a.Push("first", "second")

	b := latex.NewDocument(latex.Book)
	b.Preamble.Title("B")
	b.Push("third")

	a.PushAll(b)

	expected := "\\documentclass{article}\n" +
		"\\title{A}\n" +
		"\\begin{document}\n" +
		"first\n" +
		"second\n" +
		"third\n" +
		"\\end{document}\n"

	if got := mustPrint(t, a); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

// errorSink fails after a fixed number of writes to exercise traversal abort.
type errorSink struct {
	remaining int
	err       error
}

func (s *errorSink) Write(p []byte) (int, error) {
	if s.remaining <= 0 {
		return 0, s.err
	}
	s.remaining -= len(p)
	return len(p), nil
}

func TestRenderPropagatesSinkError(t *testing.T) {
	t.Parallel()

	doc := latex.NewDocument(latex.Article)
	for i := 0; i < 1000; i++ {
		doc.Push("padding paragraph to overflow the printer buffer")
	}

	sink := &errorSink{remaining: 16, err: errSinkClosed}
	err := latex.Render(doc, sink)
	if err == nil {
		t.Fatal("expected an error from the failing sink")
	}
	if !strings.Contains(err.Error(), errSinkClosed.Error()) {
		t.Errorf("expected wrapped sink error, got %v", err)
	}
}

var errSinkClosed = errors.New("sink closed")
