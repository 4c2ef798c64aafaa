package manifest

import (
	"fmt"

	"github.com/yaklabco/gotex/pkg/latex"
)

// Build constructs a latex.Document from the manifest.
func (m *Manifest) Build() (*latex.Document, error) {
	doc := latex.NewDocument(documentClass(m.Class))

	if m.Preamble != nil {
		buildPreamble(&doc.Preamble, m.Preamble)
	}

	for i, el := range m.Elements {
		built, err := buildElement(el)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		doc.Push(built)
	}

	return doc, nil
}

func documentClass(class string) latex.DocumentClass {
	if class == "" {
		return latex.Article
	}
	return latex.DocumentClass(class)
}

func buildPreamble(dst *latex.Preamble, src *Preamble) {
	if src.Title != "" {
		dst.Title(src.Title)
	}
	if src.Author != "" {
		dst.Author(src.Author)
	}
	for _, pkg := range src.Packages {
		if pkg.Argument != "" {
			dst.UsePackageWithArgument(pkg.Name, pkg.Argument)
		} else {
			dst.UsePackage(pkg.Name)
		}
	}
	for _, cmd := range src.Commands {
		dst.NewCommand(cmd.Name, cmd.Args, cmd.Definition)
	}
	for _, raw := range src.Raw {
		dst.Push(raw)
	}
}

// buildElement converts one manifest element into a latex Element. Exactly
// one of the element's fields must be set.
func buildElement(el Element) (latex.Element, error) {
	set := 0
	var build func() (latex.Element, error)

	if el.Paragraph != "" {
		set++
		text := el.Paragraph
		build = func() (latex.Element, error) {
			return latex.ToElement(text), nil
		}
	}
	if el.Section != nil {
		set++
		sec := el.Section
		build = func() (latex.Element, error) { return buildSection(sec) }
	}
	if el.List != nil {
		set++
		list := el.List
		build = func() (latex.Element, error) { return buildList(list) }
	}
	if el.Table != nil {
		set++
		table := el.Table
		build = func() (latex.Element, error) { return buildTable(table) }
	}
	if el.Align != nil {
		set++
		align := el.Align
		build = func() (latex.Element, error) { return buildAlign(align) }
	}
	if el.Environment != nil {
		set++
		env := el.Environment
		build = func() (latex.Element, error) {
			return latex.ToElement(latex.NewEnvironment(env.Name, env.Lines...)), nil
		}
	}
	if el.Marker != "" {
		set++
		marker := el.Marker
		build = func() (latex.Element, error) { return buildMarker(marker) }
	}
	if el.Input != "" {
		set++
		path := el.Input
		build = func() (latex.Element, error) { return latex.Input(path), nil }
	}
	if el.Raw != "" {
		set++
		raw := el.Raw
		build = func() (latex.Element, error) { return latex.UserDefined(raw), nil }
	}

	switch set {
	case 0:
		return latex.Element{}, fmt.Errorf("empty element: set one of paragraph, section, list, table, align, environment, marker, input, raw")
	case 1:
		return build()
	default:
		return latex.Element{}, fmt.Errorf("ambiguous element: %d fields set, expected exactly one", set)
	}
}

func buildSection(src *Section) (latex.Element, error) {
	sec := latex.NewSection(src.Name)
	for i, child := range src.Elements {
		built, err := buildElement(child)
		if err != nil {
			return latex.Element{}, fmt.Errorf("section %q, element %d: %w", src.Name, i, err)
		}
		sec.Push(built)
	}
	return latex.ToElement(sec), nil
}

func buildList(src *List) (latex.Element, error) {
	kind, err := listKind(src.Kind)
	if err != nil {
		return latex.Element{}, err
	}

	list := latex.NewList(kind)
	if src.Argument != "" {
		list.Argument(src.Argument)
	}
	for _, item := range src.Items {
		list.Push(item)
	}
	return latex.ToElement(list), nil
}

func listKind(kind string) (latex.ListKind, error) {
	switch kind {
	case "enumerate", "numbered":
		return latex.Enumerate, nil
	case "itemize", "bullet", "":
		return latex.Itemize, nil
	default:
		return 0, fmt.Errorf("unknown list kind %q", kind)
	}
}

func buildTable(src *Table) (latex.Element, error) {
	if src.Columns != "" && len(src.Alignments) > 0 {
		return latex.Element{}, fmt.Errorf("table: set either columns or alignments, not both")
	}

	table := latex.NewTable()

	if src.Columns != "" {
		table.SetColumnSpec(latex.RawColumns(src.Columns))
	}
	if len(src.Alignments) > 0 {
		settings := make([]latex.ColumnSettings, 0, len(src.Alignments))
		for _, name := range src.Alignments {
			alignment, err := columnAlignment(name)
			if err != nil {
				return latex.Element{}, fmt.Errorf("table: %w", err)
			}
			settings = append(settings, latex.ColumnSettings{Alignment: alignment})
		}
		table.SetColumnSpec(latex.TypedColumns(settings...))
	}

	for _, row := range src.Rows {
		if row.Rule {
			table.PushRow(latex.HLine{})
			continue
		}
		cells := make([]any, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell
		}
		table.PushRow(latex.Row(cells...))
	}

	return latex.ToElement(table), nil
}

func columnAlignment(name string) (latex.ColumnAlignment, error) {
	switch name {
	case "left", "l":
		return latex.AlignLeft, nil
	case "right", "r":
		return latex.AlignRight, nil
	case "center", "c":
		return latex.AlignCenter, nil
	default:
		return 0, fmt.Errorf("unknown column alignment %q", name)
	}
}

func buildAlign(src *Align) (latex.Element, error) {
	align := latex.NewAlign()
	for _, eq := range src.Equations {
		built := latex.NewEquation(eq.Text)
		if eq.Label != "" {
			built.Label(eq.Label)
		}
		if eq.Numbered != nil && !*eq.Numbered {
			built.NotNumbered()
		}
		align.Push(built)
	}
	return latex.ToElement(align), nil
}

func buildMarker(marker string) (latex.Element, error) {
	switch marker {
	case "tableofcontents", "toc":
		return latex.TableOfContents(), nil
	case "titlepage":
		return latex.TitlePage(), nil
	case "clearpage":
		return latex.ClearPage(), nil
	case "pagebreak":
		return latex.PageBreak(), nil
	default:
		return latex.Element{}, fmt.Errorf("unknown marker %q", marker)
	}
}
