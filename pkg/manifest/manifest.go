// Package manifest loads declarative YAML document manifests and builds
// latex.Document trees from them. A manifest describes the document class,
// preamble, and body elements; Build runs the description through the
// builder API of pkg/latex.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest is the top-level YAML document description.
type Manifest struct {
	// Class is the document class: article, book, report, part, or any
	// custom class name. Defaults to article.
	Class string `yaml:"class,omitempty"`

	// Preamble holds metadata and setup directives.
	Preamble *Preamble `yaml:"preamble,omitempty"`

	// Elements are the body elements in render order.
	Elements []Element `yaml:"elements,omitempty"`
}

// Preamble describes document metadata and setup directives.
type Preamble struct {
	Title    string    `yaml:"title,omitempty"`
	Author   string    `yaml:"author,omitempty"`
	Packages []Package `yaml:"packages,omitempty"`
	Commands []Command `yaml:"commands,omitempty"`
	Raw      []string  `yaml:"raw,omitempty"`
}

// Package is one package import. In YAML it is either a plain string or a
// mapping with name and argument keys.
type Package struct {
	Name     string `yaml:"name"`
	Argument string `yaml:"argument,omitempty"`
}

// UnmarshalYAML accepts the scalar shorthand `- amsmath` alongside the
// mapping form.
func (p *Package) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Name = node.Value
		return nil
	}

	type plain Package
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*p = Package(decoded)
	return nil
}

// Command is one macro definition.
type Command struct {
	Name       string `yaml:"name"`
	Args       int    `yaml:"args,omitempty"`
	Definition string `yaml:"definition"`
}

// Element describes one body element. Exactly one field must be set.
type Element struct {
	Paragraph   string       `yaml:"paragraph,omitempty"`
	Section     *Section     `yaml:"section,omitempty"`
	List        *List        `yaml:"list,omitempty"`
	Table       *Table       `yaml:"table,omitempty"`
	Align       *Align       `yaml:"align,omitempty"`
	Environment *Environment `yaml:"environment,omitempty"`

	// Marker is one of: tableofcontents, titlepage, clearpage, pagebreak.
	Marker string `yaml:"marker,omitempty"`

	// Input references another LaTeX file by path.
	Input string `yaml:"input,omitempty"`

	// Raw is verbatim LaTeX emitted as-is.
	Raw string `yaml:"raw,omitempty"`
}

// Section describes a named section; elements nest recursively.
type Section struct {
	Name     string    `yaml:"name"`
	Elements []Element `yaml:"elements,omitempty"`
}

// List describes an enumerate or itemize environment.
type List struct {
	Kind     string   `yaml:"kind"`
	Argument string   `yaml:"argument,omitempty"`
	Items    []string `yaml:"items,omitempty"`
}

// Table describes a tabular environment. Columns is the raw spec escape
// hatch; Alignments is the typed per-column form. Set at most one.
type Table struct {
	Columns    string   `yaml:"columns,omitempty"`
	Alignments []string `yaml:"alignments,omitempty"`
	Rows       []Row    `yaml:"rows,omitempty"`
}

// Row is one table row: in YAML either the scalar `hline` or a sequence of
// cell values.
type Row struct {
	Cells []string
	Rule  bool
}

// UnmarshalYAML decodes the scalar rule form and the cell sequence form.
// Non-string cells are stringified.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value != "hline" {
			return fmt.Errorf("unknown row %q (expected a cell list or \"hline\")", node.Value)
		}
		r.Rule = true
		return nil
	case yaml.SequenceNode:
		var cells []any
		if err := node.Decode(&cells); err != nil {
			return err
		}
		r.Cells = make([]string, 0, len(cells))
		for _, cell := range cells {
			r.Cells = append(r.Cells, fmt.Sprint(cell))
		}
		return nil
	default:
		return fmt.Errorf("row must be a cell list or \"hline\"")
	}
}

// Align describes an equation group.
type Align struct {
	Equations []Equation `yaml:"equations"`
}

// Equation is one equation of an align group. Numbered defaults to true.
type Equation struct {
	Text     string `yaml:"text"`
	Label    string `yaml:"label,omitempty"`
	Numbered *bool  `yaml:"numbered,omitempty"`
}

// Environment describes a generic named environment with verbatim lines.
type Environment struct {
	Name  string   `yaml:"name"`
	Lines []string `yaml:"lines,omitempty"`
}

// Load parses a manifest from YAML bytes. Unknown fields are rejected so
// typos surface as errors instead of silently dropped content.
func Load(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
