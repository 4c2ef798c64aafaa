package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotex/pkg/latex"
)

func newExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print a sample document built with the library API",
		Long: `Print a sample document built with the library API.

The output demonstrates the preamble, sections, inline formatting, equation
groups, lists, and tables, and doubles as a smoke test for a working
installation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := exampleDocument()
			rendered, err := latex.Print(doc)
			if err != nil {
				return fmt.Errorf("render example: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

// exampleDocument builds a small but representative document.
func exampleDocument() *latex.Document {
	doc := latex.NewDocument(latex.Article)

	doc.Preamble.
		Title("A Taste of gotex").
		Author("The gotex Authors").
		UsePackage("amsmath").
		UsePackage("parskip")

	doc.Push(latex.TitlePage()).
		Push(latex.ClearPage()).
		Push(latex.TableOfContents()).
		Push(latex.ClearPage())

	intro := latex.NewSection("Introduction")
	intro.Push("This is an example paragraph.")

	equations := latex.NewAlign()
	equations.Push(
		"y &= mx + c",
		latex.NewEquationWithLabel("eq:quadratic", "y &= a x^2 + bx + c"),
	)
	intro.Push("Please refer to the equations below:").Push(equations)

	objectives := latex.NewList(latex.Enumerate)
	objectives.Push(
		"Build a document tree with the fluent API.",
		"Render it to LaTeX source.",
		"Feed the result to your TeX toolchain.",
	)
	intro.Push("Here are our objectives:").Push(objectives)

	results := latex.NewSection("Results")

	table := latex.NewTable()
	table.SetColumnSpec(latex.TypedColumns(
		latex.ColumnSettings{Alignment: latex.AlignLeft},
		latex.ColumnSettings{Alignment: latex.AlignRight},
	))
	table.PushRow(latex.Row("metric", "value")).
		PushRow(latex.HLine{}).
		PushRow(latex.Row("documents rendered", 1))

	emphasis := latex.NewParagraph()
	emphasis.PushText("Everything ").
		Push(latex.Bold(latex.Italic(latex.Plain("just works")))).
		PushText(", including ").
		Push(latex.InlineMath(`\lambda`)).
		PushText(" in inline math.")

	results.Push(emphasis).Push(table)

	doc.Push(intro).Push(results)

	return doc
}
