// Package cli provides the Cobra command structure for gotex.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gotex/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gotex command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "gotex",
		Short: "Build LaTeX documents from YAML manifests",
		Long: `gotex renders LaTeX source from declarative YAML document manifests.

A manifest describes the document class, preamble (title, author, package
imports, macro definitions), and body elements: sections, paragraphs, lists,
tables, equation groups, and raw LaTeX escape hatches. gotex builds the
document tree and serializes it; compiling the result to PDF is left to your
TeX toolchain.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(&color))
	rootCmd.AddCommand(newExampleCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
