package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotex/internal/logging"
	"github.com/yaklabco/gotex/internal/ui/pretty"
	"github.com/yaklabco/gotex/pkg/fsutil"
	"github.com/yaklabco/gotex/pkg/latex"
	"github.com/yaklabco/gotex/pkg/manifest"
)

func newRenderCommand(color *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render a YAML document manifest to LaTeX source",
		Long: `Render a YAML document manifest to LaTeX source.

By default the rendered source is written to stdout. Use --output to write
it to a file instead; the file is written atomically.

Examples:
  gotex render doc.yaml               # Render to stdout
  gotex render doc.yaml -o doc.tex    # Render to a file
  gotex render doc.yaml --debug       # Log the built document tree`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], output, *color)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"write rendered source to file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, path, output, color string) error {
	logger := logging.Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read manifest: %w", ErrIO, err)
	}

	m, err := manifest.Load(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifest, err)
	}

	doc, err := m.Build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifest, err)
	}

	logger.Debug("document built",
		logging.FieldPath, path,
		logging.FieldClass, string(doc.Class),
		logging.FieldElements, len(doc.Elements()),
	)

	rendered, err := latex.Print(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if err := fsutil.WriteAtomic(cmd.Context(), output, []byte(rendered), 0); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	logger.Debug("output written",
		logging.FieldOutput, output,
		logging.FieldBytes, len(rendered),
	)

	styles := pretty.NewStyles(pretty.IsColorEnabled(color, os.Stdout))
	fmt.Fprintln(cmd.OutOrStdout(),
		styles.Success.Render(fmt.Sprintf("wrote %s (%d bytes)", output, len(rendered))))

	return nil
}
