package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benedoc-inc/specpdf/parser"
)

// inspectOptions holds options for the inspect command.
type inspectOptions struct {
	outputJSON bool
	showText   bool
}

func (a *App) newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Check the structure of a generated PDF",
		Long: `Read back a PDF produced by specpdf and verify its structure: the
header, the single trailer, every xref offset, stream lengths and the
page tree. Prints a summary, and optionally the text of every page.

Examples:
  specpdf inspect spec.pdf
  specpdf inspect spec.pdf --text
  specpdf inspect spec.pdf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.outputJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.showText, "text", false, "Print the text of every page")

	return cmd
}

func (a *App) inspect(path string, opts *inspectOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	report, err := parser.Inspect(data)
	if err != nil {
		return err
	}

	if opts.outputJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(a.stdout, "File:      %s\n", path)
	fmt.Fprintf(a.stdout, "Version:   %s\n", report.Version)
	fmt.Fprintf(a.stdout, "Objects:   %d\n", report.Size-1)
	fmt.Fprintf(a.stdout, "Root:      %d 0 R\n", report.Root)
	fmt.Fprintf(a.stdout, "StartXRef: %d\n", report.StartXRef)
	fmt.Fprintf(a.stdout, "Pages:     %d\n", len(report.Pages))
	for i, p := range report.Pages {
		fmt.Fprintf(a.stdout, "  page %d: object %d, contents %d, %d lines\n", i+1, p.Object, p.Contents, len(p.Lines))
		if opts.showText {
			for _, l := range p.Lines {
				fmt.Fprintf(a.stdout, "    %s\n", l.Text)
			}
		}
	}
	return nil
}
