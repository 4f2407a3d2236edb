package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benedoc-inc/specpdf/compare"
)

// diffOptions holds options for the diff command.
type diffOptions struct {
	outputJSON       bool
	ignoreCase       bool
	ignoreWhitespace bool
	ignoreStyle      bool
	exitCode         bool
}

// ErrDifferent is returned by diff --exit-code when the documents differ.
var ErrDifferent = errors.New("documents differ")

func (a *App) newDiffCmd() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <old.pdf> <new.pdf>",
		Short: "Compare the text of two generated PDFs",
		Long: `Compare two PDFs produced by specpdf line by line.

Examples:
  specpdf diff v1.pdf v2.pdf
  specpdf diff v1.pdf v2.pdf --ignore-case --ignore-style
  specpdf diff v1.pdf v2.pdf --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.diff(args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.outputJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.ignoreCase, "ignore-case", false, "Compare text case-insensitively")
	cmd.Flags().BoolVar(&opts.ignoreWhitespace, "ignore-whitespace", false, "Collapse spaces before comparing")
	cmd.Flags().BoolVar(&opts.ignoreStyle, "ignore-style", false, "Ignore font and size changes")
	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "Fail when the documents differ")

	return cmd
}

func (a *App) diff(oldPath, newPath string, opts *diffOptions) error {
	oldData, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", oldPath, err)
	}
	newData, err := os.ReadFile(newPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", newPath, err)
	}

	res, err := compare.Compare(oldData, newData, compare.Options{
		IgnoreCase:       opts.ignoreCase,
		IgnoreWhitespace: opts.ignoreWhitespace,
		IgnoreStyle:      opts.ignoreStyle,
	})
	if err != nil {
		return err
	}

	if opts.outputJSON {
		out, err := compare.GenerateJSONReport(res)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, out)
	} else {
		fmt.Fprint(a.stdout, compare.GenerateReport(res))
	}

	if opts.exitCode && !res.Identical {
		return ErrDifferent
	}
	return nil
}
