package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/benedoc-inc/specpdf"
	"github.com/benedoc-inc/specpdf/config"
	"github.com/benedoc-inc/specpdf/logging"
	"github.com/benedoc-inc/specpdf/telemetry"
	"github.com/benedoc-inc/specpdf/types"
)

// generateOptions holds options for the generate command.
type generateOptions struct {
	configPath  string
	input       string
	output      string
	title       string
	projectType string
	summaryFile string
	provider    string
	model       string
	tokens      int
	generatedAt string
	maxChars    int
	verbose     bool
}

func (a *App) newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a specification file as PDF",
		Long: `Render a specification text file as a PDF document.

Input and output default to stdin and stdout; pass "-" explicitly
for the same effect. Logs always go to stderr.

Examples:
  # Render requirements.md to requirements.pdf
  specpdf generate -i requirements.md -o requirements.pdf --title "Portal do Cliente"

  # With a summary, project type and generation metadata
  specpdf generate -i requirements.md -o requirements.pdf --title Portal --project-type API \
    --summary-file summary.txt --provider openai --model gpt-4o --tokens 1834

  # Use labels and bounds from a config file
  specpdf generate -c specpdf.yaml -i requirements.md -o requirements.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	f.StringVarP(&opts.input, "input", "i", "-", "Specification text file")
	f.StringVarP(&opts.output, "output", "o", "-", "Output PDF file")
	f.StringVarP(&opts.title, "title", "t", "", "Document title")
	f.StringVar(&opts.projectType, "project-type", "", "Project type shown under the title")
	f.StringVar(&opts.summaryFile, "summary-file", "", "File holding the executive summary")
	f.StringVar(&opts.provider, "provider", "", "Provider that produced the text")
	f.StringVar(&opts.model, "model", "", "Model that produced the text")
	f.IntVar(&opts.tokens, "tokens", 0, "Tokens used to produce the text")
	f.StringVar(&opts.generatedAt, "generated-at", "", "Generation time (RFC 3339)")
	f.IntVar(&opts.maxChars, "max-chars", 0, "Body line bound in characters (overrides the config file)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func (a *App) generate(cmd *cobra.Command, opts *generateOptions) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	logger := logging.New(cfg.LoggerConfig(a.stderr))

	tel, err := telemetry.New(telemetry.DefaultConfig())
	if err != nil {
		return err
	}
	genOpts := append(cfg.Options(), specpdf.WithLogger(logger), specpdf.WithTelemetry(tel))
	if opts.maxChars != 0 {
		genOpts = append(genOpts, specpdf.WithMaxCharsPerLine(opts.maxChars))
	}
	g, err := specpdf.New(genOpts...)
	if err != nil {
		return err
	}

	req, err := a.buildRequest(opts)
	if err != nil {
		return err
	}

	res, err := g.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(a.stderr, "warning: %s\n", w.Message)
	}

	if err := a.writeOutput(opts.output, res.PDF); err != nil {
		return err
	}
	if opts.output != "-" {
		logging.With(logger.Info(), logging.Path(opts.output), logging.Pages(res.Pages), logging.Bytes(len(res.PDF))).
			Msg("pdf written")
	}
	return nil
}

func (a *App) buildRequest(opts *generateOptions) (specpdf.Request, error) {
	spec, err := a.readInput(opts.input)
	if err != nil {
		return specpdf.Request{}, err
	}
	req := specpdf.Request{
		Title:         opts.title,
		ProjectType:   opts.projectType,
		Specification: spec,
	}
	if opts.summaryFile != "" {
		summary, err := os.ReadFile(opts.summaryFile)
		if err != nil {
			return specpdf.Request{}, fmt.Errorf("failed to read summary: %w", err)
		}
		req.Summary = string(summary)
	}

	if opts.provider != "" || opts.model != "" || opts.tokens != 0 || opts.generatedAt != "" {
		m := &specpdf.Metadata{
			Provider:   opts.provider,
			Model:      opts.model,
			TokensUsed: opts.tokens,
		}
		if opts.generatedAt != "" {
			ts, err := time.Parse(time.RFC3339, opts.generatedAt)
			if err != nil {
				return specpdf.Request{}, types.WrapError(types.ErrCodeInvalidInput, "invalid --generated-at", err)
			}
			m.GeneratedAt = ts
		}
		req.Metadata = m
	}
	return req, nil
}

func (a *App) readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func (a *App) writeOutput(path string, data []byte) error {
	var err error
	if path == "-" {
		_, err = a.stdout.Write(data)
	} else {
		err = os.WriteFile(path, data, 0o644)
	}
	if err != nil {
		return types.WrapError(types.ErrCodeWriteError, "failed to write output", err).
			WithContext("path", path)
	}
	return nil
}
