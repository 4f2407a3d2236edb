// Package config loads generator settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benedoc-inc/specpdf"
	"github.com/benedoc-inc/specpdf/layout"
	"github.com/benedoc-inc/specpdf/logging"
	"github.com/benedoc-inc/specpdf/types"
)

var (
	// ErrNotFound is returned when the configuration file does not exist.
	ErrNotFound = errors.New("config file not found")
	// ErrInvalidFormat is returned when the file is not valid YAML for the schema.
	ErrInvalidFormat = errors.New("invalid config format")
	// ErrMissingEnvVar is returned when a required ${VAR:?msg} is unset.
	ErrMissingEnvVar = errors.New("missing environment variable")
)

// Config is the file schema.
type Config struct {
	Layout  LayoutConfig  `yaml:"layout"`
	Labels  LabelsConfig  `yaml:"labels"`
	Logging LoggingConfig `yaml:"logging"`
}

// LayoutConfig holds the wrap settings.
type LayoutConfig struct {
	MaxCharsPerLine int `yaml:"max_chars_per_line"`
}

// LabelsConfig mirrors specpdf.Labels.
type LabelsConfig struct {
	FallbackSection  string `yaml:"fallback_section"`
	SummarySection   string `yaml:"summary_section"`
	EmptyPlaceholder string `yaml:"empty_placeholder"`
	ProjectType      string `yaml:"project_type"`
	GeneratedAt      string `yaml:"generated_at"`
	Provider         string `yaml:"provider"`
	Model            string `yaml:"model"`
	Tokens           string `yaml:"tokens"`
	DateFormat       string `yaml:"date_format"`
}

// LoggingConfig selects the log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	l := specpdf.DefaultLabels()
	return &Config{
		Layout: LayoutConfig{MaxCharsPerLine: layout.DefaultMaxChars},
		Labels: LabelsConfig{
			FallbackSection:  l.FallbackSection,
			SummarySection:   l.SummarySection,
			EmptyPlaceholder: l.EmptyPlaceholder,
			ProjectType:      l.ProjectType,
			GeneratedAt:      l.GeneratedAt,
			Provider:         l.Provider,
			Model:            l.Model,
			Tokens:           l.Tokens,
			DateFormat:       l.DateFormat,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads YAML from r on top of Default, expanding environment
// references first. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	expanded, err := ExpandEnv(string(data))
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the bound, the labels and the logging settings.
func (c *Config) Validate() error {
	if c.Layout.MaxCharsPerLine < specpdf.MinCharsPerLine {
		return types.NewPDFErrorf(types.ErrCodeInvalidInput,
			"layout.max_chars_per_line must be at least %d, got %d", specpdf.MinCharsPerLine, c.Layout.MaxCharsPerLine)
	}
	if err := c.labels().Validate(); err != nil {
		return err
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return types.NewPDFErrorf(types.ErrCodeInvalidInput, "logging.level %q is not a level", c.Logging.Level)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		return types.NewPDFErrorf(types.ErrCodeInvalidInput, "logging.format %q must be json or console", c.Logging.Format)
	}
	return nil
}

// Options converts the layout and label settings into generator options.
func (c *Config) Options() []specpdf.Option {
	return []specpdf.Option{
		specpdf.WithMaxCharsPerLine(c.Layout.MaxCharsPerLine),
		specpdf.WithLabels(c.labels()),
	}
}

// LoggerConfig returns the logging settings writing to out.
func (c *Config) LoggerConfig(out io.Writer) logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Output: out,
	}
}

func (c *Config) labels() specpdf.Labels {
	return specpdf.Labels{
		FallbackSection:  c.Labels.FallbackSection,
		SummarySection:   c.Labels.SummarySection,
		EmptyPlaceholder: c.Labels.EmptyPlaceholder,
		ProjectType:      c.Labels.ProjectType,
		GeneratedAt:      c.Labels.GeneratedAt,
		Provider:         c.Labels.Provider,
		Model:            c.Labels.Model,
		Tokens:           c.Labels.Tokens,
		DateFormat:       c.Labels.DateFormat,
	}
}
