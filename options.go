package specpdf

import (
	"github.com/felixgeelhaar/bolt/v3"

	"github.com/benedoc-inc/specpdf/font"
	"github.com/benedoc-inc/specpdf/telemetry"
	"github.com/benedoc-inc/specpdf/types"
)

// MinCharsPerLine is the smallest accepted line bound.
const MinCharsPerLine = 8

// Labels are the fixed strings printed around the content.
type Labels struct {
	FallbackSection  string // title used when the text has no heading
	SummarySection   string // title of the summary block
	EmptyPlaceholder string // paragraph used when the text is empty
	ProjectType      string
	GeneratedAt      string
	Provider         string
	Model            string
	Tokens           string
	DateFormat       string // time.Format layout for GeneratedAt
}

// DefaultLabels returns the Portuguese labels.
func DefaultLabels() Labels {
	return Labels{
		FallbackSection:  "Detalhamento",
		SummarySection:   "Resumo Executivo",
		EmptyPlaceholder: "Nenhum conteudo disponivel.",
		ProjectType:      "Tipo de Projeto",
		GeneratedAt:      "Gerado em",
		Provider:         "Provedor",
		Model:            "Modelo",
		Tokens:           "Tokens utilizados",
		DateFormat:       "02/01/2006 15:04",
	}
}

// Validate reports the first empty label.
func (l Labels) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"fallback_section", l.FallbackSection},
		{"summary_section", l.SummarySection},
		{"empty_placeholder", l.EmptyPlaceholder},
		{"project_type", l.ProjectType},
		{"generated_at", l.GeneratedAt},
		{"provider", l.Provider},
		{"model", l.Model},
		{"tokens", l.Tokens},
		{"date_format", l.DateFormat},
	}
	for _, f := range fields {
		if f.value == "" {
			return types.NewPDFErrorf(types.ErrCodeInvalidInput, "label %s is empty", f.name)
		}
	}
	return nil
}

// latin1 transliterates every label so that it can be encoded.
func (l Labels) latin1() Labels {
	for _, f := range []*string{
		&l.FallbackSection, &l.SummarySection, &l.EmptyPlaceholder,
		&l.ProjectType, &l.GeneratedAt, &l.Provider, &l.Model, &l.Tokens,
		&l.DateFormat,
	} {
		*f, _ = font.Transliterate(*f)
	}
	return l
}

// Option configures a Generator.
type Option func(*Generator) error

// WithMaxCharsPerLine sets the body line bound in characters.
func WithMaxCharsPerLine(n int) Option {
	return func(g *Generator) error {
		if n < MinCharsPerLine {
			return types.NewPDFErrorf(types.ErrCodeInvalidInput, "max chars per line %d is below %d", n, MinCharsPerLine)
		}
		g.maxChars = n
		return nil
	}
}

// WithLabels replaces the printed labels.
func WithLabels(l Labels) Option {
	return func(g *Generator) error {
		if err := l.Validate(); err != nil {
			return err
		}
		g.labels = l
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *bolt.Logger) Option {
	return func(g *Generator) error {
		if l == nil {
			return types.NewPDFError(types.ErrCodeInvalidInput, "logger is nil")
		}
		g.logger = l
		return nil
	}
}

// WithTelemetry records a span and metrics for every generation.
func WithTelemetry(t *telemetry.Telemetry) Option {
	return func(g *Generator) error {
		g.telemetry = t
		return nil
	}
}
