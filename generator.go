package specpdf

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/benedoc-inc/specpdf/font"
	"github.com/benedoc-inc/specpdf/layout"
	"github.com/benedoc-inc/specpdf/logging"
	"github.com/benedoc-inc/specpdf/telemetry"
	"github.com/benedoc-inc/specpdf/text"
	"github.com/benedoc-inc/specpdf/types"
	"github.com/benedoc-inc/specpdf/writer"
)

// Generator renders requests into PDF documents. It holds configuration
// only; every call builds its own document, so a Generator may be shared
// between goroutines.
type Generator struct {
	maxChars  int
	labels    Labels
	logger    *bolt.Logger
	telemetry *telemetry.Telemetry

	engine *layout.Engine
	parser *text.Parser
}

// New creates a Generator.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		maxChars: layout.DefaultMaxChars,
		labels:   DefaultLabels(),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	g.labels = g.labels.latin1()
	g.engine = layout.New(layout.Config{
		MaxChars:     g.maxChars,
		SummaryTitle: g.labels.SummarySection,
	})
	g.parser = &text.Parser{
		FallbackTitle: g.labels.FallbackSection,
		Placeholder:   g.labels.EmptyPlaceholder,
	}
	return g, nil
}

// Generate renders req. It fails when ctx is already done or when an
// internal invariant breaks; no bytes are returned on failure.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.telemetry != nil {
		ctx, span := g.telemetry.Start(ctx, req.Title)
		res, err := g.generate(req)
		pages, size := 0, 0
		if res != nil {
			pages, size = res.Pages, len(res.PDF)
		}
		g.telemetry.Finish(ctx, span, pages, size, err)
		return res, err
	}
	return g.generate(req)
}

func (g *Generator) generate(req Request) (*Result, error) {
	start := time.Now()
	wc := types.NewWarningCollector()
	clean := func(field, s string) string {
		return transliterate(wc, field, s)
	}

	title := singleLine(clean("title", req.Title))
	sections := g.parser.Parse(text.Normalize(clean("specification", req.Specification)))

	content := layout.Content{
		Title:    title,
		Metadata: g.metadataLines(req.Metadata, clean),
		Sections: sections,
	}
	if pt := singleLine(clean("project_type", req.ProjectType)); pt != "" {
		content.Subtitle = g.labels.ProjectType + ": " + pt
	}
	if req.Summary != "" {
		content.Summary = text.ParseParagraphs(text.Normalize(clean("summary", req.Summary)))
	}

	pages := g.engine.Layout(content, wc)
	doc, err := writer.NewBuilder().Build(pages)
	if err == nil {
		var data []byte
		if data, err = writer.Serialize(doc); err == nil {
			res := &Result{
				PDF:      data,
				Pages:    len(doc.Pages()),
				Objects:  len(doc.Objects),
				Sections: len(sections),
				Warnings: wc.Warnings(),
			}
			g.logResult(title, res, wc, time.Since(start))
			return res, nil
		}
	}

	logging.With(g.logger.Error(), logging.Title(title), logging.ErrorField(err)).
		Msg("document generation failed")
	return nil, err
}

func (g *Generator) logResult(title string, res *Result, wc *types.WarningCollector, d time.Duration) {
	if n := len(wc.GetByCode(types.WarnTransliterated)); n > 0 {
		logging.With(g.logger.Warn(), logging.Title(title), logging.Replaced(n)).
			Msg("characters outside Latin-1 were transliterated")
	}
	logging.With(g.logger.Debug(),
		logging.Title(title),
		logging.Pages(res.Pages),
		logging.Objects(res.Objects),
		logging.Bytes(len(res.PDF)),
		logging.Sections(res.Sections),
		logging.Duration(d),
	).Msg("document generated")
}

// metadataLines renders the set metadata fields, one per line.
func (g *Generator) metadataLines(m *Metadata, clean func(field, s string) string) []string {
	if m == nil {
		return nil
	}
	var lines []string
	add := func(label, value string) {
		if value = singleLine(value); value != "" {
			lines = append(lines, label+": "+value)
		}
	}
	if !m.GeneratedAt.IsZero() {
		add(g.labels.GeneratedAt, clean("generated_at", m.GeneratedAt.Format(g.labels.DateFormat)))
	}
	add(g.labels.Provider, clean("provider", m.Provider))
	add(g.labels.Model, clean("model", m.Model))
	if m.TokensUsed > 0 {
		add(g.labels.Tokens, strconv.Itoa(m.TokensUsed))
	}
	return lines
}

// transliterate maps s onto Latin-1 and records one warning per replaced
// rune.
func transliterate(wc *types.WarningCollector, field, s string) string {
	out, replaced := font.Transliterate(s)
	for _, r := range replaced {
		wc.AddWarningf(types.WarningLevelWarning, types.WarnTransliterated,
			"%s: replaced %U", field, r).
			WithContext("field", field).
			WithContext("rune", string(r))
	}
	return out
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
