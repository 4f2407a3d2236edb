package layout

import (
	"unicode/utf8"

	"github.com/benedoc-inc/specpdf/text"
	"github.com/benedoc-inc/specpdf/types"
)

// DefaultSummaryTitle heads the executive summary block.
const DefaultSummaryTitle = "Resumo Executivo"

// Content is everything that goes onto the pages, in reading order.
type Content struct {
	Title    string
	Subtitle string
	Metadata []string
	Summary  []string // paragraphs; rendered as its own section when non-empty
	Sections []text.Section
}

// Config controls an Engine.
type Config struct {
	MaxChars     int    // body characters per line; DefaultMaxChars when <= 0
	SummaryTitle string // DefaultSummaryTitle when empty
}

// Engine lays content out on pages. An Engine holds no per-call state and
// can be used from several goroutines.
type Engine struct {
	maxChars     int
	summaryTitle string
}

// New creates an Engine from cfg.
func New(cfg Config) *Engine {
	e := &Engine{maxChars: cfg.MaxChars, summaryTitle: cfg.SummaryTitle}
	if e.maxChars <= 0 {
		e.maxChars = DefaultMaxChars
	}
	if e.summaryTitle == "" {
		e.summaryTitle = DefaultSummaryTitle
	}
	return e
}

// MaxChars returns the body line bound in effect.
func (e *Engine) MaxChars() int {
	return e.maxChars
}

// Layout places c onto pages. It returns no pages when c holds no text.
// Lines that exceed their bound because of an unsplittable word are
// reported to wc, which may be nil.
func (e *Engine) Layout(c Content, wc *types.WarningCollector) []Page {
	p := &pager{engine: e, warnings: wc}

	if c.Title != "" {
		p.paragraph(upperLatin1(c.Title), TitleStyle)
	}
	if c.Subtitle != "" {
		p.paragraph(c.Subtitle, BodyStyle)
	}
	if len(c.Metadata) > 0 {
		for _, m := range c.Metadata {
			p.lines(m, BodyStyle)
		}
		p.gap()
	}

	if len(c.Summary) > 0 {
		p.section(text.Section{Title: e.summaryTitle, Paragraphs: c.Summary})
	}
	for _, s := range c.Sections {
		p.section(s)
	}
	return p.pages
}

// pager is the vertical cursor of one Layout call.
type pager struct {
	engine   *Engine
	warnings *types.WarningCollector
	pages    []Page
	y        float64
}

func (p *pager) section(s text.Section) {
	if s.Title != "" {
		p.paragraph(s.Title, HeadingStyle)
	}
	for _, para := range s.Paragraphs {
		p.paragraph(para, BodyStyle)
	}
}

func (p *pager) paragraph(s string, st Style) {
	if p.lines(s, st) > 0 {
		p.gap()
	}
}

// lines wraps s and emits the result. List items get a hanging indent on
// continuation lines.
func (p *pager) lines(s string, st Style) int {
	bound := st.Bound(p.engine.maxChars)
	wrapped := Wrap(s, bound)
	list := IsListItem(s)
	for i, l := range wrapped {
		indent := 0.0
		if list && i > 0 {
			indent = HangingIndent
		}
		if n := utf8.RuneCountInString(l); n > bound && p.warnings != nil {
			p.warnings.AddWarningf(types.WarningLevelInfo, types.WarnLongWord,
				"line of %d characters exceeds bound %d", n, bound).
				WithContext("text", l)
		}
		p.emit(LayoutLine{
			Text:       l,
			FontSize:   st.Size,
			Bold:       st.Bold,
			Indent:     indent,
			LineHeight: st.LineHeight,
		})
	}
	return len(wrapped)
}

func (p *pager) emit(l LayoutLine) {
	if len(p.pages) == 0 || p.y < Margin+l.LineHeight {
		p.pages = append(p.pages, Page{Number: len(p.pages) + 1})
		p.y = PageSizeA4.Height - Margin
	}
	page := &p.pages[len(p.pages)-1]
	page.Lines = append(page.Lines, PlacedLine{
		LayoutLine: l,
		X:          Margin + l.Indent,
		Y:          p.y,
	})
	p.y -= l.LineHeight
}

func (p *pager) gap() {
	p.y -= ParagraphGap
}
