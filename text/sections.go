package text

import (
	"strconv"
	"strings"
)

// Defaults used when the input carries no heading at all.
const (
	DefaultFallbackTitle = "Detalhamento"
	DefaultPlaceholder   = "Nenhum conteudo disponivel."
)

// Section is a titled group of paragraphs. Title is empty only for a
// preamble that precedes the first heading.
type Section struct {
	Title      string
	Paragraphs []string
}

// Parser groups canonical lines into sections.
type Parser struct {
	// FallbackTitle names the single section produced when no heading
	// was seen.
	FallbackTitle string
	// Placeholder is the paragraph used when that section would be empty.
	Placeholder string
}

// NewParser returns a parser with the default fallback labels.
func NewParser() *Parser {
	return &Parser{
		FallbackTitle: DefaultFallbackTitle,
		Placeholder:   DefaultPlaceholder,
	}
}

// ParseSections groups lines with the default parser.
func ParseSections(lines []CanonicalLine) []Section {
	return NewParser().Parse(lines)
}

// Parse groups lines into sections. The result is never empty.
func (p *Parser) Parse(lines []CanonicalLine) []Section {
	var (
		sections    []Section
		current     Section
		sawHeading  bool
		accumulator paragraph
	)

	for _, l := range lines {
		switch l.Kind {
		case Heading:
			current.Paragraphs = accumulator.flush(current.Paragraphs)
			if current.Title != "" || len(current.Paragraphs) > 0 {
				sections = append(sections, current)
			}
			current = Section{Title: l.Text}
			sawHeading = true
		case Plain:
			accumulator.add(l.Text)
		case Bullet, Numbered:
			current.Paragraphs = accumulator.flush(current.Paragraphs)
			current.Paragraphs = append(current.Paragraphs, listItem(l))
		default:
			current.Paragraphs = accumulator.flush(current.Paragraphs)
		}
	}
	current.Paragraphs = accumulator.flush(current.Paragraphs)

	if !sawHeading {
		if len(current.Paragraphs) == 0 {
			current.Paragraphs = []string{p.Placeholder}
		}
		return []Section{{Title: p.FallbackTitle, Paragraphs: current.Paragraphs}}
	}
	if current.Title != "" || len(current.Paragraphs) > 0 {
		sections = append(sections, current)
	}
	return sections
}

// ParseParagraphs flattens lines into paragraphs, keeping headings as
// paragraphs of their own. It is used for free-form blocks such as an
// executive summary that are rendered under a fixed title.
func ParseParagraphs(lines []CanonicalLine) []string {
	var (
		out         []string
		accumulator paragraph
	)
	for _, l := range lines {
		switch l.Kind {
		case Plain:
			accumulator.add(l.Text)
		case Heading:
			out = accumulator.flush(out)
			out = append(out, l.Text)
		case Bullet, Numbered:
			out = accumulator.flush(out)
			out = append(out, listItem(l))
		default:
			out = accumulator.flush(out)
		}
	}
	return accumulator.flush(out)
}

func listItem(l CanonicalLine) string {
	if l.Kind == Numbered {
		return strconv.Itoa(l.Index) + ". " + l.Text
	}
	return "- " + l.Text
}

// paragraph accumulates consecutive Plain lines.
type paragraph struct {
	parts []string
}

func (p *paragraph) add(s string) {
	p.parts = append(p.parts, s)
}

func (p *paragraph) flush(dst []string) []string {
	if len(p.parts) == 0 {
		return dst
	}
	dst = append(dst, strings.Join(p.parts, " "))
	p.parts = p.parts[:0]
	return dst
}
