// Package text turns loosely structured, markdown-ish prose into classified
// canonical lines and groups those lines into titled sections.
package text

import (
	"strconv"
	"strings"
)

// LineKind classifies a canonical line.
type LineKind int

const (
	Blank LineKind = iota
	Plain
	Heading
	Bullet
	Numbered
)

// String returns a string representation of the line kind
func (k LineKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Plain:
		return "plain"
	case Heading:
		return "heading"
	case Bullet:
		return "bullet"
	case Numbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// CanonicalLine is one classified, whitespace-normalised line. Text never
// carries the heading or list marker; Index is set for Numbered lines only.
type CanonicalLine struct {
	Kind  LineKind
	Text  string
	Index int
}

// String renders the line in canonical text form. Feeding the rendered
// lines back through Normalize reproduces the same lines.
func (l CanonicalLine) String() string {
	switch l.Kind {
	case Heading:
		return "# " + l.Text
	case Bullet:
		return "- " + l.Text
	case Numbered:
		return strconv.Itoa(l.Index) + ". " + l.Text
	case Blank:
		return ""
	default:
		return l.Text
	}
}

// Format renders a canonical line stream back to text, one line per entry.
func Format(lines []CanonicalLine) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}
