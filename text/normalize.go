package text

import (
	"strings"
)

// trailerHeadings are heading texts, lowercased, that mark a generated
// testing appendix. Everything from such a heading onward is dropped.
var trailerHeadings = map[string]bool{
	"testing":              true,
	"tests":                true,
	"testes":               true,
	"testing strategy":     true,
	"test plan":            true,
	"testes automatizados": true,
	"estratégia de testes": true,
	"estrategia de testes": true,
	"plano de testes":      true,
}

// Normalize converts raw markdown-ish text into canonical lines.
//
// The result never starts or ends with a Blank line and never holds two
// Blank lines in a row. Normalize(Format(Normalize(x))) equals Normalize(x).
func Normalize(raw string) []CanonicalLine {
	raw = strings.TrimPrefix(raw, "\uFEFF")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var out []CanonicalLine
	pendingBlank := false
	for _, rawLine := range strings.Split(raw, "\n") {
		line := classify(rawLine)
		if line.Kind == Blank {
			pendingBlank = len(out) > 0
			continue
		}
		if line.Kind == Heading && IsTrailerHeading(line.Text) {
			break
		}
		if pendingBlank {
			out = append(out, CanonicalLine{Kind: Blank})
			pendingBlank = false
		}
		out = append(out, line)
	}
	return out
}

// IsTrailerHeading reports whether a heading opens a testing appendix.
func IsTrailerHeading(title string) bool {
	return trailerHeadings[strings.ToLower(strings.TrimSpace(title))]
}
