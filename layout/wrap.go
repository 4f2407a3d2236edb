package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var listMarkerPattern = regexp.MustCompile(`^(?:-|\d+\.) \S`)

// IsListItem reports whether a paragraph starts with a "- " or "N. " marker.
func IsListItem(paragraph string) bool {
	return listMarkerPattern.MatchString(paragraph)
}

// Wrap greedily breaks s into lines of at most max characters, splitting
// only at spaces. A word longer than max is placed alone on its own line.
// For list items the marker stays attached to the first word, so the
// marker never ends up alone on a line.
func Wrap(s string, max int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if IsListItem(s) && len(words) > 1 {
		words = append([]string{words[0] + " " + words[1]}, words[2:]...)
	}

	var (
		lines []string
		cur   strings.Builder
		n     int
	)
	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		if n > 0 && n+1+wl > max {
			lines = append(lines, cur.String())
			cur.Reset()
			n = 0
		}
		if n > 0 {
			cur.WriteByte(' ')
			n++
		}
		cur.WriteString(w)
		n += wl
	}
	return append(lines, cur.String())
}

// upperLatin1 uppercases s without leaving Latin-1: runes whose uppercase
// form lies outside it ("ÿ", "µ") are kept as they are.
func upperLatin1(s string) string {
	return strings.Map(func(r rune) rune {
		u := unicode.ToUpper(r)
		if r <= unicode.MaxLatin1 && u > unicode.MaxLatin1 {
			return r
		}
		return u
	}, s)
}
