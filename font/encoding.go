package font

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// substitutes maps common typographic runes outside Latin-1 to plain text.
// Bullets become "-" so that "• item" is still recognised as a list item.
var substitutes = map[rune]string{
	'\u2018': "'", '\u2019': "'", '\u201A': "'", '\u2032': "'", '\u2039': "'", '\u203A': "'",
	'\u201C': "\"", '\u201D': "\"", '\u201E': "\"", '\u2033': "\"",
	'\u2010': "-", '\u2011': "-", '\u2012': "-", '\u2013': "-", '\u2014': "-", '\u2015': "-", '\u2212': "-",
	'\u2022': "-", '\u2023': "-", '\u2043': "-", '\u25AA': "-", '\u25CF': "-", '\u25E6': "-",
	'\u2026': "...",
	'\u2002': " ", '\u2003': " ", '\u2004': " ", '\u2005': " ", '\u2006': " ",
	'\u2007': " ", '\u2008': " ", '\u2009': " ", '\u200A': " ", '\u202F': " ",
	'\u205F': " ", '\u3000': " ",
	'\u200B': "", '\u200C': "", '\u200D': "", '\u2060': "", '\uFEFF': "",
	'\u20AC': "EUR",
	'\u2122': "(TM)",
	'\u2190': "<-", '\u2192': "->", '\u2194': "<->", '\u21D2': "=>",
	'\u2264': "<=", '\u2265': ">=", '\u2260': "!=",
	'\u2713': "v", '\u2714': "v", '\u2717': "x", '\u2718': "x",
}

// Transliterate maps s onto the Latin-1 repertoire. Text is first composed
// (NFC) so that decomposed accents collapse into their Latin-1 letters.
// Runes that remain outside Latin-1 are replaced by a known substitute, by
// the Latin-1 base letters of their compatibility decomposition, or by "?".
// The replaced runes are returned in input order.
func Transliterate(s string) (string, []rune) {
	s = norm.NFC.String(s)
	if isLatin1(s) {
		return s, nil
	}

	var b strings.Builder
	var replaced []rune
	for _, r := range s {
		if r <= unicode.MaxLatin1 {
			b.WriteRune(r)
			continue
		}
		replaced = append(replaced, r)
		if sub, ok := substitutes[r]; ok {
			b.WriteString(sub)
			continue
		}
		b.WriteString(decompose(r))
	}
	return b.String(), replaced
}

// decompose keeps the Latin-1 part of r's NFKD form, dropping combining
// marks: "ŵ" -> "w", "ﬁ" -> "fi".
func decompose(r rune) string {
	var b strings.Builder
	for _, d := range norm.NFKD.String(string(r)) {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		if d <= unicode.MaxLatin1 {
			b.WriteRune(d)
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

func isLatin1(s string) bool {
	for _, r := range s {
		if r > unicode.MaxLatin1 {
			return false
		}
	}
	return true
}

// EncodeLatin1 converts s to single-byte ISO-8859-1. It fails on any rune
// outside that repertoire; callers are expected to Transliterate first.
func EncodeLatin1(s string) ([]byte, error) {
	return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
}

// DecodeLatin1 converts ISO-8859-1 bytes back to a Go string.
func DecodeLatin1(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
