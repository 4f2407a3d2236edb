package text

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits for the capitalised-heading heuristic.
const (
	maxHeadingRunes = 80
	maxHeadingWords = 10
)

var (
	markdownHeadingPattern = regexp.MustCompile(`^#{1,6}(?:\s+(.*))?$`)
	bulletPattern          = regexp.MustCompile(`^[-*•]\s+(.+)$`)
	numberedPattern        = regexp.MustCompile(`^(\d{1,9})\.\s+(.+)$`)

	// A list marker at line start is preserved verbatim by inline cleanup,
	// so "* item" is not mistaken for an italic delimiter.
	listMarkerPattern = regexp.MustCompile(`^(?:[-*•]|\d{1,9}\.)\s+`)

	fencePattern = regexp.MustCompile("^(?:```|~~~)")
	rulePattern  = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)

	linkPattern    = regexp.MustCompile(`(!?)\[([^\[\]]*)\]\(([^()\s]*)\)`)
	commentPattern = regexp.MustCompile(`<!--.*?-->`)
	tagPattern     = regexp.MustCompile(`</?[A-Za-z][^<>]*>`)
	italicStar     = regexp.MustCompile(`\*([^*\s][^*]*?)\*`)
	italicScore    = regexp.MustCompile(`(^|[\s(])_([^_\s][^_]*?)_([\s).,;:!?]|$)`)
)

// rule is one classification heuristic. Rules are tried in order and the
// first match wins.
type rule struct {
	name  string
	match func(s string) (CanonicalLine, bool)
}

var rules = []rule{
	{"markdown-heading", matchMarkdownHeading},
	{"capitalised-heading", matchCapitalisedHeading},
	{"bullet", matchBullet},
	{"numbered", matchNumbered},
}

// classify turns one raw input line into a canonical line.
func classify(raw string) CanonicalLine {
	s := collapse(stripControl(raw))
	if s == "" || fencePattern.MatchString(s) || rulePattern.MatchString(s) {
		return CanonicalLine{Kind: Blank}
	}
	s = stripMarkup(s)
	if s == "" || rulePattern.MatchString(s) {
		return CanonicalLine{Kind: Blank}
	}
	for _, r := range rules {
		if line, ok := r.match(s); ok {
			return line
		}
	}
	return CanonicalLine{Kind: Plain, Text: s}
}

func matchMarkdownHeading(s string) (CanonicalLine, bool) {
	m := markdownHeadingPattern.FindStringSubmatch(s)
	if m == nil {
		return CanonicalLine{}, false
	}
	t := trimHeading(m[1])
	if t == "" {
		return CanonicalLine{Kind: Blank}, true
	}
	return CanonicalLine{Kind: Heading, Text: t}, true
}

// matchCapitalisedHeading recognises short ALL-CAPS or title-style lines
// such as "VISAO GERAL" or "Requisitos Funcionais:". It also accepts short
// capitalised sentences that lack a final period.
func matchCapitalisedHeading(s string) (CanonicalLine, bool) {
	t := strings.TrimSpace(strings.TrimSuffix(s, ":"))
	if t == "" || utf8.RuneCountInString(t) > maxHeadingRunes {
		return CanonicalLine{}, false
	}
	first, _ := utf8.DecodeRuneInString(t)
	if !unicode.IsLetter(first) {
		return CanonicalLine{}, false
	}
	for _, r := range t {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune(" -_/()", r) {
			return CanonicalLine{}, false
		}
	}
	words := strings.Fields(t)
	if len(words) > maxHeadingWords {
		return CanonicalLine{}, false
	}
	if !isAllCaps(t) && !isTitleStyle(words) {
		return CanonicalLine{}, false
	}
	return CanonicalLine{Kind: Heading, Text: t}, true
}

func matchBullet(s string) (CanonicalLine, bool) {
	m := bulletPattern.FindStringSubmatch(s)
	if m == nil {
		return CanonicalLine{}, false
	}
	return CanonicalLine{Kind: Bullet, Text: m[1]}, true
}

func matchNumbered(s string) (CanonicalLine, bool) {
	m := numberedPattern.FindStringSubmatch(s)
	if m == nil {
		return CanonicalLine{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return CanonicalLine{}, false
	}
	return CanonicalLine{Kind: Numbered, Text: m[2], Index: n}, true
}

func isAllCaps(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if unicode.IsLower(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2
}

// isTitleStyle reports whether the first word and every word of more than
// three letters start with an uppercase letter. Short connectives ("de",
// "and") may stay lowercase.
func isTitleStyle(words []string) bool {
	for i, w := range words {
		var lead rune
		letters := 0
		for _, r := range w {
			if unicode.IsLetter(r) {
				if letters == 0 {
					lead = r
				}
				letters++
			}
		}
		if letters == 0 {
			continue
		}
		if (i == 0 || letters > 3) && !unicode.IsUpper(lead) {
			return false
		}
	}
	return true
}

func trimHeading(s string) string {
	for {
		t := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ":#"))
		if t == s {
			return t
		}
		s = t
	}
}

// stripControl drops control characters; tabs become spaces.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r == '\uFEFF':
			return -1
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripMarkup removes inline markup until the line stops changing, which
// keeps cleanup idempotent even for nested constructs like "<<b>i>".
// Every rewrite shortens the line, so the loop terminates.
func stripMarkup(s string) string {
	for {
		next := stripMarkupOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripMarkupOnce(s string) string {
	marker := listMarkerPattern.FindString(s)
	body := s[len(marker):]

	body = linkPattern.ReplaceAllStringFunc(body, func(m string) string {
		parts := linkPattern.FindStringSubmatch(m)
		image, label, url := parts[1] != "", strings.TrimSpace(parts[2]), parts[3]
		switch {
		case image && label != "":
			return label
		case label == "":
			return url
		case url == "" || url == label:
			return label
		default:
			return label + " (" + url + ")"
		}
	})
	body = commentPattern.ReplaceAllString(body, " ")
	body = tagPattern.ReplaceAllString(body, " ")
	body = strings.NewReplacer("**", "", "__", "", "~~", "", "`", "").Replace(body)
	body = italicStar.ReplaceAllString(body, "$1")
	body = italicScore.ReplaceAllString(body, "$1$2$3")

	return collapse(marker + body)
}
