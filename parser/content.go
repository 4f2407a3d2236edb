package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/benedoc-inc/specpdf/font"
	"github.com/benedoc-inc/specpdf/types"
)

var (
	fontOpPattern   = regexp.MustCompile(`^(/\w+)\s+([\d.]+)\s+Tf$`)
	matrixOpPattern = regexp.MustCompile(`^([\d.\-]+)\s+([\d.\-]+)\s+([\d.\-]+)\s+([\d.\-]+)\s+([\d.\-]+)\s+([\d.\-]+)\s+Tm$`)
	showOpPattern   = regexp.MustCompile(`^\((.*)\)\s*Tj$`)
)

// TextLine is one Tj string together with the text state it was shown in.
type TextLine struct {
	Font string // resource name, e.g. "/F1"
	Size float64
	X    float64
	Y    float64
	Text string // decoded, escapes removed
}

// ExtractText reads the text-showing operators of a content stream that
// holds one operator per line. Operators other than BT, ET, Tf, Tm and Tj
// are rejected.
func ExtractText(content []byte) ([]TextLine, error) {
	var (
		lines  []TextLine
		state  TextLine
		inText bool
	)
	for n, line := range strings.Split(string(content), "\n") {
		if line == "" {
			continue
		}
		switch {
		case line == "BT":
			if inText {
				return nil, malformed("line %d: nested BT", n+1)
			}
			inText = true
		case line == "ET":
			if !inText {
				return nil, malformed("line %d: ET without BT", n+1)
			}
			inText = false
		case fontOpPattern.MatchString(line):
			m := fontOpPattern.FindStringSubmatch(line)
			state.Font = m[1]
			state.Size, _ = strconv.ParseFloat(m[2], 64)
		case matrixOpPattern.MatchString(line):
			m := matrixOpPattern.FindStringSubmatch(line)
			state.X, _ = strconv.ParseFloat(m[5], 64)
			state.Y, _ = strconv.ParseFloat(m[6], 64)
		case showOpPattern.MatchString(line):
			if !inText {
				return nil, malformed("line %d: Tj outside BT/ET", n+1)
			}
			raw, err := unescape(showOpPattern.FindStringSubmatch(line)[1])
			if err != nil {
				return nil, malformed("line %d: %v", n+1, err)
			}
			text, err := font.DecodeLatin1(raw)
			if err != nil {
				return nil, types.WrapError(types.ErrCodeMalformedPDF, "undecodable string", err)
			}
			l := state
			l.Text = text
			lines = append(lines, l)
		default:
			return nil, malformed("line %d: unexpected operator %q", n+1, line)
		}
	}
	if inText {
		return nil, malformed("content stream ends inside BT")
	}
	return lines, nil
}

// unescape decodes a literal string body. It accepts the escapes a writer
// may produce: \\, \(, \), \n, \r, \t, \b, \f and octal \ddd. Unescaped
// parentheses are rejected.
func unescape(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(', ')':
			return nil, fmt.Errorf("unescaped %q in string", c)
		case '\\':
		default:
			out = append(out, c)
			continue
		}
		i++
		if i >= len(s) {
			return nil, fmt.Errorf("string ends with a lone backslash")
		}
		switch e := s[i]; e {
		case '\\', '(', ')':
			out = append(out, e)
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		default:
			if e < '0' || e > '7' {
				out = append(out, e)
				continue
			}
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(s[i:j], 8, 16)
			out = append(out, byte(v))
			i = j - 1
		}
	}
	return out, nil
}
