// Package writer provides PDF writing capabilities including page content streams
package writer

import (
	"bytes"
	"fmt"
	"strconv"
)

// ContentStream builds PDF page content streams
type ContentStream struct {
	buf bytes.Buffer
}

// NewContentStream creates a new content stream builder
func NewContentStream() *ContentStream {
	return &ContentStream{}
}

// Bytes returns the content stream data
func (cs *ContentStream) Bytes() []byte {
	return cs.buf.Bytes()
}

// String returns the content stream as a string
func (cs *ContentStream) String() string {
	return cs.buf.String()
}

// Len returns the number of bytes written so far
func (cs *ContentStream) Len() int {
	return cs.buf.Len()
}

// --- Text Operations ---

// BeginText starts a text object (BT operator)
func (cs *ContentStream) BeginText() *ContentStream {
	cs.buf.WriteString("BT\n")
	return cs
}

// EndText ends a text object (ET operator)
func (cs *ContentStream) EndText() *ContentStream {
	cs.buf.WriteString("ET\n")
	return cs
}

// SetFont sets the font and size (Tf operator)
// fontName should be a resource name like "/F1"
func (cs *ContentStream) SetFont(fontName string, size float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%s %s Tf\n", fontName, formatNumber(size))
	return cs
}

// SetTextMatrix sets the text matrix (Tm operator). The translation
// components are written with two decimals.
func (cs *ContentStream) SetTextMatrix(a, b, c, d, e, f float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%s %s %s %s %.2f %.2f Tm\n",
		formatNumber(a), formatNumber(b), formatNumber(c), formatNumber(d), e, f)
	return cs
}

// MoveTo positions the next text at (x, y) with an identity text matrix
func (cs *ContentStream) MoveTo(x, y float64) *ContentStream {
	return cs.SetTextMatrix(1, 0, 0, 1, x, y)
}

// ShowText displays a string (Tj operator). raw holds the encoded bytes;
// they are escaped here.
func (cs *ContentStream) ShowText(raw []byte) *ContentStream {
	cs.buf.WriteByte('(')
	cs.buf.Write(EscapeString(raw))
	cs.buf.WriteString(") Tj\n")
	return cs
}

// EscapeString escapes the bytes that are special inside a PDF literal
// string: backslash and both parentheses. Every other byte is copied.
func EscapeString(raw []byte) []byte {
	out := make([]byte, 0, len(raw)+8)
	for _, c := range raw {
		switch c {
		case '\\', '(', ')':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
