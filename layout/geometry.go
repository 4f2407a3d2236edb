// Package layout places titled sections of prose onto fixed-size pages.
//
// Widths are never measured: a line's extent is bounded by its character
// count, and pagination is a greedy top-to-bottom fill.
package layout

// PageSize represents page dimensions in points (1 point = 1/72 inch)
type PageSize struct {
	Width  float64
	Height float64
}

// PageSizeA4 is the canvas every generated page uses.
var PageSizeA4 = PageSize{Width: 595.28, Height: 841.89}

// Fixed geometry, in points.
const (
	Margin        = 50.0
	ParagraphGap  = 4.0
	HangingIndent = 12.0
)

// DefaultMaxChars is the default bound on characters per body line.
const DefaultMaxChars = 92

// Style is a font size, line height and weight.
type Style struct {
	Size       float64
	LineHeight float64
	Bold       bool
}

// The three text styles.
var (
	BodyStyle    = Style{Size: 11, LineHeight: 16}
	HeadingStyle = Style{Size: 14, LineHeight: 20, Bold: true}
	TitleStyle   = Style{Size: 20, LineHeight: 26, Bold: true}
)

// Bound scales a body character bound to the style's font size, so that
// larger text wraps earlier. It never exceeds max and is at least 1.
func (s Style) Bound(max int) int {
	if s.Size <= BodyStyle.Size {
		return max
	}
	b := int(float64(max) * BodyStyle.Size / s.Size)
	if b < 1 {
		return 1
	}
	return b
}

// LayoutLine is a single physical line of text with its styling.
type LayoutLine struct {
	Text       string
	FontSize   float64
	Bold       bool
	Indent     float64
	LineHeight float64
}

// PlacedLine is a LayoutLine at an absolute baseline position.
type PlacedLine struct {
	LayoutLine
	X float64
	Y float64
}

// Page is an ordered list of placed lines on a PageSizeA4 canvas.
type Page struct {
	Number int // 1-based
	Lines  []PlacedLine
}
