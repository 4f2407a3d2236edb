// Package font provides the two built-in fonts used by generated documents
// and the Latin-1 text encoding their content streams rely on.
package font

import (
	"fmt"
)

// Standard is one of the PDF base-14 Type1 fonts. Standard fonts are never
// embedded: a reader resolves them by BaseFont name.
type Standard struct {
	Resource string // Resource name without the slash, e.g. "F1"
	BaseFont string // PostScript name, e.g. "Helvetica"
}

// The regular and bold faces. Their order is the order of the font objects
// in every generated file.
var (
	Helvetica     = Standard{Resource: "F1", BaseFont: "Helvetica"}
	HelveticaBold = Standard{Resource: "F2", BaseFont: "Helvetica-Bold"}
)

// Set returns the fonts every page declares in its Resources dictionary.
func Set() []Standard {
	return []Standard{Helvetica, HelveticaBold}
}

// Select returns the face for the given weight.
func Select(bold bool) Standard {
	if bold {
		return HelveticaBold
	}
	return Helvetica
}

// Name returns the resource name as a PDF name token ("/F1").
func (s Standard) Name() string {
	return "/" + s.Resource
}

// Dict returns the font dictionary. WinAnsiEncoding agrees with Latin-1 on
// 0x20-0x7E and 0xA0-0xFF, which covers every byte EncodeLatin1 emits.
func (s Standard) Dict() string {
	return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding >>", s.BaseFont)
}
