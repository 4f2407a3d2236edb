// Package writer provides PDF writing capabilities
package writer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/benedoc-inc/specpdf/font"
	"github.com/benedoc-inc/specpdf/layout"
)

// Ref is an indirect object number. Generation is always 0.
type Ref int

// String formats the reference as "n 0 R"
func (r Ref) String() string {
	return fmt.Sprintf("%d 0 R", int(r))
}

// Object is one indirect PDF object.
type Object interface {
	// Number returns the object number.
	Number() Ref
	// References lists every object this one points to.
	References() []Ref
	// Body returns the serialized object without the "obj"/"endobj" framing.
	Body() []byte
}

// Catalog is the document root.
type Catalog struct {
	ID    Ref
	Pages Ref
}

// Number returns the catalog's object number.
func (c *Catalog) Number() Ref {
	return c.ID
}

// References returns the page tree reference.
func (c *Catalog) References() []Ref {
	return []Ref{c.Pages}
}

// Body returns the catalog dictionary.
func (c *Catalog) Body() []byte {
	return []byte(fmt.Sprintf("<< /Type /Catalog /Pages %s >>", c.Pages))
}

// PageTree is the single /Pages node; every page is a direct kid.
type PageTree struct {
	ID   Ref
	Kids []Ref
}

// Number returns the page tree's object number.
func (p *PageTree) Number() Ref {
	return p.ID
}

// References returns the kids in page order.
func (p *PageTree) References() []Ref {
	return p.Kids
}

// Body returns the /Pages dictionary with its /Kids array and /Count.
func (p *PageTree) Body() []byte {
	kids := make([]string, len(p.Kids))
	for i, k := range p.Kids {
		kids[i] = k.String()
	}
	return []byte(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(p.Kids)))
}

// FontResource binds a resource name to a font object.
type FontResource struct {
	Name string // without slash, e.g. "F1"
	Ref  Ref
}

// PageObject is a leaf page.
type PageObject struct {
	ID       Ref
	Parent   Ref
	Contents Ref
	MediaBox layout.PageSize
	Fonts    []FontResource
}

// Number returns the page's object number.
func (p *PageObject) Number() Ref {
	return p.ID
}

// References returns the parent, the content stream and every font.
func (p *PageObject) References() []Ref {
	refs := []Ref{p.Parent, p.Contents}
	for _, f := range p.Fonts {
		refs = append(refs, f.Ref)
	}
	return refs
}

// Body returns the page dictionary, fonts inlined under /Resources.
func (p *PageObject) Body() []byte {
	var fonts strings.Builder
	for _, f := range p.Fonts {
		fmt.Fprintf(&fonts, "/%s %s ", f.Name, f.Ref)
	}
	return []byte(fmt.Sprintf("<< /Type /Page /Parent %s /MediaBox [0 0 %s %s] /Contents %s /Resources << /Font << %s>> >> >>",
		p.Parent, formatNumber(p.MediaBox.Width), formatNumber(p.MediaBox.Height), p.Contents, fonts.String()))
}

// Stream is an unfiltered stream object. Length must equal len(Data);
// NewStream keeps them in sync.
type Stream struct {
	ID     Ref
	Length int
	Data   []byte
}

// NewStream creates a stream object whose data ends with exactly one
// newline more than data when data does not already end with one.
func NewStream(id Ref, data []byte) *Stream {
	d := make([]byte, len(data), len(data)+1)
	copy(d, data)
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	return &Stream{ID: id, Length: len(d), Data: d}
}

// Number returns the stream's object number.
func (s *Stream) Number() Ref {
	return s.ID
}

// References returns nil; content streams point at nothing.
func (s *Stream) References() []Ref {
	return nil
}

// Body returns the stream dictionary followed by the raw data.
func (s *Stream) Body() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<< /Length %d >>\nstream\n", s.Length)
	buf.Write(s.Data)
	buf.WriteString("endstream")
	return buf.Bytes()
}

// Font is a non-embedded standard font dictionary.
type Font struct {
	ID   Ref
	Face font.Standard
}

// Number returns the font's object number.
func (f *Font) Number() Ref {
	return f.ID
}

// References returns nil.
func (f *Font) References() []Ref {
	return nil
}

// Body returns the standard font dictionary.
func (f *Font) Body() []byte {
	return []byte(f.Face.Dict())
}

// Document is the object graph of one file. Objects are held in file order.
type Document struct {
	Objects []Object
	Root    Ref
}

// Pages returns the page objects in document order.
func (d *Document) Pages() []*PageObject {
	var pages []*PageObject
	for _, o := range d.Objects {
		if p, ok := o.(*PageObject); ok {
			pages = append(pages, p)
		}
	}
	return pages
}
