package writer

import (
	"github.com/benedoc-inc/specpdf/font"
	"github.com/benedoc-inc/specpdf/layout"
	"github.com/benedoc-inc/specpdf/types"
)

// Fixed object numbers.
const (
	CatalogRef  Ref = 1
	PageTreeRef Ref = 2
)

// Builder turns laid-out pages into a Document.
type Builder struct {
	MediaBox layout.PageSize
}

// NewBuilder creates a builder for A4 pages
func NewBuilder() *Builder {
	return &Builder{MediaBox: layout.PageSizeA4}
}

// Build allocates object numbers and renders each page's content stream.
//
// Numbers are assigned in a fixed order: catalog 1, page tree 2, then a
// (page, content) pair per page, then the regular and bold fonts. An empty
// page list yields a single page holding one space, so the file always has
// a page.
func (b *Builder) Build(pages []layout.Page) (*Document, error) {
	if len(pages) == 0 {
		pages = []layout.Page{blankPage()}
	}

	faces := font.Set()
	first := PageTreeRef + 1
	fontBase := first + Ref(2*len(pages))
	resources := make([]FontResource, len(faces))
	for i, f := range faces {
		resources[i] = FontResource{Name: f.Resource, Ref: fontBase + Ref(i)}
	}

	tree := &PageTree{ID: PageTreeRef}
	objects := []Object{&Catalog{ID: CatalogRef, Pages: PageTreeRef}, tree}

	for i, p := range pages {
		pageRef := first + Ref(2*i)
		contentRef := pageRef + 1

		data, err := renderPage(p)
		if err != nil {
			return nil, err
		}

		tree.Kids = append(tree.Kids, pageRef)
		objects = append(objects,
			&PageObject{
				ID:       pageRef,
				Parent:   PageTreeRef,
				Contents: contentRef,
				MediaBox: b.MediaBox,
				Fonts:    resources,
			},
			NewStream(contentRef, data),
		)
	}

	for i, f := range faces {
		objects = append(objects, &Font{ID: fontBase + Ref(i), Face: f})
	}

	return &Document{Objects: objects, Root: CatalogRef}, nil
}

// renderPage writes one BT/ET block per line.
func renderPage(p layout.Page) ([]byte, error) {
	cs := NewContentStream()
	for _, l := range p.Lines {
		raw, err := font.EncodeLatin1(l.Text)
		if err != nil {
			return nil, types.WrapError(types.ErrCodeEncodingError, "text is not Latin-1", err).
				WithContext("page", p.Number).
				WithContext("text", l.Text)
		}
		cs.BeginText().
			SetFont(font.Select(l.Bold).Name(), l.FontSize).
			MoveTo(l.X, l.Y).
			ShowText(raw).
			EndText()
	}
	return cs.Bytes(), nil
}

func blankPage() layout.Page {
	return layout.Page{
		Number: 1,
		Lines: []layout.PlacedLine{{
			LayoutLine: layout.LayoutLine{
				Text:       " ",
				FontSize:   layout.BodyStyle.Size,
				LineHeight: layout.BodyStyle.LineHeight,
			},
			X: layout.Margin,
			Y: layout.PageSizeA4.Height - layout.Margin,
		}},
	}
}
