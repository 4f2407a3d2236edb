package writer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/benedoc-inc/specpdf/types"
)

// Header is the first line of every file.
const Header = "%PDF-1.4\n"

// cursor tracks the byte offset of everything written to a buffer.
type cursor struct {
	buf bytes.Buffer
}

func (c *cursor) offset() int {
	return c.buf.Len()
}

func (c *cursor) printf(format string, args ...interface{}) {
	fmt.Fprintf(&c.buf, format, args...)
}

func (c *cursor) write(p []byte) {
	c.buf.Write(p)
}

// Serialize writes doc as a complete PDF file.
//
// Objects must be numbered 1..n in slice order, every reference must name
// one of them, and every stream's Length must match its data. A document
// that breaks these rules is rejected before anything is written.
func Serialize(doc *Document) ([]byte, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}

	c := &cursor{}
	c.printf("%s", Header)

	offsets := make([]int, len(doc.Objects))
	for i, obj := range doc.Objects {
		offsets[i] = c.offset()
		c.printf("%d 0 obj\n", int(obj.Number()))
		c.write(obj.Body())
		c.printf("\nendobj\n")
	}

	xref := c.offset()
	size := len(doc.Objects) + 1
	c.printf("xref\n0 %d\n", size)
	c.printf("%010d %05d f \n", 0, 65535)
	for _, off := range offsets {
		c.printf("%010d %05d n \n", off, 0)
	}

	c.printf("trailer\n<< /Size %d /Root %s >>\n", size, doc.Root)
	c.printf("startxref\n%d\n%%%%EOF", xref)

	return c.buf.Bytes(), nil
}

// Write serializes doc to out
func Write(out io.Writer, doc *Document) error {
	data, err := Serialize(doc)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return types.WrapError(types.ErrCodeWriteError, "failed to write PDF", err)
	}
	return nil
}

func validate(doc *Document) error {
	if doc == nil || len(doc.Objects) == 0 {
		return types.NewPDFError(types.ErrCodeXRefError, "document has no objects")
	}
	n := Ref(len(doc.Objects))
	for i, obj := range doc.Objects {
		if want := Ref(i + 1); obj.Number() != want {
			return types.NewPDFErrorf(types.ErrCodeXRefError, "object %d is numbered %d", want, int(obj.Number()))
		}
		for _, ref := range obj.References() {
			if ref < 1 || ref > n {
				return types.NewPDFErrorf(types.ErrCodeXRefError, "object %d references unallocated object %d", i+1, int(ref))
			}
		}
		if s, ok := obj.(*Stream); ok && s.Length != len(s.Data) {
			return types.NewPDFErrorf(types.ErrCodeStreamError, "stream %d declares length %d but holds %d bytes", i+1, s.Length, len(s.Data))
		}
	}
	if doc.Root < 1 || doc.Root > n {
		return types.NewPDFErrorf(types.ErrCodeXRefError, "root references unallocated object %d", int(doc.Root))
	}
	return nil
}
