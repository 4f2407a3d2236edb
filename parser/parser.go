// Package parser reads back PDF files produced by the writer package and
// checks their structure: header, cross-reference offsets, trailer and the
// text shown on every page.
package parser

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/benedoc-inc/specpdf/types"
)

var (
	headerPattern    = regexp.MustCompile(`^%PDF-(\d\.\d)\r?\n`)
	trailerPattern   = regexp.MustCompile(`(?m)^trailer\s*<<`)
	sizePattern      = regexp.MustCompile(`/Size\s+(\d+)`)
	rootPattern      = regexp.MustCompile(`/Root\s+(\d+)\s+0\s+R`)
	startXRefPattern = regexp.MustCompile(`startxref\s+(\d+)\s+%%EOF\s*$`)
	lengthPattern    = regexp.MustCompile(`/Length\s+(\d+)`)
)

// Trailer holds the parsed trailer dictionary and startxref offset
type Trailer struct {
	Size      int
	Root      int
	StartXRef int64
}

func malformed(format string, args ...interface{}) *types.PDFError {
	return types.NewPDFErrorf(types.ErrCodeMalformedPDF, format, args...)
}

// ParseVersion returns the version from the %PDF-x.y header line.
func ParseVersion(pdfBytes []byte) (string, error) {
	m := headerPattern.FindSubmatch(pdfBytes)
	if m == nil {
		return "", malformed("missing %%PDF header")
	}
	return string(m[1]), nil
}

// ParseTrailer parses the single trailer dictionary and the startxref
// offset that follows it. Files with incremental updates (more than one
// trailer) are rejected.
func ParseTrailer(pdfBytes []byte) (*Trailer, error) {
	matches := trailerPattern.FindAllIndex(pdfBytes, -1)
	switch len(matches) {
	case 0:
		return nil, malformed("trailer not found")
	case 1:
	default:
		return nil, malformed("found %d trailers, want 1", len(matches))
	}

	dictStart := matches[0][1]
	dictEnd := bytes.Index(pdfBytes[dictStart:], []byte(">>"))
	if dictEnd == -1 {
		return nil, malformed("trailer end not found")
	}
	dict := pdfBytes[dictStart : dictStart+dictEnd]

	trailer := &Trailer{}
	m := sizePattern.FindSubmatch(dict)
	if m == nil {
		return nil, malformed("trailer has no /Size")
	}
	trailer.Size, _ = strconv.Atoi(string(m[1]))

	m = rootPattern.FindSubmatch(dict)
	if m == nil {
		return nil, malformed("trailer has no /Root")
	}
	trailer.Root, _ = strconv.Atoi(string(m[1]))

	m = startXRefPattern.FindSubmatch(pdfBytes)
	if m == nil {
		return nil, malformed("startxref not found before %%%%EOF")
	}
	trailer.StartXRef, _ = strconv.ParseInt(string(m[1]), 10, 64)

	return trailer, nil
}

// ParseXRefTable parses a single-subsection cross-reference table starting
// at startXRef. The returned slice is indexed by object number; entry 0 is
// the free head and always 0.
func ParseXRefTable(pdfBytes []byte, startXRef int64) ([]int64, error) {
	if startXRef <= 0 || startXRef >= int64(len(pdfBytes)) {
		return nil, malformed("invalid startxref offset: %d", startXRef)
	}
	section := pdfBytes[startXRef:]
	if !bytes.HasPrefix(section, []byte("xref\n")) {
		return nil, malformed("startxref %d does not point at an xref keyword", startXRef)
	}

	// Format: "xref\n0 N\n" then N 20-byte entries "oooooooooo ggggg n \n"
	lines := strings.Split(string(section), "\n")
	if len(lines) < 2 {
		return nil, malformed("truncated xref table")
	}
	header := strings.Fields(lines[1])
	if len(header) != 2 || header[0] != "0" {
		return nil, malformed("unexpected xref subsection header %q", lines[1])
	}
	count, err := strconv.Atoi(header[1])
	if err != nil || count < 1 {
		return nil, malformed("bad xref entry count %q", header[1])
	}
	if len(lines) < 2+count {
		return nil, malformed("xref table declares %d entries but is truncated", count)
	}

	offsets := make([]int64, count)
	for i := 0; i < count; i++ {
		line := lines[2+i]
		if len(line) != 19 {
			return nil, malformed("xref entry %d is %d bytes, want 20", i, len(line)+1)
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, malformed("xref entry %d is malformed: %q", i, line)
		}
		flag := fields[2]
		if i == 0 {
			if flag != "f" || fields[1] != "65535" {
				return nil, malformed("xref entry 0 must be the free head, got %q", line)
			}
			continue
		}
		if flag != "n" {
			return nil, malformed("object %d is not in use", i)
		}
		offsets[i], err = strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, malformed("xref entry %d has bad offset %q", i, fields[0])
		}
	}
	if next := lines[2+count]; next != "trailer" {
		return nil, malformed("xref table has more than %d entries", count)
	}
	return offsets, nil
}

// Object is a located indirect object.
type Object struct {
	Number int
	Offset int64
	Dict   string // the dictionary, "<< ... >>"
	Stream []byte // stream data, nil for non-stream objects
}

// ReadObject reads object num at offset. The object header must start
// exactly at offset. Stream data is sliced using /Length and must be
// followed by "endstream".
func ReadObject(pdfBytes []byte, num int, offset int64) (*Object, error) {
	if offset <= 0 || offset >= int64(len(pdfBytes)) {
		return nil, malformed("object %d offset %d out of range", num, offset)
	}
	rest := pdfBytes[offset:]
	head := fmt.Sprintf("%d 0 obj\n", num)
	if !bytes.HasPrefix(rest, []byte(head)) {
		end := min(len(rest), 16)
		return nil, malformed("offset %d for object %d points at %q", offset, num, rest[:end])
	}
	rest = rest[len(head):]

	obj := &Object{Number: num, Offset: offset}
	end := bytes.Index(rest, []byte("\nendobj\n"))
	if end == -1 {
		return nil, malformed("object %d has no endobj", num)
	}

	streamAt := bytes.Index(rest[:end], []byte(">>\nstream\n"))
	if streamAt == -1 {
		obj.Dict = string(rest[:end])
		return obj, nil
	}

	obj.Dict = string(rest[:streamAt+2])
	m := lengthPattern.FindStringSubmatch(obj.Dict)
	if m == nil {
		return nil, malformed("stream object %d has no /Length", num)
	}
	length, _ := strconv.Atoi(m[1])
	dataStart := streamAt + len(">>\nstream\n")
	if dataStart+length > len(rest) {
		return nil, malformed("stream %d length %d runs past end of file", num, length)
	}
	obj.Stream = rest[dataStart : dataStart+length]
	if !bytes.HasPrefix(rest[dataStart+length:], []byte("endstream\nendobj\n")) {
		return nil, malformed("stream %d /Length %d does not end at endstream", num, length)
	}
	return obj, nil
}
