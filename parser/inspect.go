package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	catalogPattern  = regexp.MustCompile(`/Type\s*/Catalog\b`)
	pagesRefPattern = regexp.MustCompile(`/Pages\s+(\d+)\s+0\s+R`)
	kidsPattern     = regexp.MustCompile(`/Kids\s*\[([^\]]*)\]`)
	countPattern    = regexp.MustCompile(`/Count\s+(\d+)`)
	refPattern      = regexp.MustCompile(`(\d+)\s+0\s+R`)
	pagePattern     = regexp.MustCompile(`/Type\s*/Page\b`)
	contentsPattern = regexp.MustCompile(`/Contents\s+(\d+)\s+0\s+R`)
)

// PageText is the text shown on one page.
type PageText struct {
	Object   int // page object number
	Contents int // content stream object number
	Lines    []TextLine
}

// Report describes a file read back by Inspect.
type Report struct {
	Version   string
	Size      int // trailer /Size, including the free object 0
	Root      int
	StartXRef int64
	Offsets   []int64 // indexed by object number; Offsets[0] is unused
	Pages     []PageText
}

// Text returns the text of every page, one shown string per line.
func (r *Report) Text() string {
	var b strings.Builder
	for _, p := range r.Pages {
		for _, l := range p.Lines {
			b.WriteString(l.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Inspect parses a complete single-revision PDF and checks that:
//   - it starts with a %PDF header and has exactly one trailer;
//   - startxref points at the xref keyword;
//   - the xref entry count equals /Size;
//   - every offset lands on its own "n 0 obj" header;
//   - every stream's /Length ends exactly at endstream;
//   - the catalog's page tree lists page objects whose content streams
//     hold only well-formed text operators.
func Inspect(pdfBytes []byte) (*Report, error) {
	version, err := ParseVersion(pdfBytes)
	if err != nil {
		return nil, err
	}
	trailer, err := ParseTrailer(pdfBytes)
	if err != nil {
		return nil, err
	}
	offsets, err := ParseXRefTable(pdfBytes, trailer.StartXRef)
	if err != nil {
		return nil, err
	}
	if len(offsets) != trailer.Size {
		return nil, malformed("xref has %d entries but trailer /Size is %d", len(offsets), trailer.Size)
	}

	objects := make(map[int]*Object, len(offsets))
	for num := 1; num < len(offsets); num++ {
		obj, err := ReadObject(pdfBytes, num, offsets[num])
		if err != nil {
			return nil, err
		}
		objects[num] = obj
	}

	report := &Report{
		Version:   version,
		Size:      trailer.Size,
		Root:      trailer.Root,
		StartXRef: trailer.StartXRef,
		Offsets:   offsets,
	}

	catalog, ok := objects[trailer.Root]
	if !ok || !catalogPattern.MatchString(catalog.Dict) {
		return nil, malformed("root %d is not a catalog", trailer.Root)
	}
	treeNum, err := refTo(pagesRefPattern, catalog.Dict)
	if err != nil {
		return nil, malformed("catalog: %v", err)
	}
	tree, ok := objects[treeNum]
	if !ok {
		return nil, malformed("page tree %d not found", treeNum)
	}
	kids := kidsPattern.FindStringSubmatch(tree.Dict)
	if kids == nil {
		return nil, malformed("page tree %d has no /Kids", treeNum)
	}
	refs := refPattern.FindAllStringSubmatch(kids[1], -1)
	if m := countPattern.FindStringSubmatch(tree.Dict); m == nil || m[1] != strconv.Itoa(len(refs)) {
		return nil, malformed("page tree /Count does not match %d kids", len(refs))
	}

	for _, ref := range refs {
		num, _ := strconv.Atoi(ref[1])
		page, ok := objects[num]
		if !ok || !pagePattern.MatchString(page.Dict) {
			return nil, malformed("kid %d is not a page", num)
		}
		contentsNum, err := refTo(contentsPattern, page.Dict)
		if err != nil {
			return nil, malformed("page %d: %v", num, err)
		}
		contents, ok := objects[contentsNum]
		if !ok || contents.Stream == nil {
			return nil, malformed("page %d contents %d is not a stream", num, contentsNum)
		}
		lines, err := ExtractText(contents.Stream)
		if err != nil {
			return nil, err
		}
		report.Pages = append(report.Pages, PageText{Object: num, Contents: contentsNum, Lines: lines})
	}
	if len(report.Pages) == 0 {
		return nil, malformed("document has no pages")
	}
	return report, nil
}

func refTo(pattern *regexp.Regexp, dict string) (int, error) {
	m := pattern.FindStringSubmatch(dict)
	if m == nil {
		return 0, malformed("missing reference %s", pattern.String())
	}
	return strconv.Atoi(m[1])
}
