// Package compare reports text differences between two generated PDFs.
//
// Both files are read back with parser.Inspect and their shown strings are
// aligned with a line-wise diff (github.com/sergi/go-diff), so a revised
// specification can be checked line by line against the previous one.
package compare

import (
	"strings"

	"github.com/benedoc-inc/specpdf/parser"
)

// Op is the kind of one diff entry.
type Op int

const (
	Equal Op = iota
	Added
	Removed
)

func (o Op) String() string {
	switch o {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return " "
	}
}

// Options tunes line matching.
type Options struct {
	IgnoreCase       bool // case-insensitive comparison
	IgnoreWhitespace bool // collapse runs of spaces before comparing
	IgnoreStyle      bool // match lines even when font or size differ
}

// DefaultOptions compares text and style exactly.
func DefaultOptions() Options {
	return Options{}
}

// Line is one shown string with the page it appears on.
type Line struct {
	Page int
	Text string
	Font string
	Size float64
}

// Entry is one step of the edit script. Old is set for Equal and Removed,
// New for Equal and Added.
type Entry struct {
	Op  Op
	Old *Line
	New *Line
}

// Summary counts the entries by kind.
type Summary struct {
	Equal    int
	Added    int
	Removed  int
	OldPages int
	NewPages int
}

// Result is the outcome of a comparison.
type Result struct {
	Identical bool
	Summary   Summary
	Entries   []Entry
}

// Compare inspects both files and diffs their text.
func Compare(oldPDF, newPDF []byte, opts Options) (*Result, error) {
	a, err := parser.Inspect(oldPDF)
	if err != nil {
		return nil, err
	}
	b, err := parser.Inspect(newPDF)
	if err != nil {
		return nil, err
	}
	return CompareReports(a, b, opts), nil
}

// CompareReports diffs two already inspected files.
func CompareReports(a, b *parser.Report, opts Options) *Result {
	old, cur := lines(a), lines(b)
	entries := diffLines(old, cur, opts)

	res := &Result{Entries: entries}
	res.Summary.OldPages = len(a.Pages)
	res.Summary.NewPages = len(b.Pages)
	for _, e := range entries {
		switch e.Op {
		case Equal:
			res.Summary.Equal++
		case Added:
			res.Summary.Added++
		case Removed:
			res.Summary.Removed++
		}
	}
	res.Identical = res.Summary.Added == 0 && res.Summary.Removed == 0
	return res
}

// Changes returns the entries that are not Equal.
func (r *Result) Changes() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Op != Equal {
			out = append(out, e)
		}
	}
	return out
}

func lines(r *parser.Report) []Line {
	var out []Line
	for i, p := range r.Pages {
		for _, l := range p.Lines {
			out = append(out, Line{Page: i + 1, Text: l.Text, Font: l.Font, Size: l.Size})
		}
	}
	return out
}

func (o Options) key(l Line) string {
	s := l.Text
	if o.IgnoreWhitespace {
		s = strings.Join(strings.Fields(s), " ")
	}
	if o.IgnoreCase {
		s = strings.ToLower(s)
	}
	return s
}
