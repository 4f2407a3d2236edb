package compare

import (
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffLines builds an edit script from old to cur. Each line is reduced to
// its match key and the keys are diffed line-wise with diffmatchpatch.
// Within a changed block removals come before additions.
func diffLines(old, cur []Line, opts Options) []Entry {
	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(opts.document(old), opts.document(cur))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	entries := make([]Entry, 0, len(old)+len(cur))
	var added []Entry
	flush := func() {
		entries = append(entries, added...)
		added = added[:0]
	}
	i, j := 0, 0
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for k := 0; k < n; k++ {
				entries = append(entries, Entry{Op: Equal, Old: &old[i], New: &cur[j]})
				i++
				j++
			}
		case diffmatchpatch.DiffDelete:
			for k := 0; k < n; k++ {
				entries = append(entries, Entry{Op: Removed, Old: &old[i]})
				i++
			}
		case diffmatchpatch.DiffInsert:
			for k := 0; k < n; k++ {
				added = append(added, Entry{Op: Added, New: &cur[j]})
				j++
			}
		}
	}
	flush()
	return entries
}

// document joins the match keys of ls, one per line.
func (o Options) document(ls []Line) string {
	var sb strings.Builder
	for _, l := range ls {
		sb.WriteString(o.match(l))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// match is the key two lines must share to be Equal. Sizes compare at one
// decimal.
func (o Options) match(l Line) string {
	k := strings.ReplaceAll(o.key(l), "\n", " ")
	if o.IgnoreStyle {
		return k
	}
	return k + "\x00" + l.Font + "\x00" + strconv.FormatFloat(l.Size, 'f', 1, 64)
}
