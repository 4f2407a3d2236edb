package compare

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GenerateReport renders a unified-style listing of the changes.
func GenerateReport(r *Result) string {
	var b strings.Builder

	b.WriteString("Specification Comparison Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")

	if r.Identical {
		b.WriteString("Documents are IDENTICAL\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Pages: %d -> %d\n", r.Summary.OldPages, r.Summary.NewPages)
	fmt.Fprintf(&b, "Lines: %d unchanged, %d added, %d removed\n\n",
		r.Summary.Equal, r.Summary.Added, r.Summary.Removed)

	for _, e := range r.Changes() {
		l := e.New
		if e.Op == Removed {
			l = e.Old
		}
		fmt.Fprintf(&b, "%s p%d %s\n", e.Op, l.Page, l.Text)
	}
	return b.String()
}

// GenerateJSONReport renders the result as indented JSON.
func GenerateJSONReport(r *Result) (string, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal comparison result: %w", err)
	}
	return string(out), nil
}
