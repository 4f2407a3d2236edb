package compare

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benedoc-inc/specpdf"
	"github.com/benedoc-inc/specpdf/types"
)

func render(t *testing.T, spec string) []byte {
	t.Helper()
	data, err := specpdf.Generate(specpdf.Request{Title: "Portal", Specification: spec})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return data
}

func TestCompare_Identical(t *testing.T) {
	a := render(t, "# Escopo\ntexto")
	res, err := Compare(a, a, DefaultOptions())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !res.Identical {
		t.Errorf("same file should be identical, got %+v", res.Summary)
	}
	if len(res.Changes()) != 0 {
		t.Errorf("got %d changes, want 0", len(res.Changes()))
	}
	if !strings.Contains(GenerateReport(res), "IDENTICAL") {
		t.Error("report should say IDENTICAL")
	}
}

func TestCompare_Changes(t *testing.T) {
	a := render(t, "# Escopo\n- item um\n- item dois\n- item tres")
	b := render(t, "# Escopo\n- item um\n- item tres\n- item quatro")

	res, err := Compare(a, b, DefaultOptions())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if res.Identical {
		t.Fatal("documents differ")
	}

	var got []string
	for _, e := range res.Changes() {
		l := e.New
		if e.Op == Removed {
			l = e.Old
		}
		got = append(got, e.Op.String()+l.Text)
	}
	want := []string{"-- item dois", "+- item quatro"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
	if res.Summary.Equal != 4 || res.Summary.Added != 1 || res.Summary.Removed != 1 {
		t.Errorf("Summary = %+v", res.Summary)
	}

	report := GenerateReport(res)
	for _, want := range []string{"Pages: 1 -> 1", "- p1 - item dois", "+ p1 - item quatro"} {
		if !strings.Contains(report, want) {
			t.Errorf("report lacks %q:\n%s", want, report)
		}
	}
	if _, err := GenerateJSONReport(res); err != nil {
		t.Errorf("GenerateJSONReport() error = %v", err)
	}
}

func TestCompare_Options(t *testing.T) {
	a := render(t, "Texto   de exemplo")
	b := render(t, "texto de exemplo")

	res, err := Compare(a, b, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if res.Identical {
		t.Error("case change should be reported by default")
	}

	res, err = Compare(a, b, Options{IgnoreCase: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Identical {
		t.Errorf("IgnoreCase should hide the change: %v", res.Changes())
	}
}

func TestDiffLines_Style(t *testing.T) {
	old := []Line{{Text: "Escopo", Font: "/F2", Size: 14}}
	cur := []Line{{Text: "Escopo", Font: "/F1", Size: 11}}

	if got := diffLines(old, cur, Options{}); len(got) != 2 {
		t.Errorf("style change should give remove+add, got %d entries", len(got))
	}
	if got := diffLines(old, cur, Options{IgnoreStyle: true}); len(got) != 1 || got[0].Op != Equal {
		t.Errorf("IgnoreStyle should match, got %v", got)
	}
}

func TestDiffLines_Empty(t *testing.T) {
	if got := diffLines(nil, nil, Options{}); len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
	got := diffLines(nil, []Line{{Text: "a"}, {Text: "b"}}, Options{})
	if len(got) != 2 || got[0].Op != Added || got[1].Op != Added {
		t.Errorf("all lines should be added, got %v", got)
	}
}

func TestDiffLines_MovedAndRepeated(t *testing.T) {
	mk := func(texts ...string) []Line {
		out := make([]Line, len(texts))
		for i, s := range texts {
			out[i] = Line{Page: 1, Text: s, Font: "/F1", Size: 11}
		}
		return out
	}
	old := mk("a", "b", "c", "a", "d")
	cur := mk("a", "c", "a", "b", "d", "d")

	var gotOld, gotCur []string
	var sum Summary
	for _, e := range diffLines(old, cur, Options{}) {
		if e.Old != nil {
			gotOld = append(gotOld, e.Old.Text)
		}
		if e.New != nil {
			gotCur = append(gotCur, e.New.Text)
		}
		switch e.Op {
		case Equal:
			sum.Equal++
		case Added:
			sum.Added++
		case Removed:
			sum.Removed++
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "a", "d"}, gotOld); diff != "" {
		t.Errorf("old side mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "c", "a", "b", "d", "d"}, gotCur); diff != "" {
		t.Errorf("new side mismatch (-want +got):\n%s", diff)
	}
	if want := (Summary{Equal: 4, Added: 2, Removed: 1}); sum != want {
		t.Errorf("summary = %+v, want %+v", sum, want)
	}
}

func TestCompare_Malformed(t *testing.T) {
	a := render(t, "texto")
	if _, err := Compare(a, []byte("junk"), DefaultOptions()); !errors.Is(err, types.ErrMalformedPDF) {
		t.Errorf("Compare() error = %v, want MALFORMED_PDF", err)
	}
}
