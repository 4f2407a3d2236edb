package layout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/benedoc-inc/specpdf/text"
	"github.com/benedoc-inc/specpdf/types"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want []string
	}{
		{"empty", "", 10, nil},
		{"fits", "um dois", 10, []string{"um dois"}},
		{"exact", "um dois tres", 12, []string{"um dois tres"}},
		{"greedy", "um dois tres quatro", 8, []string{"um dois", "tres", "quatro"}},
		{"long word alone", "a supercalifragilistic b", 6, []string{"a", "supercalifragilistic", "b"}},
		{"extra spaces", "  a   b  ", 10, []string{"a b"}},
		{"marker glued", "- abcdefgh ij", 6, []string{"- abcdefgh", "ij"}},
		{"numbered marker glued", "10. um dois", 6, []string{"10. um", "dois"}},
		{"accents count once", "ação ação", 9, []string{"ação ação"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in, tt.max)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q, %d) mismatch (-want +got):\n%s", tt.in, tt.max, diff)
			}
		})
	}
}

func TestStyleBound(t *testing.T) {
	if got := BodyStyle.Bound(92); got != 92 {
		t.Errorf("BodyStyle.Bound(92) = %d, want 92", got)
	}
	if got := HeadingStyle.Bound(92); got != 72 {
		t.Errorf("HeadingStyle.Bound(92) = %d, want 72", got)
	}
	if got := TitleStyle.Bound(92); got != 50 {
		t.Errorf("TitleStyle.Bound(92) = %d, want 50", got)
	}
	if got := TitleStyle.Bound(1); got != 1 {
		t.Errorf("TitleStyle.Bound(1) = %d, want 1", got)
	}
}

func TestUpperLatin1(t *testing.T) {
	if got := upperLatin1("título ação ÿ µ"); got != "TÍTULO AÇÃO ÿ µ" {
		t.Errorf("upperLatin1() = %q", got)
	}
}

func TestLayout_HeaderBlock(t *testing.T) {
	e := New(Config{})
	pages := e.Layout(Content{
		Title:    "Meu Projeto",
		Subtitle: "Tipo de Projeto: API",
		Metadata: []string{"Provedor: x", "Modelo: y"},
		Sections: []text.Section{{Title: "Escopo", Paragraphs: []string{"texto"}}},
	}, nil)

	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	lines := pages[0].Lines
	want := []PlacedLine{
		{LayoutLine{"MEU PROJETO", 20, true, 0, 26}, 50, 791.89},
		{LayoutLine{"Tipo de Projeto: API", 11, false, 0, 16}, 50, 791.89 - 26 - 4},
		{LayoutLine{"Provedor: x", 11, false, 0, 16}, 50, 791.89 - 26 - 4 - 16 - 4},
		{LayoutLine{"Modelo: y", 11, false, 0, 16}, 50, 791.89 - 26 - 4 - 16 - 4 - 16},
		{LayoutLine{"Escopo", 14, true, 0, 20}, 50, 791.89 - 26 - 4 - 16 - 4 - 32 - 4},
		{LayoutLine{"texto", 11, false, 0, 16}, 50, 791.89 - 26 - 4 - 16 - 4 - 32 - 4 - 20 - 4},
	}
	approx := cmp.Comparer(func(a, b float64) bool {
		d := a - b
		return d < 1e-9 && d > -1e-9
	})
	if diff := cmp.Diff(want, lines, approx); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_SummaryFirst(t *testing.T) {
	e := New(Config{SummaryTitle: "Summary"})
	pages := e.Layout(Content{
		Summary:  []string{"resumo"},
		Sections: []text.Section{{Title: "A", Paragraphs: []string{"corpo"}}},
	}, nil)
	var got []string
	for _, l := range pages[0].Lines {
		got = append(got, l.Text)
	}
	want := []string{"Summary", "resumo", "A", "corpo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_Empty(t *testing.T) {
	if pages := New(Config{}).Layout(Content{}, nil); len(pages) != 0 {
		t.Errorf("got %d pages for empty content, want 0", len(pages))
	}
}

func TestLayout_Pagination(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("palavra ", 500))
	pages := New(Config{}).Layout(Content{
		Sections: []text.Section{{Title: "Detalhamento", Paragraphs: []string{para}}},
	}, nil)

	if len(pages) < 2 {
		t.Fatalf("got %d pages, want at least 2", len(pages))
	}
	words := 0
	for i, p := range pages {
		if p.Number != i+1 {
			t.Errorf("page %d has Number %d", i, p.Number)
		}
		if p.Lines[0].Y != PageSizeA4.Height-Margin {
			t.Errorf("page %d starts at y=%.2f, want %.2f", i+1, p.Lines[0].Y, PageSizeA4.Height-Margin)
		}
		for _, l := range p.Lines {
			if l.Y < Margin {
				t.Errorf("line %q placed below bottom margin at y=%.2f", l.Text, l.Y)
			}
			if n := utf8.RuneCountInString(l.Text); n > DefaultMaxChars {
				t.Errorf("line of %d characters exceeds bound", n)
			}
			if !l.Bold {
				words += len(strings.Fields(l.Text))
			}
		}
	}
	if words != 500 {
		t.Errorf("laid out %d words, want 500", words)
	}
}

func TestLayout_HangingIndent(t *testing.T) {
	item := "- " + strings.TrimSpace(strings.Repeat("item ", 40))
	pages := New(Config{}).Layout(Content{
		Sections: []text.Section{{Paragraphs: []string{item, "- curto"}}},
	}, nil)

	lines := pages[0].Lines
	if len(lines) < 3 {
		t.Fatalf("got %d lines, want the long item wrapped", len(lines))
	}
	if !strings.HasPrefix(lines[0].Text, "- ") || lines[0].Indent != 0 || lines[0].X != Margin {
		t.Errorf("first line = %+v, want marker at margin", lines[0])
	}
	for _, l := range lines[1 : len(lines)-1] {
		if strings.HasPrefix(l.Text, "- ") || l.Indent != HangingIndent || l.X != Margin+HangingIndent {
			t.Errorf("continuation line = %+v, want hanging indent without marker", l)
		}
	}
	last := lines[len(lines)-1]
	if last.Text != "- curto" || last.Indent != 0 {
		t.Errorf("second item = %+v", last)
	}
}

func TestLayout_LongWordWarning(t *testing.T) {
	wc := types.NewWarningCollector()
	word := strings.Repeat("x", 120)
	pages := New(Config{}).Layout(Content{
		Sections: []text.Section{{Title: "T", Paragraphs: []string{"a " + word + " b"}}},
	}, wc)

	var got []string
	for _, l := range pages[0].Lines {
		got = append(got, l.Text)
	}
	want := []string{"T", "a", word, "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if n := len(wc.GetByCode(types.WarnLongWord)); n != 1 {
		t.Errorf("got %d LONG_WORD warnings, want 1", n)
	}
}

func TestLayout_CustomBound(t *testing.T) {
	e := New(Config{MaxChars: 20})
	if e.MaxChars() != 20 {
		t.Fatalf("MaxChars() = %d", e.MaxChars())
	}
	pages := e.Layout(Content{
		Sections: []text.Section{{Paragraphs: []string{strings.Repeat("abc ", 30)}}},
	}, nil)
	for _, l := range pages[0].Lines {
		if utf8.RuneCountInString(l.Text) > 20 {
			t.Errorf("line %q exceeds 20 characters", l.Text)
		}
	}
}
