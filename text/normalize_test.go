package text

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want CanonicalLine
	}{
		{"markdown heading", "## Visão Geral", CanonicalLine{Kind: Heading, Text: "Visão Geral"}},
		{"markdown heading trailing colon", "### Requisitos:", CanonicalLine{Kind: Heading, Text: "Requisitos"}},
		{"closing hashes", "# Escopo ##", CanonicalLine{Kind: Heading, Text: "Escopo"}},
		{"bare hashes", "###", CanonicalLine{Kind: Blank}},
		{"all caps heading", "VISAO GERAL", CanonicalLine{Kind: Heading, Text: "VISAO GERAL"}},
		{"title style heading", "Requisitos Funcionais:", CanonicalLine{Kind: Heading, Text: "Requisitos Funcionais"}},
		{"title style short connective", "Plano de Entrega", CanonicalLine{Kind: Heading, Text: "Plano de Entrega"}},
		{"sentence with period", "Texto simples.", CanonicalLine{Kind: Plain, Text: "Texto simples."}},
		{"lowercase sentence", "o sistema deve responder", CanonicalLine{Kind: Plain, Text: "o sistema deve responder"}},
		{"dash bullet", "- item um", CanonicalLine{Kind: Bullet, Text: "item um"}},
		{"star bullet", "*   item dois", CanonicalLine{Kind: Bullet, Text: "item dois"}},
		{"dot bullet", "• item três", CanonicalLine{Kind: Bullet, Text: "item três"}},
		{"numbered", "12. passo final", CanonicalLine{Kind: Numbered, Text: "passo final", Index: 12}},
		{"numbered leading zero", "01. primeiro", CanonicalLine{Kind: Numbered, Text: "primeiro", Index: 1}},
		{"whitespace collapsed", "  muitos \t espaços   aqui  ", CanonicalLine{Kind: Plain, Text: "muitos espaços aqui"}},
		{"bold and code", "use **sempre** o `make build`", CanonicalLine{Kind: Plain, Text: "use sempre o make build"}},
		{"italic", "um *detalhe* e _outro_", CanonicalLine{Kind: Plain, Text: "um detalhe e outro"}},
		{"strike", "isso ~~não~~ vale", CanonicalLine{Kind: Plain, Text: "isso não vale"}},
		{"snake case kept", "campo user_id obrigatório", CanonicalLine{Kind: Plain, Text: "campo user_id obrigatório"}},
		{"link", "veja [docs](https://x.io) agora", CanonicalLine{Kind: Plain, Text: "veja docs (https://x.io) agora"}},
		{"link same text", "[https://x.io](https://x.io) ok", CanonicalLine{Kind: Plain, Text: "https://x.io ok"}},
		{"image", "![diagrama](d.png) abaixo", CanonicalLine{Kind: Plain, Text: "diagrama abaixo"}},
		{"html tags", "linha<br/>quebrada <b>forte</b>", CanonicalLine{Kind: Plain, Text: "linha quebrada forte"}},
		{"html comment", "a <!-- nota --> b", CanonicalLine{Kind: Plain, Text: "a b"}},
		{"bold bullet", "* **API**: expõe rotas", CanonicalLine{Kind: Bullet, Text: "API: expõe rotas"}},
		{"fence", "```go", CanonicalLine{Kind: Blank}},
		{"rule", "---", CanonicalLine{Kind: Blank}},
		{"star rule", "***", CanonicalLine{Kind: Blank}},
		{"control chars", "a\x00b\x07c", CanonicalLine{Kind: Plain, Text: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("classify(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNormalize_Blanks(t *testing.T) {
	in := "\n\n  \nprimeiro\n\n\n\nsegundo\n   \n"
	want := []CanonicalLine{
		{Kind: Plain, Text: "primeiro"},
		{Kind: Blank},
		{Kind: Plain, Text: "segundo"},
	}
	if diff := cmp.Diff(want, Normalize(in)); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_LineEndings(t *testing.T) {
	in := "\uFEFFum\r\ndois\rtres"
	want := []CanonicalLine{
		{Kind: Plain, Text: "um"},
		{Kind: Plain, Text: "dois"},
		{Kind: Plain, Text: "tres"},
	}
	if diff := cmp.Diff(want, Normalize(in)); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_TestingTrailer(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"markdown", "# Escopo\ntexto\n## Testing\nshould not appear\n# Outro\nnem isso"},
		{"caps", "# Escopo\ntexto\n\nTESTES:\nshould not appear"},
		{"portuguese", "# Escopo\ntexto\n### Estratégia de Testes\nshould not appear"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(Normalize(tt.in))
			if strings.Contains(got, "should not appear") || strings.Contains(got, "nem isso") {
				t.Errorf("trailer not dropped: %q", got)
			}
			if got != "# Escopo\ntexto" {
				t.Errorf("Normalize() = %q, want %q", got, "# Escopo\ntexto")
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"# Título\nTexto simples.",
		"VISAO GERAL\n\no sistema *deve* responder em **menos** de 2s.\n\n- item um\n- item dois\n\n3. passo",
		"* **bold** bullet\n1. [link](http://a.b)\n<div>html</div>\n```\ncode\n```\n---\n___",
		"#### Requisitos:::##\n  - aninhado com   espaços\n\n\n\nfim",
		"__a__ _b_ ~~c~~ `d` <<b>i>",
		"- - duplo marcador\n# # duplo heading\n####### sete",
		"A\nab\nAB cd\nAbc de Fgh",
	}
	for _, in := range inputs {
		first := Normalize(in)
		second := Normalize(Format(first))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Normalize not idempotent for %q (-first +second):\n%s", in, diff)
		}
	}
}

func TestNormalize_NestedLinks(t *testing.T) {
	in := "a"
	for i := 0; i < 20; i++ {
		in = "[" + in + "](u)"
	}

	first := Normalize(in)
	want := []CanonicalLine{{Kind: Plain, Text: "a" + strings.Repeat(" (u)", 20)}}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, Normalize(Format(first))); diff != "" {
		t.Errorf("Normalize not idempotent for nested links (-first +second):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	lines := []CanonicalLine{
		{Kind: Heading, Text: "Escopo"},
		{Kind: Plain, Text: "texto"},
		{Kind: Blank},
		{Kind: Bullet, Text: "item"},
		{Kind: Numbered, Text: "passo", Index: 2},
	}
	want := "# Escopo\ntexto\n\n- item\n2. passo"
	if got := Format(lines); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestLineKind_String(t *testing.T) {
	if Numbered.String() != "numbered" || LineKind(99).String() != "unknown" {
		t.Error("unexpected LineKind names")
	}
}
