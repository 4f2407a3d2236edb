// Package specpdf renders loosely structured specification text into a
// small, deterministic PDF 1.4 document.
//
// The pipeline is a pure function of its input:
//
//	raw text -> text.Normalize -> text.Parser -> layout.Engine
//	         -> writer.Builder -> writer.Serialize -> bytes
//
// # Quick Start
//
//	pdf, err := specpdf.GenerateSpecificationPDF(
//	    "Portal do Cliente", "API", "", specText, nil)
//
// For labels, line bounds, logging or tracing, build a Generator:
//
//	g, err := specpdf.New(specpdf.WithMaxCharsPerLine(80))
//	res, err := g.Generate(ctx, specpdf.Request{Title: "...", Specification: specText})
//
// # Packages
//
//   - text: normalization and section parsing
//   - layout: word wrap and pagination
//   - writer: object model and serialization
//   - parser: structural read-back of generated files
//   - font: the two standard fonts and Latin-1 encoding
package specpdf

import (
	"context"
	"time"

	"github.com/benedoc-inc/specpdf/types"
)

// Metadata describes how the specification text was produced.
type Metadata struct {
	Provider    string
	Model       string
	TokensUsed  int
	GeneratedAt time.Time
}

// Request is the input of one generation.
type Request struct {
	Title         string
	ProjectType   string // rendered as a subtitle when set
	Summary       string // rendered as a leading summary section when set
	Specification string
	Metadata      *Metadata
}

// Result is a generated document and what went into it.
type Result struct {
	PDF      []byte
	Pages    int
	Objects  int
	Sections int
	Warnings []*types.Warning
}

// Generate renders req with default settings.
func Generate(req Request) ([]byte, error) {
	g, err := New()
	if err != nil {
		return nil, err
	}
	res, err := g.Generate(context.Background(), req)
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}

// GenerateSpecificationPDF renders a specification document. projectType,
// summary and metadata are optional: pass "" or nil to leave them out.
func GenerateSpecificationPDF(title, projectType, summary, specification string, metadata *Metadata) ([]byte, error) {
	return Generate(Request{
		Title:         title,
		ProjectType:   projectType,
		Summary:       summary,
		Specification: specification,
		Metadata:      metadata,
	})
}

// Version returns the library version.
func Version() string {
	return "1.0.0"
}
