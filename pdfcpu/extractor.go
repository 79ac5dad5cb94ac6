// Package pdfcpu provides a dlm.MetadataExtractor for PDF files backed by
// the pdfcpu library. Metadata comes from the document information
// dictionary.
package pdfcpu

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/utrumsit/dlm"
)

// Ensure Extractor implements dlm.MetadataExtractor at compile time.
var _ dlm.MetadataExtractor = (*Extractor)(nil)

// Extractor reads title and author from a PDF's info dictionary.
type Extractor struct {
	conf *model.Configuration
}

// NewExtractor creates an Extractor. Validation is relaxed because
// library files come from many producers and strict validation rejects
// too many otherwise readable documents.
func NewExtractor() *Extractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Extractor{conf: conf}
}

// Extract returns the PDF's embedded title and author. Returns ENOTFOUND
// when the info dictionary carries neither, so callers fall back to
// filename-derived metadata.
func (e *Extractor) Extract(ctx context.Context, path string) (*dlm.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := api.PDFInfo(f, path, nil, e.conf)
	if err != nil {
		return nil, dlm.Errorf(dlm.EINVALID, "failed to read PDF metadata from %s: %v", path, err)
	}

	md := &dlm.Metadata{
		Title:  strings.TrimSpace(info.Title),
		Author: strings.TrimSpace(info.Author),
	}
	if md.Title == "" && md.Author == "" {
		return nil, dlm.Errorf(dlm.ENOTFOUND, "no metadata embedded in %s", path)
	}
	return md, nil
}
