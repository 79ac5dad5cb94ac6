// Package epub provides a dlm.MetadataExtractor for EPUB files. An EPUB
// is a zip archive whose OPF package document carries Dublin Core
// metadata.
package epub

import (
	"archive/zip"
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/utrumsit/dlm"
)

// Ensure Extractor implements dlm.MetadataExtractor at compile time.
var _ dlm.MetadataExtractor = (*Extractor)(nil)

// Extractor reads dc:title and dc:creator from an EPUB's package
// document.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the EPUB's embedded title and author. Returns ENOTFOUND
// when the package document carries neither, so callers fall back to
// filename-derived metadata.
func (e *Extractor) Extract(ctx context.Context, path string) (*dlm.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, dlm.Errorf(dlm.EINVALID, "failed to open EPUB %s: %v", path, err)
	}
	defer r.Close()

	opf := findPackageDocument(&r.Reader)
	if opf == nil {
		return nil, dlm.Errorf(dlm.EINVALID, "no package document in EPUB %s", path)
	}

	doc, err := readXML(opf)
	if err != nil {
		return nil, dlm.Errorf(dlm.EINVALID, "failed to parse package document in %s: %v", path, err)
	}

	md := &dlm.Metadata{
		Title:  strings.TrimSpace(elementText(doc, "title")),
		Author: strings.TrimSpace(elementText(doc, "creator")),
	}
	if md.Title == "" && md.Author == "" {
		return nil, dlm.Errorf(dlm.ENOTFOUND, "no metadata embedded in %s", path)
	}
	return md, nil
}

// findPackageDocument locates the OPF file, preferring the rootfile named
// in META-INF/container.xml and falling back to a scan for any .opf entry.
func findPackageDocument(r *zip.Reader) *zip.File {
	byName := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		byName[f.Name] = f
	}

	if container, ok := byName["META-INF/container.xml"]; ok {
		if doc, err := readXML(container); err == nil {
			if rootfile := doc.FindElement("//rootfile"); rootfile != nil {
				if f, ok := byName[rootfile.SelectAttrValue("full-path", "")]; ok {
					return f
				}
			}
		}
	}

	for _, f := range r.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".opf") {
			return f
		}
	}
	return nil
}

func readXML(f *zip.File) (*etree.Document, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	return doc, nil
}

// elementText returns the text of the first dc:* element with the given
// local name, regardless of namespace prefix.
func elementText(doc *etree.Document, local string) string {
	if el := doc.FindElement("//" + local); el != nil {
		return el.Text()
	}
	return ""
}
