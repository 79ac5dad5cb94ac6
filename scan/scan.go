// Package scan generates the library catalog from the DDC-organized
// directory tree. It walks each category, derives classification from the
// path, reads embedded metadata through pluggable extractors, and emits
// catalog entries with stable IDs.
package scan

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/utrumsit/dlm"
)

// DefaultConcurrency bounds parallel metadata extraction.
const DefaultConcurrency = 8

// minMetadataTitleLen filters out junk embedded titles like "1" or "a4".
const minMetadataTitleLen = 4

// Scanner builds catalog entries from the library tree.
type Scanner struct {
	PDF         dlm.MetadataExtractor
	EPUB        dlm.MetadataExtractor
	Concurrency int
	Logger      *slog.Logger
}

// candidate is a document file discovered during the walk.
type candidate struct {
	category string
	relPath  string
	absPath  string
}

// Scan walks the library rooted at root and returns catalog entries in
// walk order. Entries from the previous catalog keep their IDs when the
// file content is unchanged, so reading progress survives regeneration.
func (s *Scanner) Scan(ctx context.Context, root string, previous []*dlm.CatalogEntry) ([]*dlm.CatalogEntry, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	candidates, err := discover(root)
	if err != nil {
		return nil, err
	}
	logger.Info("scanning library", "root", root, "files", len(candidates))

	entries := make([]*dlm.CatalogEntry, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	g.SetLimit(concurrency)

	for i, c := range candidates {
		g.Go(func() error {
			entry, err := s.buildEntry(gctx, c)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assignIDs(entries, previous)
	return entries, nil
}

// discover collects document files per category in deterministic order.
func discover(root string) ([]candidate, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read library root %s: %w", root, err)
	}

	var candidates []candidate
	for _, d := range dirs {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		if _, ok := categoryInfo[d.Name()]; !ok {
			continue
		}

		categoryDir := filepath.Join(root, d.Name())
		err := filepath.WalkDir(categoryDir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				return nil
			}
			if !documentExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			candidates = append(candidates, candidate{
				category: d.Name(),
				relPath:  filepath.ToSlash(rel),
				absPath:  path,
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", categoryDir, err)
		}
	}
	return candidates, nil
}

// buildEntry derives a catalog entry from the file's path, classification
// tables, and embedded metadata.
func (s *Scanner) buildEntry(ctx context.Context, c candidate) (*dlm.CatalogEntry, error) {
	info := categoryInfo[c.category]
	filename := filepath.Base(c.relPath)
	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	md := s.extractMetadata(ctx, fileType, c.absPath)

	title := CleanTitle(filename)
	if md != nil && len(md.Title) >= minMetadataTitleLen {
		title = md.Title
	}
	author := AuthorFromFilename(filename)
	if md != nil && md.Author != "" {
		author = md.Author
	}

	hash, err := contentHash(c.absPath)
	if err != nil {
		return nil, err
	}

	return &dlm.CatalogEntry{
		Title:       title,
		Author:      author,
		Subjects:    subjectsFor(info, c.relPath),
		DDC:         ddcFromPath(info, c.relPath),
		Category:    filepath.ToSlash(filepath.Dir(c.relPath)),
		FilePath:    c.relPath,
		FileType:    fileType,
		ContentHash: hash,
	}, nil
}

// extractMetadata runs the extractor for the file type. Extraction
// failures degrade to filename-derived metadata rather than failing the
// scan.
func (s *Scanner) extractMetadata(ctx context.Context, fileType, path string) *dlm.Metadata {
	var extractor dlm.MetadataExtractor
	switch fileType {
	case "pdf":
		extractor = s.PDF
	case "epub":
		extractor = s.EPUB
	}
	if extractor == nil {
		return nil
	}

	md, err := extractor.Extract(ctx, path)
	if err != nil {
		if s.Logger != nil && dlm.ErrorCode(err) != dlm.ENOTFOUND {
			s.Logger.Warn("metadata extraction failed", "path", path, "error", err)
		}
		return nil
	}
	return md
}

// assignIDs gives every entry a classification-prefixed sequence number,
// preserving the previous catalog's ID for entries whose content hash is
// unchanged.
func assignIDs(entries []*dlm.CatalogEntry, previous []*dlm.CatalogEntry) {
	prevByHash := make(map[string]string, len(previous))
	used := make(map[string]bool, len(entries))
	for _, p := range previous {
		if p.ContentHash != "" {
			prevByHash[p.ContentHash] = p.ID
		}
	}

	for _, e := range entries {
		if id, ok := prevByHash[e.ContentHash]; ok && !used[id] {
			e.ID = id
			used[id] = true
		}
	}

	counter := 1
	for _, e := range entries {
		if e.ID != "" {
			continue
		}
		prefix := categoryShort(strings.SplitN(e.FilePath, "/", 2)[0])
		for {
			id := fmt.Sprintf("%s%03d", prefix, counter)
			counter++
			if !used[id] {
				e.ID = id
				used[id] = true
				break
			}
		}
	}
}

// contentHash returns a stable hex digest of the file's bytes.
func contentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
