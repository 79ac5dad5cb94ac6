// Package fs provides file-based storage for the catalog and the
// reading-progress overlay. Writes are atomic: content goes to a temporary
// file first and is renamed into place.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/utrumsit/dlm"
)

// Ensure CatalogService implements dlm.CatalogService at compile time.
var _ dlm.CatalogService = (*CatalogService)(nil)

// catalogFile is the on-disk envelope around the entry list.
type catalogFile struct {
	Catalog []*dlm.CatalogEntry `json:"catalog"`
}

// CatalogService reads and writes the catalog file. The catalog is loaded
// wholesale at startup and treated as immutable for the rest of the
// invocation.
type CatalogService struct {
	path   string
	logger *slog.Logger
}

// NewCatalogService creates a CatalogService for the given catalog path.
func NewCatalogService(path string, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{path: path, logger: logger}
}

// LoadCatalog reads the whole catalog. Malformed entries are skipped with a
// warning rather than aborting the load; a missing or unparseable file is
// an error with remediation instructions.
func (s *CatalogService) LoadCatalog(ctx context.Context) ([]*dlm.CatalogEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, dlm.Errorf(dlm.EUNAVAILABLE,
			"no catalog found at %s. Run 'dlm scan' to generate one", s.path)
	}
	if err != nil {
		return nil, err
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, dlm.Errorf(dlm.EINVALID,
			"catalog at %s is not valid JSON. Run 'dlm scan' to regenerate it", s.path)
	}

	entries := make([]*dlm.CatalogEntry, 0, len(file.Catalog))
	for _, entry := range file.Catalog {
		// A null array element decodes to a nil pointer.
		if entry == nil {
			s.logger.Warn("skipping malformed catalog entry", "reason", "null entry")
			continue
		}
		if err := entry.Validate(); err != nil {
			s.logger.Warn("skipping malformed catalog entry",
				"id", entry.ID,
				"path", entry.FilePath,
				"reason", dlm.ErrorMessage(err),
			)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// SaveCatalog replaces the persisted catalog wholesale.
func (s *CatalogService) SaveCatalog(ctx context.Context, entries []*dlm.CatalogEntry) error {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(catalogFile{Catalog: entries}, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.path, data)
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial write.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
