package dlm

import "context"

// CatalogEntry describes one document in the library. Entries are immutable
// for the lifetime of a process invocation: the catalog is loaded once and
// treated as read-only thereafter.
type CatalogEntry struct {
	// ID is a classification-prefixed sequence number, e.g. "780042".
	// Unique within a catalog generation.
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`

	// Subjects preserves insertion order with duplicates removed. Order
	// affects display truncation but never scoring.
	Subjects []string `json:"subjects"`

	// DDC is the Dewey-Decimal-like classification code, e.g. "780" or
	// "006.3". Prefix-comparable as a string, not numerically. Empty for
	// unclassified shelves.
	DDC string `json:"ddc,omitempty"`

	// Category is the logical shelf path relative to the library root.
	Category string `json:"category"`

	// FilePath is relative to the library root and unique across the
	// catalog. It must resolve to an existing file at open time.
	FilePath string `json:"file_path"`

	// FileType is a lowercase extension without the leading dot.
	FileType string `json:"file_type"`

	// ContentHash fingerprints the file content so regeneration can keep
	// IDs stable for unchanged files.
	ContentHash string `json:"content_hash,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CatalogEntry) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "entry ID required")
	}
	if e.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	if e.FilePath == "" {
		return Errorf(EINVALID, "entry file path required")
	}
	return nil
}

// CatalogService loads and persists the catalog. LoadCatalog is called once
// per invocation; the returned slice is owned by the caller and never
// mutated by the core.
type CatalogService interface {
	// LoadCatalog reads the whole catalog. Returns EUNAVAILABLE with
	// remediation instructions when no catalog exists.
	LoadCatalog(ctx context.Context) ([]*CatalogEntry, error)

	// SaveCatalog replaces the persisted catalog wholesale.
	SaveCatalog(ctx context.Context, entries []*CatalogEntry) error
}
