package dlm

import "context"

// Metadata is title and author information scraped from a document
// container.
type Metadata struct {
	Title  string
	Author string
}

// MetadataExtractor scrapes embedded metadata from a document file.
// Implementations return ENOTFOUND when the container carries no usable
// metadata; callers fall back to filename-derived titles.
type MetadataExtractor interface {
	Extract(ctx context.Context, path string) (*Metadata, error)
}
