package dlm

import "context"

// FileClass is the closed set of document classes the opener dispatches
// on. Dispatch goes through a per-class capability table rather than
// branching on raw extensions.
type FileClass int

// FileClass values.
const (
	ClassOther FileClass = iota
	ClassPDF
	ClassEbook
)

// String returns the class name for logging.
func (c FileClass) String() string {
	switch c {
	case ClassPDF:
		return "pdf"
	case ClassEbook:
		return "ebook"
	default:
		return "other"
	}
}

// Classify maps a catalog file type (lowercase extension without dot) to
// its FileClass. The EPUB family covers the common reflowable formats.
func Classify(fileType string) FileClass {
	switch fileType {
	case "pdf":
		return ClassPDF
	case "epub", "mobi", "azw3", "azw":
		return ClassEbook
	default:
		return ClassOther
	}
}

// Opener launches an entry's file in an external reader. Implementations
// resolve the file path against the library root and report ENOTFOUND when
// the file no longer exists; progress updates are contingent on a
// successful open.
type Opener interface {
	Open(ctx context.Context, entry *CatalogEntry) error
}
