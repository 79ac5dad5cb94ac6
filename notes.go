package dlm

import (
	"context"
	"fmt"
	"strings"
)

// Note is a markdown note destined for the external notebook service.
type Note struct {
	Title string
	Body  string
	Tags  []string
}

// NotebookService exports notes to an external notebook application.
// Failures here degrade the session, never abort it.
type NotebookService interface {
	// CreateOrUpdateNote creates the note or merges it into an existing
	// note with the same title.
	CreateOrUpdateNote(ctx context.Context, note *Note) error
}

// Annotation is a single highlight or note captured in a reader app.
type Annotation struct {
	Highlight string
	Comment   string
	Page      int
}

// BookInfo is bibliographical information a reader app holds about a book.
type BookInfo struct {
	Title       string
	Author      string
	Description string
	Genre       string
	Language    string
	PageCount   int
}

// BookNotes bundles a book's reader-side annotations with its
// bibliographical record. Readers that export notes as one text block
// fill Text instead of Annotations.
type BookNotes struct {
	Info        BookInfo
	Annotations []Annotation
	Text        string
}

// AnnotationSource extracts annotations from an external reader.
// Implementations return ENOTFOUND when the reader has no record of the
// book.
type AnnotationSource interface {
	Notes(ctx context.Context, entry *CatalogEntry) (*BookNotes, error)
}

// FormatNotes renders the exported note body: a heading, bibliographical
// lines from the catalog entry and the reader, then the annotations as
// blockquoted highlights with attached comments.
func FormatNotes(entry *CatalogEntry, notes *BookNotes) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Notes for %s\n\n", entry.Title)

	if entry.Author != "" {
		fmt.Fprintf(&b, "**Author:** %s\n", entry.Author)
	}
	if entry.DDC != "" {
		fmt.Fprintf(&b, "**DDC:** %s\n", entry.DDC)
	}
	if len(entry.Subjects) > 0 {
		fmt.Fprintf(&b, "**Subjects:** %s\n", strings.Join(entry.Subjects, ", "))
	}
	if notes.Info.Genre != "" {
		fmt.Fprintf(&b, "**Genre:** %s\n", notes.Info.Genre)
	}
	if notes.Info.Language != "" {
		fmt.Fprintf(&b, "**Language:** %s\n", notes.Info.Language)
	}
	if notes.Info.PageCount > 0 {
		fmt.Fprintf(&b, "**Page Count:** %d\n", notes.Info.PageCount)
	}
	if notes.Info.Description != "" {
		fmt.Fprintf(&b, "\n---\n\n> %s\n\n---\n", notes.Info.Description)
	}

	if notes.Text != "" {
		fmt.Fprintf(&b, "\n---\n\n%s\n", notes.Text)
	}

	for _, ann := range notes.Annotations {
		if ann.Highlight != "" {
			fmt.Fprintf(&b, "\n> %s\n", ann.Highlight)
		}
		if ann.Comment != "" {
			fmt.Fprintf(&b, "\n**Note:** %s\n", ann.Comment)
		}
	}
	return b.String()
}

// AuthorTags derives notebook tags from an author name. A multi-word name
// becomes a single "lastname-firstname" tag; a single word is used as-is.
func AuthorTags(author string) []string {
	if author == "" {
		return nil
	}
	names := strings.Fields(author)
	if len(names) == 1 {
		return []string{strings.ToLower(names[0])}
	}
	last := names[len(names)-1]
	first := strings.Join(names[:len(names)-1], "-")
	return []string{strings.ToLower(last) + "-" + strings.ToLower(first)}
}
