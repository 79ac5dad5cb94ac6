package main

import (
	"bufio"
	"fmt"

	"github.com/utrumsit/dlm"
)

// pickEntry runs the incremental picker over the entries and returns the
// selection, or nil when the user cancels.
func pickEntry(deps *Dependencies, entries []*dlm.CatalogEntry, initialQuery string) (*dlm.CatalogEntry, error) {
	items := make([]dlm.Item, len(entries))
	byID := make(map[string]*dlm.CatalogEntry, len(entries))
	for i, e := range entries {
		items[i] = dlm.Item{ID: e.ID, Label: dlm.FormatEntryLabel(e)}
		byID[e.ID] = e
	}

	id, err := deps.Picker.Pick(deps.Ctx, items, initialQuery)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	return byID[id], nil
}

// openEntry opens the entry's file, shows any saved reading position
// first, and records the open. A failed open is reported and skips the
// progress update; it never aborts the session.
func openEntry(deps *Dependencies, entry *dlm.CatalogEntry, page *int) bool {
	if progress, err := deps.Progress.Snapshot(deps.Ctx); err == nil {
		if rec, ok := progress[entry.ID]; ok && rec.Page != nil {
			fmt.Fprintf(deps.Stdout, "Last read at page %d\n", *rec.Page)
		}
	}

	if err := deps.Opener.Open(deps.Ctx, entry); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return false
	}
	fmt.Fprintf(deps.Stdout, "Opening: %s\n", entry.Title)

	if err := deps.Progress.RecordOpen(deps.Ctx, entry.ID, page); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record progress: %s\n", dlm.ErrorMessage(err))
	}
	return true
}

// readAndExport opens the entry and, once the user signals they are done
// reading, exports any reader annotations to the notebook. Export
// failures degrade the session rather than aborting it.
func readAndExport(deps *Dependencies, entry *dlm.CatalogEntry, page *int) {
	if !openEntry(deps, entry, page) {
		return
	}
	if deps.Notebook == nil || annotationSource(deps, entry) == nil {
		return
	}

	fmt.Fprint(deps.Stdout, "Press Enter after you have finished reading and making notes... ")
	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return
	}

	exportNotes(deps, entry)
}

// annotationSource picks the reader that holds the entry's annotations:
// the PDF reader's notes for PDFs, the ebook reader's database for the
// EPUB family. Other classes have no annotation store.
func annotationSource(deps *Dependencies, entry *dlm.CatalogEntry) dlm.AnnotationSource {
	switch dlm.Classify(entry.FileType) {
	case dlm.ClassPDF:
		return deps.PDFAnnotations
	case dlm.ClassEbook:
		return deps.BookAnnotations
	default:
		return nil
	}
}

// exportNotes pulls the entry's annotations from the reader and writes
// them to the notebook.
func exportNotes(deps *Dependencies, entry *dlm.CatalogEntry) {
	notes, err := annotationSource(deps, entry).Notes(deps.Ctx, entry)
	if err != nil {
		if dlm.ErrorCode(err) == dlm.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, "No new notes found to export.")
		} else {
			fmt.Fprintf(deps.Stderr, "warning: failed to read annotations: %s\n", dlm.ErrorMessage(err))
		}
		return
	}

	fmt.Fprintln(deps.Stdout, "Found notes. Exporting...")
	note := &dlm.Note{
		Title: entry.Title,
		Body:  dlm.FormatNotes(entry, notes),
		Tags:  dlm.AuthorTags(entry.Author),
	}
	if err := deps.Notebook.CreateOrUpdateNote(deps.Ctx, note); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: note export failed: %s\n", dlm.ErrorMessage(err))
		return
	}
	fmt.Fprintf(deps.Stdout, "Exported notes for %s.\n", entry.Title)
}
