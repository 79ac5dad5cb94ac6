package main

import (
	"fmt"
	"strings"

	"github.com/utrumsit/dlm"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	q := dlm.SearchQuery{
		Query:    strings.Join(c.Query, " "),
		Field:    c.field(),
		FileType: c.Type,
		DDC:      c.DDC,
		Fuzzy:    !c.Exact,
	}

	if q.Query == "" && q.Field == dlm.FieldAll && q.FileType == "" && q.DDC == "" && c.SetPage < 0 {
		return c.interactiveLoop(deps, catalog)
	}

	results := dlm.Search(catalog, q)
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
		return nil
	}

	progress, err := deps.Progress.Snapshot(deps.Ctx)
	if err != nil {
		progress = map[string]*dlm.ProgressRecord{}
	}
	fmt.Fprint(deps.Stdout, dlm.FormatResults(results, progress))

	entries := make([]*dlm.CatalogEntry, len(results))
	for i, r := range results {
		entries[i] = r.Entry
	}
	selected, err := pickEntry(deps, entries, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}
	if selected == nil {
		return nil
	}

	readAndExport(deps, selected, c.page())
	return nil
}

// interactiveLoop runs library mode: pick from the whole catalog, read,
// return to the library, until the picker is cancelled.
func (c *SearchCmd) interactiveLoop(deps *Dependencies, catalog []*dlm.CatalogEntry) error {
	for {
		selected, err := pickEntry(deps, catalog, "")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
			return err
		}
		if selected == nil {
			fmt.Fprintln(deps.Stdout, "Goodbye!")
			return nil
		}

		readAndExport(deps, selected, nil)
		fmt.Fprintln(deps.Stdout, "\nReturning to library...")
	}
}

// field maps the selector flags to a search field.
func (c *SearchCmd) field() dlm.Field {
	switch {
	case c.Title:
		return dlm.FieldTitle
	case c.Author:
		return dlm.FieldAuthor
	case c.Subject:
		return dlm.FieldSubject
	case c.Category:
		return dlm.FieldCategory
	default:
		return dlm.FieldAll
	}
}

// page returns the page to save on open, or nil when --set-page was not
// given.
func (c *SearchCmd) page() *int {
	if c.SetPage < 0 {
		return nil
	}
	return &c.SetPage
}
