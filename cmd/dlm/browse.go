package main

import (
	"fmt"
	"strings"

	"github.com/utrumsit/dlm"
)

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	initialQuery := strings.Join(c.Query, " ")
	for {
		progress, err := deps.Progress.Snapshot(deps.Ctx)
		if err != nil {
			progress = map[string]*dlm.ProgressRecord{}
		}

		entries := dlm.FilterCatalog(catalog, progress, dlm.BrowseFilter{
			DDC:        c.DDC,
			FileType:   c.Type,
			Recent:     c.Recent,
			InProgress: c.InProgress,
		})
		if len(entries) == 0 {
			fmt.Fprintln(deps.Stdout, "No matching entries.")
			return nil
		}

		selected, err := pickEntry(deps, entries, initialQuery)
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
		initialQuery = ""
	}
}
