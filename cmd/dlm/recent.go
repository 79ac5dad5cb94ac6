package main

import (
	"fmt"

	"github.com/utrumsit/dlm"
)

// Run executes the recent command.
func (c *RecentCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	progress, err := deps.Progress.Snapshot(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	entries := dlm.RecentEntries(catalog, progress, 0)
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing opened yet.")
		return nil
	}

	for _, e := range entries {
		rec := progress[e.ID]
		line := fmt.Sprintf("%s  %s", rec.LastOpened, e.Title)
		if e.Author != "" {
			line += fmt.Sprintf(" (%s)", e.Author)
		}
		if rec.Page != nil {
			line += fmt.Sprintf("  p.%d", *rec.Page)
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
