package main

import (
	"fmt"

	"github.com/utrumsit/dlm"
)

// Run executes the hidden preview command. fzf invokes it with the ID
// column of the highlighted line to fill its preview pane.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		return err
	}

	for _, e := range catalog {
		if e.ID == c.ID {
			var rec *dlm.ProgressRecord
			if progress, err := deps.Progress.Snapshot(deps.Ctx); err == nil {
				rec = progress[e.ID]
			}
			fmt.Fprint(deps.Stdout, dlm.FormatPreview(e, rec))
			return nil
		}
	}
	return dlm.Errorf(dlm.ENOTFOUND, "entry %q not found", c.ID)
}
