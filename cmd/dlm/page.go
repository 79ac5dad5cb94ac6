package main

import (
	"fmt"

	"github.com/utrumsit/dlm"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	entry, err := dlm.ResolveTitle(catalog, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	if err := deps.Progress.SetPage(deps.Ctx, entry.ID, c.Page); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved page %d for %s\n", c.Page, entry.Title)
	return nil
}
