package main

import (
	"fmt"

	"github.com/utrumsit/dlm"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	// The previous catalog keeps IDs, and with them reading progress,
	// stable for unchanged files. A missing or corrupt catalog just
	// means a fresh numbering.
	previous, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		previous = nil
	}

	entries, err := deps.Scanner.Scan(deps.Ctx, deps.Config.LibraryRoot, previous)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	if err := deps.Catalog.SaveCatalog(deps.Ctx, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Catalog regenerated: %d entries.\n", len(entries))
	return nil
}
