package main

import (
	"fmt"

	"github.com/utrumsit/dlm"
	"github.com/utrumsit/dlm/scan"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	if err := scan.WriteTOC(deps.Config.LibraryRoot); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "TOC.md written.")
	return nil
}
