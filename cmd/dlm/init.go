package main

import (
	"fmt"

	"github.com/utrumsit/dlm"
	"github.com/utrumsit/dlm/scan"
)

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	root := deps.Config.LibraryRoot
	if err := scan.InitLibrary(root); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Library initialized at %s.\n", root)
	fmt.Fprintln(deps.Stdout, "Edit config.yml to set your Joplin token and reader applications.")
	return nil
}
