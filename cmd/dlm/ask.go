package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/utrumsit/dlm"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	contextText, err := c.contextText(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, contextText, strings.Join(c.Question, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dlm.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

// contextText assembles what the assistant reads alongside the question:
// an explicit file, the reader's annotations for --book, or the page
// currently open in the PDF reader.
func (c *AskCmd) contextText(deps *Dependencies) (string, error) {
	if c.ContextFile != "" {
		data, err := os.ReadFile(c.ContextFile)
		if err != nil {
			return "", fmt.Errorf("failed to read context file: %w", err)
		}
		return string(data), nil
	}

	if c.Book != "" {
		return c.bookContext(deps)
	}

	if deps.PageContext == nil {
		return "", nil
	}
	text, err := deps.PageContext.CurrentContext(deps.Ctx)
	if err != nil {
		// No open document just means no context; the assistant
		// answers from general knowledge.
		if deps.Logger != nil {
			deps.Logger.Debug("page capture failed", "error", err)
		}
		return "", nil
	}
	return text, nil
}

func (c *AskCmd) bookContext(deps *Dependencies) (string, error) {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		return "", err
	}
	entry, err := dlm.ResolveTitle(catalog, c.Book)
	if err != nil {
		return "", err
	}
	source := annotationSource(deps, entry)
	if source == nil {
		return "", dlm.Errorf(dlm.EUNAVAILABLE, "no annotation reader for %s files", entry.FileType)
	}
	notes, err := source.Notes(deps.Ctx, entry)
	if err != nil {
		return "", err
	}
	return dlm.FormatNotes(entry, notes), nil
}
