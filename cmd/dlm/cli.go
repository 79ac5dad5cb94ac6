package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/utrumsit/dlm"
	"github.com/utrumsit/dlm/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx             context.Context
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	Config          *dlm.Config
	Logger          *slog.Logger
	Catalog         dlm.CatalogService
	Progress        dlm.ProgressService
	Picker          dlm.Picker
	Opener          dlm.Opener
	Notebook        dlm.NotebookService
	PDFAnnotations  dlm.AnnotationSource
	BookAnnotations dlm.AnnotationSource
	PageContext     dlm.ContextSource
	Asker           dlm.Asker
	Scanner         *scan.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Search the catalog and open a result"`
	Browse  BrowseCmd  `cmd:"" help:"Incrementally filter the whole catalog"`
	Page    PageCmd    `cmd:"" help:"Save the current page for a book"`
	Recent  RecentCmd  `cmd:"" help:"List recently opened entries"`
	Scan    ScanCmd    `cmd:"" help:"Regenerate the catalog from the library tree"`
	Init    InitCmd    `cmd:"" help:"Scaffold a new library directory structure"`
	Toc     TocCmd     `cmd:"" help:"Generate TOC.md from the library tree"`
	Ask     AskCmd     `cmd:"" help:"Ask the reading assistant a question"`
	Preview PreviewCmd `cmd:"" hidden:"" help:"Render the preview pane for one entry"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Title    bool     `help:"Search titles only" xor:"field"`
	Author   bool     `help:"Search authors only" xor:"field"`
	Subject  bool     `help:"Search subjects only" xor:"field"`
	Category bool     `help:"Search categories only" xor:"field"`
	DDC      string   `name:"ddc" help:"Filter by DDC number prefix (e.g. 780, 006.3)"`
	Type     string   `help:"Filter by file type (pdf, epub)"`
	Exact    bool     `help:"Disable fuzzy matching"`
	SetPage  int      `placeholder:"N" default:"-1" help:"Save this page number for the opened entry"`
	Query    []string `arg:"" optional:"" help:"Search terms"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	DDC        string   `name:"ddc" help:"Limit to a DDC number prefix"`
	Type       string   `help:"Limit to a file type"`
	Recent     bool     `help:"Only recently opened entries, most recent first"`
	InProgress bool     `help:"Only entries with a saved page"`
	Query      []string `arg:"" optional:"" help:"Initial filter query"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Title string `arg:"" help:"Title substring identifying the book"`
	Page  int    `arg:"" help:"Page number to save"`
}

// RecentCmd is the "recent" subcommand.
type RecentCmd struct{}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct{}

// InitCmd is the "init" subcommand.
type InitCmd struct{}

// TocCmd is the "toc" subcommand.
type TocCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Book        string   `help:"Use the reader's annotations for this title as context"`
	ContextFile string   `type:"existingfile" help:"Read assistant context from a file"`
	Question    []string `arg:"" help:"Question to ask"`
}

// PreviewCmd is the hidden "preview" subcommand fzf uses for its pane.
type PreviewCmd struct {
	ID string `arg:"" help:"Catalog entry ID"`
}
