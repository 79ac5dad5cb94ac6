package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/utrumsit/dlm"
	"github.com/utrumsit/dlm/epub"
	"github.com/utrumsit/dlm/fs"
	"github.com/utrumsit/dlm/fzf"
	"github.com/utrumsit/dlm/gemini"
	"github.com/utrumsit/dlm/joplin"
	"github.com/utrumsit/dlm/opener"
	"github.com/utrumsit/dlm/pdfcpu"
	"github.com/utrumsit/dlm/scan"
	"github.com/utrumsit/dlm/skim"
	dlmslog "github.com/utrumsit/dlm/slog"
	"github.com/utrumsit/dlm/sqlite"
	"github.com/utrumsit/dlm/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides config loading when set. Used by tests.
	Config *dlm.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dlm"),
		kong.Description("Personal digital library manager."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dlm --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := m.Config
	if cfg == nil {
		cfg, err = yaml.NewLoader().Load()
		if err != nil {
			return err
		}
	}
	deps.Config = cfg

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel()}))
	deps.Logger = logger

	deps.Catalog = fs.NewCatalogService(filepath.Join(cfg.LibraryRoot, "catalog.json"), logger)
	deps.Progress = fs.NewProgressService(filepath.Join(cfg.LibraryRoot, "reading_progress.json"), logger)
	deps.Picker = fzf.NewPicker(fzf.WithPreview(previewCommand()))
	deps.Opener = opener.NewOpener(cfg.LibraryRoot, cfg.ReaderApps)

	// Note export is optional; without a Joplin token the reading flow
	// simply skips it.
	if cfg.JoplinToken != "" {
		client, err := joplin.NewClient(cfg)
		if err != nil {
			return err
		}
		deps.Notebook = dlmslog.NewLoggingNotebook(client, logger)
	}
	deps.PDFAnnotations = skim.NewAnnotationSource(cfg.LibraryRoot, skim.WithTool(skimnotesPath(cfg.ReaderApps)))
	deps.BookAnnotations = sqlite.NewAnnotationSource(readerLibraryGlob(), readerAnnotationGlob())
	deps.PageContext = skim.NewContextSource()

	if cmd == "scan" {
		deps.Scanner = &scan.Scanner{
			PDF:    dlmslog.NewLoggingExtractor(pdfcpu.NewExtractor(), logger),
			EPUB:   dlmslog.NewLoggingExtractor(epub.NewExtractor(), logger),
			Logger: logger,
		}
	}

	if cmd == "ask" {
		client, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey")
			return err
		}
		deps.Asker = gemini.NewAsker(client)
	}

	return kongCtx.Run(deps)
}

// logLevel reads DLM_DEBUG so per-file scan timings can be turned on
// without a config edit.
func logLevel() slog.Level {
	if os.Getenv("DLM_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// previewCommand builds the command fzf runs to render its preview pane,
// pointing back at this binary's hidden preview subcommand.
func previewCommand() string {
	exe, err := os.Executable()
	if err != nil {
		exe = "dlm"
	}
	return fmt.Sprintf("%s preview {1}", exe)
}

// skimnotesPath resolves the skimnotes binary inside the configured PDF
// reader bundle, or "" to use the standard install location.
func skimnotesPath(apps dlm.ReaderApps) string {
	if apps.PDF == "" {
		return ""
	}
	return filepath.Join(apps.PDF, "Contents/SharedSupport/skimnotes")
}

func readerLibraryGlob() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library/Containers/com.apple.iBooksX/Data/Documents/BKLibrary/BKLibrary-1-*.sqlite")
}

func readerAnnotationGlob() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library/Containers/com.apple.iBooksX/Data/Documents/AEAnnotation/AEAnnotation*.sqlite")
}
