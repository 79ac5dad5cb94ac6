// Package opener launches catalog entries in external reader applications.
// Dispatch goes through a capability table keyed by document class and
// operating system instead of branching on raw file extensions, so adding
// a reader means adding a table row.
package opener

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/utrumsit/dlm"
)

// Ensure Opener implements dlm.Opener at compile time.
var _ dlm.Opener = (*Opener)(nil)

// Runner executes an external command. Injectable so tests can capture
// the constructed command instead of launching applications.
type Runner func(ctx context.Context, name string, args ...string) error

// command builds the launch command for a resolved file path.
type command func(path string) (string, []string)

// Opener opens files in the reader configured for their class, falling
// back to the operating system default.
type Opener struct {
	root  string
	table map[dlm.FileClass]command
	run   Runner
	stat  func(string) error
}

// Option configures an Opener.
type Option func(*Opener)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(o *Opener) {
		o.run = r
	}
}

// WithOS builds the capability table for the given GOOS instead of the
// host's. Intended for tests.
func WithOS(goos string, apps dlm.ReaderApps) Option {
	return func(o *Opener) {
		o.table = capabilityTable(goos, apps)
	}
}

// NewOpener creates an Opener rooted at the library directory, with the
// configured reader applications.
func NewOpener(root string, apps dlm.ReaderApps, opts ...Option) *Opener {
	o := &Opener{
		root:  root,
		table: capabilityTable(runtime.GOOS, apps),
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
		stat: func(path string) error {
			_, err := os.Stat(path)
			return err
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open launches the entry's file in the reader for its class. Returns
// ENOTFOUND when the file is missing, before any reader is launched.
func (o *Opener) Open(ctx context.Context, entry *dlm.CatalogEntry) error {
	path := filepath.Join(o.root, entry.FilePath)
	if err := o.stat(path); err != nil {
		return dlm.Errorf(dlm.ENOTFOUND, "file not found at %s, run 'dlm scan' to refresh the catalog", path)
	}

	build, ok := o.table[dlm.Classify(entry.FileType)]
	if !ok {
		build = o.table[dlm.ClassOther]
	}
	name, args := build(path)

	if err := o.run(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w", path, name, err)
	}
	return nil
}

// capabilityTable maps each document class to its launch command on the
// given operating system. Classes without a dedicated reader share the
// system-default row.
func capabilityTable(goos string, apps dlm.ReaderApps) map[dlm.FileClass]command {
	systemDefault := systemOpen(goos)
	table := map[dlm.FileClass]command{
		dlm.ClassPDF:   systemDefault,
		dlm.ClassEbook: systemDefault,
		dlm.ClassOther: systemDefault,
	}

	// Dedicated readers are a macOS affair; elsewhere the desktop
	// environment picks the application.
	if goos != "darwin" {
		return table
	}

	if apps.PDF != "" {
		app := appDisplayName(apps.PDF)
		table[dlm.ClassPDF] = func(path string) (string, []string) {
			return "osascript",
				[]string{
					"-e", fmt.Sprintf("tell application %q", app),
					"-e", "activate",
					"-e", fmt.Sprintf("open POSIX file %q", path),
					"-e", "end tell",
				}
		}
	}
	if apps.Ebook != "" {
		table[dlm.ClassEbook] = func(path string) (string, []string) {
			return "open", []string{"-a", apps.Ebook, path}
		}
	}
	return table
}

// systemOpen returns the OS-default open command.
func systemOpen(goos string) command {
	switch goos {
	case "darwin":
		return func(path string) (string, []string) {
			return "open", []string{path}
		}
	case "windows":
		return func(path string) (string, []string) {
			return "cmd", []string{"/c", "start", "", path}
		}
	default:
		return func(path string) (string, []string) {
			return "xdg-open", []string{path}
		}
	}
}

// appDisplayName derives the application name osascript addresses from a
// configured bundle path, e.g. "/Applications/Skim.app" becomes "Skim".
func appDisplayName(app string) string {
	return strings.TrimSuffix(filepath.Base(app), ".app")
}
