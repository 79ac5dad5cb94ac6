// Package fzf provides a dlm.Picker that shells out to the fzf binary for
// incremental filtering. Candidates are streamed as tab-delimited
// "id<TAB>label" lines with the ID column hidden from the match.
package fzf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/utrumsit/dlm"
)

// exit code fzf uses when the user aborts with ctrl-c or esc.
const exitAborted = 130

// Ensure Picker implements dlm.Picker at compile time.
var _ dlm.Picker = (*Picker)(nil)

// Picker runs the fzf binary over the candidate set. fzf owns the
// terminal for the duration of the pick; the selection comes back on
// stdout as the full tab-delimited line.
type Picker struct {
	binary      string
	previewWith string
}

// Option configures a Picker.
type Option func(*Picker)

// WithBinary overrides the fzf binary name or path.
func WithBinary(path string) Option {
	return func(p *Picker) {
		p.binary = path
	}
}

// WithPreview sets the command template fzf runs to render the preview
// pane. The template receives the hidden ID column as {1}.
func WithPreview(command string) Option {
	return func(p *Picker) {
		p.previewWith = command
	}
}

// NewPicker creates a Picker.
func NewPicker(opts ...Option) *Picker {
	p := &Picker{
		binary: "fzf",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick presents the items in fzf and returns the ID of the selection.
// Returns "" with a nil error when the user cancels, and EUNAVAILABLE
// when fzf is not installed.
func (p *Picker) Pick(ctx context.Context, items []dlm.Item, initialQuery string) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	if _, err := exec.LookPath(p.binary); err != nil {
		return "", dlm.Errorf(dlm.EUNAVAILABLE, "fzf is not installed, install it from https://github.com/junegunn/fzf")
	}

	args := []string{
		"--delimiter", "\t",
		"--with-nth", "2..",
		"--ansi",
	}
	if initialQuery != "" {
		args = append(args, "--query", initialQuery)
	}
	if p.previewWith != "" {
		args = append(args, "--preview", p.previewWith)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, p.binary, args...)
	cmd.Stdin = strings.NewReader(Render(items))
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == exitAborted {
			return "", nil
		}
		return "", fmt.Errorf("fzf failed: %w", err)
	}

	return ParseSelection(out.String()), nil
}

// Render formats the items as the line protocol fed to fzf.
func Render(items []dlm.Item) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.ID)
		b.WriteByte('\t')
		b.WriteString(item.Label)
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseSelection extracts the item ID from an fzf output line. Returns ""
// when nothing was selected.
func ParseSelection(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	id, _, _ := strings.Cut(line, "\t")
	return id
}
