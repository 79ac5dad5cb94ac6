// Package skim reads PDF annotations and page text from the Skim reader
// through its command-line tools. Notes live in extended attributes on the
// PDF, with a .skim sidecar file as fallback for copies that lost them.
package skim

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/utrumsit/dlm"
)

// Ensure AnnotationSource implements dlm.AnnotationSource at compile time.
var _ dlm.AnnotationSource = (*AnnotationSource)(nil)

// DefaultTool is where a standard Skim install keeps the skimnotes binary.
const DefaultTool = "/Applications/Skim.app/Contents/SharedSupport/skimnotes"

// Runner executes an external command and returns its stdout. Injectable
// so tests can fake the skimnotes tool.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// AnnotationSource extracts a PDF's notes via the skimnotes tool.
type AnnotationSource struct {
	root string
	tool string
	run  Runner
	stat func(string) error
}

// Option configures an AnnotationSource.
type Option func(*AnnotationSource)

// WithTool overrides the skimnotes binary path.
func WithTool(path string) Option {
	return func(s *AnnotationSource) {
		if path != "" {
			s.tool = path
		}
	}
}

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(s *AnnotationSource) {
		s.run = r
	}
}

// NewAnnotationSource creates an AnnotationSource rooted at the library
// directory.
func NewAnnotationSource(root string, opts ...Option) *AnnotationSource {
	s := &AnnotationSource{
		root: root,
		tool: DefaultTool,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
		stat: func(path string) error {
			_, err := os.Stat(path)
			return err
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notes reads the notes attached to the entry's PDF. The extended
// attributes are tried first, then the .skim sidecar next to the file.
func (s *AnnotationSource) Notes(ctx context.Context, entry *dlm.CatalogEntry) (*dlm.BookNotes, error) {
	if err := s.stat(s.tool); err != nil {
		return nil, dlm.Errorf(dlm.EUNAVAILABLE,
			"skimnotes tool not found at %s, is Skim installed?", s.tool)
	}

	path := filepath.Join(s.root, entry.FilePath)
	if err := s.stat(path); err != nil {
		return nil, dlm.Errorf(dlm.ENOTFOUND,
			"file not found at %s, run 'dlm scan' to refresh the catalog", path)
	}

	text := s.get(ctx, path)
	if text == "" {
		sidecar := strings.TrimSuffix(path, filepath.Ext(path)) + ".skim"
		if err := s.stat(sidecar); err == nil {
			text = s.get(ctx, sidecar)
		}
	}
	if text == "" {
		return nil, dlm.Errorf(dlm.ENOTFOUND, "no notes recorded for %s", entry.Title)
	}

	return &dlm.BookNotes{Text: text}, nil
}

// get runs skimnotes against one file. A failing run reads as no notes,
// matching the tool's behavior on files it has never annotated.
func (s *AnnotationSource) get(ctx context.Context, path string) string {
	out, err := s.run(ctx, s.tool, "get", "-format", "text", path, "-")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
