package skim

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/utrumsit/dlm"
)

// Ensure ContextSource implements dlm.ContextSource at compile time.
var _ dlm.ContextSource = (*ContextSource)(nil)

// pageTextScript asks for the text of the page open in the frontmost
// Skim document, guarded so an unlaunched Skim is not started.
const pageTextScript = `
tell application "System Events"
	set processExists to (name of processes) contains "Skim"
end tell

if processExists then
	tell application "Skim"
		if (count of documents) > 0 then
			set currentText to (get text of current page of document 1)
			return currentText
		end if
	end tell
end if
return ""
`

// ContextSource captures the currently displayed page text from Skim.
type ContextSource struct {
	goos string
	run  Runner
}

// ContextOption configures a ContextSource.
type ContextOption func(*ContextSource)

// WithContextRunner replaces the command runner.
func WithContextRunner(r Runner) ContextOption {
	return func(s *ContextSource) {
		s.run = r
	}
}

// WithGOOS pretends to run on the given GOOS. Intended for tests.
func WithGOOS(goos string) ContextOption {
	return func(s *ContextSource) {
		s.goos = goos
	}
}

// NewContextSource creates a ContextSource for the host platform.
func NewContextSource(opts ...ContextOption) *ContextSource {
	s := &ContextSource{
		goos: runtime.GOOS,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentContext returns the text of the page open in Skim.
func (s *ContextSource) CurrentContext(ctx context.Context) (string, error) {
	if s.goos != "darwin" {
		return "", dlm.Errorf(dlm.EUNAVAILABLE, "page capture is only supported on macOS")
	}

	out, err := s.run(ctx, "osascript", "-e", pageTextScript)
	if err != nil {
		return "", dlm.Errorf(dlm.EUNAVAILABLE, "failed to read the current page from Skim")
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", dlm.Errorf(dlm.ENOTFOUND, "no open Skim document found")
	}
	return text, nil
}
