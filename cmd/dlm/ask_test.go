package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utrumsit/dlm"
	main "github.com/utrumsit/dlm/cmd/dlm"
	"github.com/utrumsit/dlm/mock"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the assistant's answer", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(testCatalog())
		var askedQuestion, askedContext string
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, contextText, question string) (string, error) {
				askedContext = contextText
				askedQuestion = question
				return "The answer.", nil
			},
		}

		cmd := &main.AskCmd{Question: []string{"who", "wrote", "this?"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "who wrote this?", askedQuestion)
		assert.Empty(t, askedContext)
		assert.Contains(t, stdout.String(), "The answer.")
	})

	t.Run("captures the current page when no context flag is given", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(testCatalog())
		deps.PageContext = &mock.ContextSource{
			CurrentContextFn: func(_ context.Context) (string, error) {
				return "the sonata form has three sections", nil
			},
		}
		var askedContext string
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, contextText, _ string) (string, error) {
				askedContext = contextText
				return "ok", nil
			},
		}

		cmd := &main.AskCmd{Question: []string{"what is this about?"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "the sonata form has three sections", askedContext)
	})

	t.Run("degrades to no context when no document is open", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(testCatalog())
		deps.PageContext = &mock.ContextSource{
			CurrentContextFn: func(_ context.Context) (string, error) {
				return "", dlm.Errorf(dlm.ENOTFOUND, "no open Skim document found")
			},
		}
		var askedContext string
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, contextText, _ string) (string, error) {
				askedContext = contextText
				return "ok", nil
			},
		}

		cmd := &main.AskCmd{Question: []string{"anything"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, askedContext)
	})

	t.Run("reads context from a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "notes.md")
		require.NoError(t, os.WriteFile(path, []byte("chapter summary"), 0o644))

		deps, _, _ := testDeps(testCatalog())
		var askedContext string
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, contextText, _ string) (string, error) {
				askedContext = contextText
				return "ok", nil
			},
		}

		cmd := &main.AskCmd{ContextFile: path, Question: []string{"summarize"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "chapter summary", askedContext)
	})

	t.Run("uses reader annotations as context for --book", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(testCatalog())
		deps.BookAnnotations = &mock.AnnotationSource{
			NotesFn: func(_ context.Context, entry *dlm.CatalogEntry) (*dlm.BookNotes, error) {
				assert.Equal(t, "880001", entry.ID)
				return &dlm.BookNotes{
					Annotations: []dlm.Annotation{{Highlight: "sing, goddess"}},
				}, nil
			},
		}
		var askedContext string
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, contextText, _ string) (string, error) {
				askedContext = contextText
				return "ok", nil
			},
		}

		cmd := &main.AskCmd{Book: "odyssey", Question: []string{"what is the theme?"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, askedContext, "# Notes for The Odyssey")
		assert.Contains(t, askedContext, "> sing, goddess")
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(testCatalog())
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, _, _ string) (string, error) {
				t.Fatal("asker should not be called")
				return "", nil
			},
		}

		cmd := &main.AskCmd{Book: "nonexistent", Question: []string{"anything"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dlm.ENOTFOUND, dlm.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no entry matching")
	})
}

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders the preview pane", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(testCatalog())
		page := 7
		deps.Progress = &mock.ProgressService{
			SnapshotFn: func(_ context.Context) (map[string]*dlm.ProgressRecord, error) {
				return map[string]*dlm.ProgressRecord{
					"780001": {LastOpened: "2026-08-15", Page: &page},
				}, nil
			},
		}

		cmd := &main.PreviewCmd{ID: "780001"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Beethoven Sonatas")
		assert.Contains(t, out, "Author: Ludwig van Beethoven")
		assert.Contains(t, out, "DDC: 786.2")
		assert.Contains(t, out, "Type: PDF")
		assert.Contains(t, out, "Last opened: 2026-08-15")
		assert.Contains(t, out, "Last read page: 7")
	})

	t.Run("unknown ID", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(testCatalog())

		cmd := &main.PreviewCmd{ID: "999999"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dlm.ENOTFOUND, dlm.ErrorCode(err))
	})
}
