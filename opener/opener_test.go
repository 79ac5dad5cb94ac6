package opener_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utrumsit/dlm"
	"github.com/utrumsit/dlm/opener"
)

type capturedCommand struct {
	name string
	args []string
}

// newCapturingOpener writes a file for the entry and returns an opener
// whose runner records the command instead of executing it.
func newCapturingOpener(t *testing.T, goos string, apps dlm.ReaderApps, relPath string) (*opener.Opener, *capturedCommand, string) {
	t.Helper()
	root := t.TempDir()
	full := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("content"), 0o644))

	var captured capturedCommand
	o := opener.NewOpener(root, apps,
		opener.WithOS(goos, apps),
		opener.WithRunner(func(_ context.Context, name string, args ...string) error {
			captured = capturedCommand{name: name, args: args}
			return nil
		}),
	)
	return o, &captured, root
}

func TestOpener_PDFUsesConfiguredReaderOnDarwin(t *testing.T) {
	t.Parallel()

	apps := dlm.ReaderApps{PDF: "/Applications/Skim.app", Ebook: "Books"}
	o, captured, _ := newCapturingOpener(t, "darwin", apps, "700/book.pdf")

	err := o.Open(context.Background(), &dlm.CatalogEntry{
		ID: "780001", Title: "Beethoven Sonatas", FilePath: "700/book.pdf", FileType: "pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, "osascript", captured.name)
	assert.Contains(t, captured.args, `tell application "Skim"`)
}

func TestOpener_EbookUsesConfiguredReaderOnDarwin(t *testing.T) {
	t.Parallel()

	apps := dlm.ReaderApps{PDF: "/Applications/Skim.app", Ebook: "Books"}
	o, captured, root := newCapturingOpener(t, "darwin", apps, "800/book.epub")

	err := o.Open(context.Background(), &dlm.CatalogEntry{
		ID: "880001", Title: "Odyssey", FilePath: "800/book.epub", FileType: "epub",
	})

	require.NoError(t, err)
	assert.Equal(t, "open", captured.name)
	assert.Equal(t, []string{"-a", "Books", filepath.Join(root, "800/book.epub")}, captured.args)
}

func TestOpener_OtherFallsBackToSystemDefault(t *testing.T) {
	t.Parallel()

	apps := dlm.ReaderApps{PDF: "/Applications/Skim.app", Ebook: "Books"}
	o, captured, _ := newCapturingOpener(t, "darwin", apps, "000/notes.txt")

	err := o.Open(context.Background(), &dlm.CatalogEntry{
		ID: "000001", Title: "Notes", FilePath: "000/notes.txt", FileType: "txt",
	})

	require.NoError(t, err)
	assert.Equal(t, "open", captured.name)
}

func TestOpener_LinuxUsesXdgOpenForEveryClass(t *testing.T) {
	t.Parallel()

	apps := dlm.ReaderApps{PDF: "/Applications/Skim.app", Ebook: "Books"}
	for _, fileType := range []string{"pdf", "epub", "txt"} {
		o, captured, _ := newCapturingOpener(t, "linux", apps, "700/book."+fileType)

		err := o.Open(context.Background(), &dlm.CatalogEntry{
			ID: "780001", Title: "Book", FilePath: "700/book." + fileType, FileType: fileType,
		})

		require.NoError(t, err)
		assert.Equal(t, "xdg-open", captured.name)
	}
}

func TestOpener_WindowsUsesStart(t *testing.T) {
	t.Parallel()

	o, captured, _ := newCapturingOpener(t, "windows", dlm.ReaderApps{}, "700/book.pdf")

	err := o.Open(context.Background(), &dlm.CatalogEntry{
		ID: "780001", Title: "Book", FilePath: "700/book.pdf", FileType: "pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, "cmd", captured.name)
	assert.Contains(t, captured.args, "start")
}

func TestOpener_UnconfiguredReadersFallBackOnDarwin(t *testing.T) {
	t.Parallel()

	o, captured, _ := newCapturingOpener(t, "darwin", dlm.ReaderApps{}, "700/book.pdf")

	err := o.Open(context.Background(), &dlm.CatalogEntry{
		ID: "780001", Title: "Book", FilePath: "700/book.pdf", FileType: "pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, "open", captured.name)
}

func TestOpener_MissingFile(t *testing.T) {
	t.Parallel()

	launched := false
	o := opener.NewOpener(t.TempDir(), dlm.ReaderApps{},
		opener.WithRunner(func(_ context.Context, _ string, _ ...string) error {
			launched = true
			return nil
		}),
	)

	err := o.Open(context.Background(), &dlm.CatalogEntry{
		ID: "780001", Title: "Ghost", FilePath: "700/gone.pdf", FileType: "pdf",
	})

	require.Error(t, err)
	assert.Equal(t, dlm.ENOTFOUND, dlm.ErrorCode(err))
	assert.False(t, launched)
}
