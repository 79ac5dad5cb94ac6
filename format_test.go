package dlm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/utrumsit/dlm"
)

func TestFormatResults_MergesProgressAnnotations(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	results := []*dlm.ScoredEntry{{Entry: catalog[0], Score: 1.0}}
	progress := map[string]*dlm.ProgressRecord{
		"780001": {LastOpened: "2026-08-15", Page: intp(23)},
	}

	out := dlm.FormatResults(results, progress)

	assert.Contains(t, out, "1. Beethoven Sonatas by Ludwig van Beethoven [DDC: 780]")
	assert.Contains(t, out, "Subjects: Music, Piano")
	assert.Contains(t, out, "last read: p.23")
	assert.Contains(t, out, "(2026-08-15)")
}

func TestFormatResults_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No results found.\n", dlm.FormatResults(nil, nil))
}

func TestFormatResults_ShowsFirstThreeSubjects(t *testing.T) {
	t.Parallel()

	entry := &dlm.CatalogEntry{
		ID:       "x",
		Title:    "Everything",
		Subjects: []string{"One", "Two", "Three", "Four"},
		FilePath: "x.pdf",
		FileType: "pdf",
	}

	out := dlm.FormatResults([]*dlm.ScoredEntry{{Entry: entry, Score: 1.0}}, nil)

	assert.Contains(t, out, "Subjects: One, Two, Three\n")
	assert.NotContains(t, out, "Four")
}

func TestFormatEntryLabel(t *testing.T) {
	t.Parallel()

	t.Run("with author", func(t *testing.T) {
		t.Parallel()
		label := dlm.FormatEntryLabel(&dlm.CatalogEntry{
			Title: "Beethoven Sonatas", Author: "Ludwig van Beethoven",
			DDC: "780", FileType: "pdf",
		})
		assert.Equal(t, "Beethoven Sonatas (Ludwig van Beethoven) [780] PDF", label)
	})

	t.Run("without author or ddc", func(t *testing.T) {
		t.Parallel()
		label := dlm.FormatEntryLabel(&dlm.CatalogEntry{Title: "Field Notes", FileType: "epub"})
		assert.Equal(t, "Field Notes [---] EPUB", label)
	})

	t.Run("truncates long titles and authors", func(t *testing.T) {
		t.Parallel()
		label := dlm.FormatEntryLabel(&dlm.CatalogEntry{
			Title:    strings.Repeat("t", 90),
			Author:   strings.Repeat("a", 40),
			FileType: "pdf",
		})
		assert.Contains(t, label, strings.Repeat("t", 70)+" (")
		assert.NotContains(t, label, strings.Repeat("t", 71))
		assert.Contains(t, label, "("+strings.Repeat("a", 30)+")")
	})
}

func TestFormatPreview(t *testing.T) {
	t.Parallel()

	entry := testCatalog()[0]
	rec := &dlm.ProgressRecord{LastOpened: "2026-08-15", Page: intp(23)}

	out := dlm.FormatPreview(entry, rec)

	assert.Contains(t, out, "Beethoven Sonatas\n")
	assert.Contains(t, out, "Author: Ludwig van Beethoven")
	assert.Contains(t, out, "DDC: 780")
	assert.Contains(t, out, "Type: PDF")
	assert.Contains(t, out, "Location: 780_Music/Beethoven_Sonatas.pdf")
	assert.Contains(t, out, "Last opened: 2026-08-15")
	assert.Contains(t, out, "Last read page: 23")
}

func TestFormatPreview_NoProgress(t *testing.T) {
	t.Parallel()

	out := dlm.FormatPreview(testCatalog()[1], nil)

	assert.Contains(t, out, "DDC: 781.65")
	assert.NotContains(t, out, "Last opened")
}
