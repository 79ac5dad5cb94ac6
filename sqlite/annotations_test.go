package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utrumsit/dlm"
	"github.com/utrumsit/dlm/sqlite"
)

// seedReaderDBs creates library and annotation databases with the reader's
// schema and a single annotated book.
func seedReaderDBs(t *testing.T) (libPath, annPath string) {
	t.Helper()
	dir := t.TempDir()
	libPath = filepath.Join(dir, "BKLibrary-1-test.sqlite")
	annPath = filepath.Join(dir, "AEAnnotation-test.sqlite")

	lib, err := sql.Open("sqlite3", libPath)
	require.NoError(t, err)
	defer lib.Close()
	_, err = lib.Exec(`
		CREATE TABLE ZBKLIBRARYASSET (
			ZASSETID TEXT,
			ZTITLE TEXT,
			ZAUTHOR TEXT,
			ZBOOKDESCRIPTION TEXT,
			ZGENRE TEXT,
			ZLANGUAGE TEXT,
			ZPAGECOUNT INTEGER
		);
		INSERT INTO ZBKLIBRARYASSET VALUES
			('asset-1', 'Beethoven Sonatas', 'Ludwig van Beethoven', 'The piano sonatas.', 'Music', 'en', 120);
	`)
	require.NoError(t, err)

	ann, err := sql.Open("sqlite3", annPath)
	require.NoError(t, err)
	defer ann.Close()
	_, err = ann.Exec(`
		CREATE TABLE ZAEANNOTATION (
			ZANNOTATIONASSETID TEXT,
			ZANNOTATIONREPRESENTATIVETEXT TEXT,
			ZANNOTATIONSELECTEDTEXT TEXT,
			ZANNOTATIONNOTE TEXT,
			ZANNOTATIONMODIFICATIONDATE REAL,
			ZANNOTATIONDELETED INTEGER
		);
		INSERT INTO ZAEANNOTATION VALUES
			('asset-1', 'rep text', 'The opening movement', 'check tempo', 2.0, 0),
			('asset-1', 'only representative', NULL, NULL, 1.0, 0),
			('asset-1', 'deleted one', NULL, NULL, 3.0, 1),
			('asset-2', 'other book', NULL, NULL, 4.0, 0);
	`)
	require.NoError(t, err)
	return libPath, annPath
}

func TestAnnotationSource_Notes(t *testing.T) {
	t.Parallel()

	libPath, annPath := seedReaderDBs(t)
	src := sqlite.NewAnnotationSource(libPath, annPath)

	notes, err := src.Notes(context.Background(), &dlm.CatalogEntry{Title: "Beethoven Sonatas"})

	require.NoError(t, err)
	assert.Equal(t, "Ludwig van Beethoven", notes.Info.Author)
	assert.Equal(t, "Music", notes.Info.Genre)
	assert.Equal(t, 120, notes.Info.PageCount)

	require.Len(t, notes.Annotations, 2)
	// Modification order: the representative-only annotation came first.
	assert.Equal(t, "only representative", notes.Annotations[0].Highlight)
	assert.Equal(t, "The opening movement", notes.Annotations[1].Highlight)
	assert.Equal(t, "check tempo", notes.Annotations[1].Comment)
}

func TestAnnotationSource_SubstringTitleFallback(t *testing.T) {
	t.Parallel()

	libPath, annPath := seedReaderDBs(t)
	src := sqlite.NewAnnotationSource(libPath, annPath)

	notes, err := src.Notes(context.Background(), &dlm.CatalogEntry{Title: "Sonatas"})

	require.NoError(t, err)
	assert.Equal(t, "Beethoven Sonatas", notes.Info.Title)
}

func TestAnnotationSource_UnknownBook(t *testing.T) {
	t.Parallel()

	libPath, annPath := seedReaderDBs(t)
	src := sqlite.NewAnnotationSource(libPath, annPath)

	_, err := src.Notes(context.Background(), &dlm.CatalogEntry{Title: "No Such Book"})

	require.Error(t, err)
	assert.Equal(t, dlm.ENOTFOUND, dlm.ErrorCode(err))
}

func TestAnnotationSource_MissingDatabases(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := sqlite.NewAnnotationSource(
		filepath.Join(dir, "BKLibrary-1-*.sqlite"),
		filepath.Join(dir, "AEAnnotation*.sqlite"),
	)

	_, err := src.Notes(context.Background(), &dlm.CatalogEntry{Title: "Anything"})

	require.Error(t, err)
	assert.Equal(t, dlm.ENOTFOUND, dlm.ErrorCode(err))
}
