package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/utrumsit/dlm"
)

// Compile-time interface verification.
var _ dlm.AnnotationSource = (*AnnotationSource)(nil)

// AnnotationSource extracts highlights and notes from the ebook reader's
// databases. The library database maps book titles to asset IDs and
// bibliographical records; the annotation database holds the highlights
// keyed by asset ID.
type AnnotationSource struct {
	libraryGlob    string
	annotationGlob string
}

// NewAnnotationSource creates an AnnotationSource. The arguments are glob
// patterns because the reader suffixes its database files with rotating
// identifiers; the first match of each wins.
func NewAnnotationSource(libraryGlob, annotationGlob string) *AnnotationSource {
	return &AnnotationSource{
		libraryGlob:    libraryGlob,
		annotationGlob: annotationGlob,
	}
}

// Notes returns the reader's annotations for the entry, located by exact
// title first and by substring as a fallback. Returns ENOTFOUND when the
// reader databases are missing or the book is not in the reader's library.
func (s *AnnotationSource) Notes(ctx context.Context, entry *dlm.CatalogEntry) (*dlm.BookNotes, error) {
	libPath, err := firstMatch(s.libraryGlob)
	if err != nil {
		return nil, err
	}
	annPath, err := firstMatch(s.annotationGlob)
	if err != nil {
		return nil, err
	}

	libDB, err := openReadOnly(libPath)
	if err != nil {
		return nil, err
	}
	defer libDB.Close()

	assetID, info, err := findAsset(ctx, libDB, entry.Title)
	if err != nil {
		return nil, err
	}

	annDB, err := openReadOnly(annPath)
	if err != nil {
		return nil, err
	}
	defer annDB.Close()

	annotations, err := findAnnotations(ctx, annDB, assetID)
	if err != nil {
		return nil, err
	}

	return &dlm.BookNotes{Info: *info, Annotations: annotations}, nil
}

func firstMatch(pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", dlm.Errorf(dlm.ENOTFOUND, "reader database not found (searched %s)", pattern)
	}
	return matches[0], nil
}

const assetColumns = `
	SELECT ZASSETID, ZTITLE, ZAUTHOR, ZBOOKDESCRIPTION, ZGENRE, ZLANGUAGE, ZPAGECOUNT
	FROM ZBKLIBRARYASSET
`

// findAsset locates a book by exact title, falling back to a substring
// match, and returns its asset ID with the bibliographical record.
func findAsset(ctx context.Context, db *sql.DB, title string) (string, *dlm.BookInfo, error) {
	row := db.QueryRowContext(ctx, assetColumns+` WHERE ZTITLE = ?`, title)
	assetID, info, err := scanAsset(row)
	if err == sql.ErrNoRows {
		row = db.QueryRowContext(ctx, assetColumns+` WHERE ZTITLE LIKE ?`, "%"+title+"%")
		assetID, info, err = scanAsset(row)
	}
	if err == sql.ErrNoRows {
		return "", nil, dlm.Errorf(dlm.ENOTFOUND, "book %q not found in the reader library", title)
	}
	if err != nil {
		return "", nil, err
	}
	return assetID, info, nil
}

func scanAsset(row *sql.Row) (string, *dlm.BookInfo, error) {
	var assetID string
	var title, author, description, genre, language sql.NullString
	var pageCount sql.NullInt64

	if err := row.Scan(&assetID, &title, &author, &description, &genre, &language, &pageCount); err != nil {
		return "", nil, err
	}

	return assetID, &dlm.BookInfo{
		Title:       title.String,
		Author:      author.String,
		Description: description.String,
		Genre:       genre.String,
		Language:    language.String,
		PageCount:   int(pageCount.Int64),
	}, nil
}

// findAnnotations returns the asset's non-deleted annotations in
// modification order. The reader stores a representative text alongside
// the selected text; the selected text wins when both are present.
func findAnnotations(ctx context.Context, db *sql.DB, assetID string) ([]dlm.Annotation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT ZANNOTATIONREPRESENTATIVETEXT, ZANNOTATIONSELECTEDTEXT, ZANNOTATIONNOTE
		FROM ZAEANNOTATION
		WHERE ZANNOTATIONASSETID = ? AND ZANNOTATIONDELETED = 0
		ORDER BY ZANNOTATIONMODIFICATIONDATE
	`, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annotations []dlm.Annotation
	for rows.Next() {
		var representative, selected, note sql.NullString
		if err := rows.Scan(&representative, &selected, &note); err != nil {
			return nil, err
		}

		highlight := selected.String
		if highlight == "" {
			highlight = representative.String
		}
		if highlight == "" && note.String == "" {
			continue
		}
		annotations = append(annotations, dlm.Annotation{
			Highlight: highlight,
			Comment:   note.String,
		})
	}
	return annotations, rows.Err()
}
