// Package sqlite reads reader-app annotation databases. The ebook reader
// keeps its library and its annotations in two separate SQLite files; this
// package joins them into dlm.BookNotes. All access is read-only.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// openReadOnly opens a SQLite database without taking any locks that could
// disturb the reader application owning the file.
func openReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// A single connection is plenty for the handful of lookups we do.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}
	return db, nil
}
