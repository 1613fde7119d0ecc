// Package sqlite exports an indexed corpus into a SQLite database, using the
// pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/FocuswithJustin/TanachReader/core/corpus"
	"github.com/FocuswithJustin/TanachReader/core/errors"
	"github.com/FocuswithJustin/TanachReader/core/hebrew"
	"github.com/FocuswithJustin/TanachReader/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	hebrew      TEXT NOT NULL,
	source      TEXT NOT NULL,
	url         TEXT,
	variant     TEXT NOT NULL,
	path        TEXT NOT NULL,
	source_hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS verses (
	book_id INTEGER NOT NULL REFERENCES books(id),
	chapter INTEGER NOT NULL,
	verse   INTEGER NOT NULL,
	text    TEXT NOT NULL,
	PRIMARY KEY (book_id, chapter, verse)
);
`

// Open opens (or creates) a SQLite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewIO("open database", path, err)
	}
	return db, nil
}

// Export writes every indexed book into a SQLite database at path. Verse
// text is normalized per opts before it is stored, so the exported database
// matches what the connector would serve.
func Export(ctx context.Context, path string, ix *corpus.Index, preferred corpus.Variant, opts hebrew.Options) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.NewIO("create schema", path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewIO("begin transaction", path, err)
	}
	defer tx.Rollback()

	insertBook, err := tx.PrepareContext(ctx,
		`INSERT INTO books (name, hebrew, source, url, variant, path, source_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.NewIO("prepare insert", path, err)
	}
	defer insertBook.Close()

	insertVerse, err := tx.PrepareContext(ctx,
		`INSERT INTO verses (book_id, chapter, verse, text) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return errors.NewIO("prepare insert", path, err)
	}
	defer insertVerse.Close()

	var totalVerses int
	for _, name := range ix.Books() {
		b, err := ix.GetBook(name, preferred)
		if err != nil {
			return err
		}
		res, err := insertBook.ExecContext(ctx,
			b.English, b.Hebrew, b.Source, b.URL, string(b.Variant), b.Path, b.SourceHash)
		if err != nil {
			return errors.NewIO("insert book", path, err)
		}
		bookID, err := res.LastInsertId()
		if err != nil {
			return errors.NewIO("insert book", path, err)
		}
		for _, ch := range b.Chapters {
			for i, v := range ch.Verses {
				if _, err := insertVerse.ExecContext(ctx, bookID, ch.Number, i+1, opts.Apply(v)); err != nil {
					return errors.NewIO("insert verse", path, err)
				}
				totalVerses++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewIO("commit", path, err)
	}
	logging.Info("corpus exported", "path", path, "books", len(ix.Books()), "verses", totalVerses)
	return nil
}
