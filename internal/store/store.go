// Package store handles the SQLite snippet catalog.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/sniptype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for imported snippets.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snippets (
			id INTEGER PRIMARY KEY,
			lang TEXT NOT NULL,
			level TEXT NOT NULL,
			code TEXT NOT NULL,
			UNIQUE (lang, level, code)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snippets_lang_level ON snippets(lang, level);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportSnippets stores snippets, skipping exact duplicates. It returns the
// number of newly added rows.
func (s *Store) ImportSnippets(ctx context.Context, snippets []model.Snippet) (added int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO snippets (lang, level, code) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, sn := range snippets {
		lang := strings.ToLower(strings.TrimSpace(sn.Language))
		if lang == "" {
			return 0, fmt.Errorf("snippet has no language")
		}
		res, err := stmt.ExecContext(ctx, lang, string(sn.Level), sn.Code)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Fetch returns catalog snippets for a language and level.
func (s *Store) Fetch(ctx context.Context, language string, level model.Level) ([]model.Snippet, error) {
	lang := strings.ToLower(strings.TrimSpace(language))
	rows, err := s.db.QueryContext(ctx,
		`SELECT code FROM snippets WHERE lang = ? AND level = ? ORDER BY id ASC`,
		lang, string(level))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Snippet
	for rows.Next() {
		sn := model.Snippet{Language: lang, Level: level}
		if err := rows.Scan(&sn.Code); err != nil {
			return nil, err
		}
		result = append(result, sn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Languages returns the distinct catalog languages in sorted order.
func (s *Store) Languages(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT lang FROM snippets ORDER BY lang ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var langs []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return langs, nil
}

// Summary counts snippets per language and level.
func (s *Store) Summary(ctx context.Context) ([]model.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT lang, level, COUNT(*) FROM snippets GROUP BY lang, level
		 ORDER BY lang ASC, CASE level WHEN 'beginner' THEN 0 WHEN 'intermediate' THEN 1 ELSE 2 END`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.CatalogEntry
	for rows.Next() {
		var entry model.CatalogEntry
		var level string
		if err := rows.Scan(&entry.Language, &level, &entry.Count); err != nil {
			return nil, err
		}
		entry.Level = model.Level(level)
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
