// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists scanned corpus documents in a SQLite database
// with FTS5 full-text search over titles and bodies. Builds are
// incremental: unchanged files are skipped, vanished files pruned.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/notemill/pkg/types"
)

const dbFile = "notemill.db"

// Store manages the corpus index database.
type Store struct {
	db         *sql.DB
	indexDir   string
	corpusRoot string
	maxResults int
}

// NewStore opens or creates the index database at indexDir/notemill.db,
// creating the schema when missing. corpusRoot locates source files for
// trace lookups.
func NewStore(cfg types.IndexConfig, corpusRoot string) (*Store, error) {
	indexDir := cfg.IndexDir
	if indexDir == "" {
		indexDir = "index"
	}
	if err := os.MkdirAll(indexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(indexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   indexDir,
		corpusRoot: corpusRoot,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			namespace TEXT NOT NULL,
			title TEXT,
			tags TEXT,
			word_count INTEGER,
			fragment_count INTEGER,
			mod_time TEXT,
			body TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_namespace ON documents(namespace)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='documents_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE documents_fts USING fts5(title, body, content=documents, content_rowid=rowid)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
				INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}
	return nil
}

// BuildSummary holds counts from an index build run.
type BuildSummary struct {
	Indexed int
	Updated int
	Skipped int
	Removed int
	Failed  int
}

// Total returns the number of documents processed, pruned rows excluded.
func (s BuildSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Build indexes the scanned documents incrementally, comparing file
// modification times against the stored ones: new documents are inserted,
// changed ones re-indexed, unchanged ones skipped. Rows whose source file
// no longer exists in docs are pruned. Progress is written to w.
func (s *Store) Build(ctx context.Context, docs []types.Document, w io.Writer) (BuildSummary, error) {
	var summary BuildSummary
	seen := make(map[string]bool, len(docs))

	for _, doc := range docs {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		seen[doc.Path] = true
		modTime := doc.ModTime.UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err := s.db.QueryRowContext(ctx,
			`SELECT mod_time FROM documents WHERE path = ?`, doc.Path,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", doc.Path)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		if err := s.upsertDocument(ctx, doc, modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", doc.Path, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s\n", doc.Path)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s\n", doc.Path)
			summary.Indexed++
		}
	}

	removed, err := s.prune(ctx, seen)
	if err != nil {
		return summary, err
	}
	summary.Removed = removed

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, removed: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Removed, summary.Failed)
	return summary, nil
}

func (s *Store) upsertDocument(ctx context.Context, doc types.Document, modTime string) error {
	tagsJSON, _ := json.Marshal(doc.FrontMatter.Tags)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (path, namespace, title, tags, word_count, fragment_count, mod_time, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			namespace=excluded.namespace, title=excluded.title, tags=excluded.tags,
			word_count=excluded.word_count, fragment_count=excluded.fragment_count,
			mod_time=excluded.mod_time, body=excluded.body`,
		doc.Path, doc.Namespace, doc.Title, string(tagsJSON),
		doc.WordCount, len(doc.Fragments), modTime, doc.Body,
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}
	return nil
}

// prune deletes rows whose path was not part of the current scan.
func (s *Store) prune(ctx context.Context, seen map[string]bool) (int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM documents`)
	if err != nil {
		return 0, fmt.Errorf("listing indexed paths: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return 0, fmt.Errorf("scanning path: %w", err)
		}
		if !seen[p] {
			stale = append(stale, p)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, p := range stale {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE path = ?`, p); err != nil {
			return 0, fmt.Errorf("pruning %s: %w", p, err)
		}
	}
	return len(stale), nil
}
