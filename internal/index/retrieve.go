// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/notemill/internal/mdscan"
)

// QueryOptions holds parameters for index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// Namespace filters by topic namespace prefix, e.g. "modules/argparse"
	// matches that namespace and everything below it.
	Namespace string

	// Tag filters by frontmatter tag.
	Tag string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Namespace == "" && q.Tag == ""
}

// QueryResult is one matching document with a contextual snippet for
// full-text queries.
type QueryResult struct {
	Path      string   `json:"path" yaml:"path"`
	Namespace string   `json:"namespace" yaml:"namespace"`
	Title     string   `json:"title" yaml:"title"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	WordCount int      `json:"word_count" yaml:"word_count"`
	Snippet   string   `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// Retrieve queries the index with optional full-text search and structured
// filters. Full-text queries rank by FTS5 relevance; filter-only queries
// sort by path.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT d.path, d.namespace, d.title, d.tags, d.word_count,
				snippet(documents_fts, 1, '', '', '…', 12)
			FROM documents_fts
			JOIN documents d ON d.rowid = documents_fts.rowid
			WHERE documents_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT d.path, d.namespace, d.title, d.tags, d.word_count, ''
			FROM documents d
			WHERE 1=1`)
	}

	if opts.Namespace != "" {
		ns := strings.Trim(opts.Namespace, "/")
		qb.WriteString(` AND (d.namespace = ? OR d.namespace LIKE ?)`)
		args = append(args, ns, ns+"/%")
	}

	if opts.Tag != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(d.tags) WHERE value = ?)`)
		args = append(args, opts.Tag)
	}

	if useFTS {
		qb.WriteString(` ORDER BY documents_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY d.path`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr       QueryResult
			tagsJSON sql.NullString
			title    sql.NullString
		)
		if err := rows.Scan(&qr.Path, &qr.Namespace, &title, &tagsJSON, &qr.WordCount, &qr.Snippet); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if title.Valid {
			qr.Title = title.String
		}
		if tagsJSON.Valid {
			json.Unmarshal([]byte(tagsJSON.String), &qr.Tags)
		}
		results = append(results, qr)
	}
	return results, rows.Err()
}

// Trace returns the body of the named section from a document's source
// file, for result provenance. The path must be known to the index.
func (s *Store) Trace(ctx context.Context, relPath, heading string) (string, error) {
	var stored string
	err := s.db.QueryRowContext(ctx,
		`SELECT path FROM documents WHERE path = ?`, relPath,
	).Scan(&stored)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("document %s not indexed", relPath)
		}
		return "", fmt.Errorf("looking up document: %w", err)
	}

	full := filepath.Join(s.corpusRoot, filepath.FromSlash(relPath))
	content, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", full, err)
	}

	section := mdscan.Section(content, heading)
	if section == "" {
		return "", fmt.Errorf("section %q not found in %s", heading, relPath)
	}
	return section, nil
}
