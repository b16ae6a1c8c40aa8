// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportEntry holds one document row for export.
type ExportEntry struct {
	Path      string   `json:"path" yaml:"path"`
	Namespace string   `json:"namespace" yaml:"namespace"`
	Title     string   `json:"title" yaml:"title"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	WordCount int      `json:"word_count" yaml:"word_count"`
}

const exportLimit = 100000

// ExportYAML writes the index (optionally filtered) to
// <index-dir>/export.yaml.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.indexDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the index (optionally filtered) to
// <index-dir>/export.json.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.indexDir, "export.json"), data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	opts.MaxResults = exportLimit
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		entries[i] = ExportEntry{
			Path:      r.Path,
			Namespace: r.Namespace,
			Title:     r.Title,
			Tags:      r.Tags,
			WordCount: r.WordCount,
		}
	}
	return entries, nil
}
