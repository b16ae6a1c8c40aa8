// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk representation of a search and its results. A
// maintainer can save a search to a file and reload it later without
// re-querying the index.
type QueryFile struct {
	Query   QueryParams   `yaml:"query"`
	Results []QueryResult `yaml:"results"`
	Summary QuerySummary  `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Text       string `yaml:"text,omitempty"`
	Namespace  string `yaml:"namespace,omitempty"`
	Tag        string `yaml:"tag,omitempty"`
	MaxResults int    `yaml:"max_results,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves query parameters and results to a YAML file.
func WriteQueryFile(path string, opts QueryOptions, results []QueryResult) error {
	qf := QueryFile{
		Query: QueryParams{
			Text:       opts.Query,
			Namespace:  opts.Namespace,
			Tag:        opts.Tag,
			MaxResults: opts.MaxResults,
		},
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
