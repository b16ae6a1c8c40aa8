// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats aggregates corpus metrics by topic namespace prefix.
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/notemill/internal/mdscan"
	"github.com/pdiddy/notemill/pkg/types"
)

// NamespaceStats holds aggregate counts for one namespace prefix.
type NamespaceStats struct {
	Prefix       string `json:"prefix" yaml:"prefix"`
	Documents    int    `json:"documents" yaml:"documents"`
	Fragments    int    `json:"fragments" yaml:"fragments"`
	Words        int    `json:"words" yaml:"words"`
	CodeBlocks   int    `json:"code_blocks" yaml:"code_blocks"`
	MissingTitle int    `json:"missing_title" yaml:"missing_title"`
}

// Report is the output of one stats run.
type Report struct {
	Total    NamespaceStats   `json:"total" yaml:"total"`
	ByPrefix []NamespaceStats `json:"by_prefix" yaml:"by_prefix"`
}

// Collect groups documents by the first depth components of their
// namespace and aggregates counts per group, sorted by prefix.
func Collect(docs []types.Document, depth int) Report {
	if depth <= 0 {
		depth = 2
	}

	groups := make(map[string]*NamespaceStats)
	var report Report
	report.Total.Prefix = "total"

	for _, doc := range docs {
		prefix := namespacePrefix(doc.Namespace, depth)
		g, ok := groups[prefix]
		if !ok {
			g = &NamespaceStats{Prefix: prefix}
			groups[prefix] = g
		}

		codeBlocks := len(mdscan.CodeBlocks([]byte(doc.Body)))
		missing := 0
		if doc.Title == "" {
			missing = 1
		}

		for _, s := range []*NamespaceStats{g, &report.Total} {
			s.Documents++
			s.Fragments += len(doc.Fragments)
			s.Words += doc.WordCount
			s.CodeBlocks += codeBlocks
			s.MissingTitle += missing
		}
	}

	report.ByPrefix = make([]NamespaceStats, 0, len(groups))
	for _, g := range groups {
		report.ByPrefix = append(report.ByPrefix, *g)
	}
	sort.Slice(report.ByPrefix, func(i, j int) bool {
		return report.ByPrefix[i].Prefix < report.ByPrefix[j].Prefix
	})
	return report
}

// namespacePrefix returns the first depth path components of a namespace.
func namespacePrefix(ns string, depth int) string {
	parts := strings.Split(ns, "/")
	if len(parts) > depth {
		parts = parts[:depth]
	}
	return strings.Join(parts, "/")
}

// WriteTable renders the report as an aligned text table.
func WriteTable(w io.Writer, r Report) {
	fmt.Fprintf(w, "%-40s  %6s  %6s  %8s  %6s  %8s\n",
		"Namespace", "Docs", "Frags", "Words", "Code", "NoTitle")
	fmt.Fprintln(w, strings.Repeat("-", 84))

	for _, s := range r.ByPrefix {
		writeRow(w, s)
	}
	fmt.Fprintln(w, strings.Repeat("-", 84))
	writeRow(w, r.Total)
}

func writeRow(w io.Writer, s NamespaceStats) {
	prefix := s.Prefix
	if len(prefix) > 40 {
		prefix = prefix[:37] + "..."
	}
	fmt.Fprintf(w, "%-40s  %6d  %6d  %8d  %6d  %8d\n",
		prefix, s.Documents, s.Fragments, s.Words, s.CodeBlocks, s.MissingTitle)
}
