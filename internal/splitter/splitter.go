// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package splitter writes the fragments of concatenated note files out as
// individual per-topic documents. It only ever creates new files: existing
// paths get a numeric suffix instead of being overwritten, and source
// files are left untouched.
package splitter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/notemill/internal/sentinel"
	"github.com/pdiddy/notemill/pkg/types"
)

// Summary holds counts from one split run.
type Summary struct {
	// Files is the number of concatenated files encountered.
	Files int
	// Written is the number of fragment files created.
	Written int
	// Skipped is the number of documents without a separator.
	Skipped int
}

// Run splits every concatenated document into fragment files. With an
// output directory configured, fragments land under
// <output>/<namespace>/<slug>.md; otherwise they land next to the source
// under <root>/<namespace>/. Progress is written to w.
func Run(cfg types.SplitConfig, root string, docs []types.Document, w io.Writer) (Summary, error) {
	var summary Summary
	planned := make(map[string]bool)

	for _, doc := range docs {
		if !doc.IsConcatenated() {
			summary.Skipped++
			continue
		}
		summary.Files++

		baseDir := cfg.OutputDir
		if baseDir == "" {
			baseDir = root
		}
		destDir := filepath.Join(baseDir, filepath.FromSlash(doc.Namespace))

		if !cfg.DryRun {
			if err := os.MkdirAll(destDir, 0o755); err != nil {
				return summary, fmt.Errorf("creating %s: %w", destDir, err)
			}
		}

		for _, frag := range doc.Fragments {
			dest, err := uniquePath(destDir, fragmentName(frag), planned)
			if err != nil {
				return summary, err
			}
			planned[dest] = true

			if cfg.DryRun {
				fmt.Fprintf(w, "would write %s (from %s fragment %d)\n", dest, doc.Path, frag.Index)
				continue
			}

			body := frag.Body
			if !strings.HasSuffix(body, "\n") {
				body += "\n"
			}
			if err := os.WriteFile(dest, []byte(body), 0o644); err != nil {
				return summary, fmt.Errorf("writing %s: %w", dest, err)
			}
			fmt.Fprintf(w, "wrote %s (from %s fragment %d)\n", dest, doc.Path, frag.Index)
			summary.Written++
		}
	}

	fmt.Fprintf(w, "\nfiles: %d, fragments written: %d, without separator: %d\n",
		summary.Files, summary.Written, summary.Skipped)
	return summary, nil
}

// fragmentName derives the output filename from the fragment title, or a
// positional name when the fragment has none.
func fragmentName(frag types.Fragment) string {
	if frag.Title != "" {
		return sentinel.Slug(frag.Title) + ".md"
	}
	return fmt.Sprintf("fragment-%02d.md", frag.Index)
}

// uniquePath returns destDir/name, appending -2, -3, ... while the path
// exists on disk or is already planned by this run.
func uniquePath(destDir, name string, planned map[string]bool) (string, error) {
	stem := strings.TrimSuffix(name, ".md")
	for i := 1; ; i++ {
		candidate := name
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d.md", stem, i)
		}
		dest := filepath.Join(destDir, candidate)
		if planned[dest] {
			continue
		}
		_, err := os.Stat(dest)
		switch {
		case os.IsNotExist(err):
			return dest, nil
		case err != nil:
			return "", fmt.Errorf("checking %s: %w", dest, err)
		}
	}
}
