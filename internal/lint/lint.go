// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lint runs document-hygiene rules over a scanned corpus: title
// presence, code block shape, cross-reference resolution, sentinel
// well-formedness, and frontmatter validation.
package lint

import (
	"context"
	"sort"
	"time"

	"github.com/pdiddy/notemill/internal/httputil"
	"github.com/pdiddy/notemill/pkg/types"
)

// ruleFunc checks one document and returns its findings.
type ruleFunc func(ctx context.Context, r *Runner, doc types.Document) []types.Finding

// ruleOrder fixes the evaluation order; output ordering is re-sorted by
// path/line/rule regardless.
var ruleOrder = []string{"title", "code-block", "xref", "sentinel", "frontmatter"}

var rules = map[string]ruleFunc{
	"title":       checkTitle,
	"code-block":  checkCodeBlocks,
	"xref":        checkXrefs,
	"sentinel":    checkSentinel,
	"frontmatter": checkFrontMatter,
}

// Runner executes the enabled lint rules over a corpus.
type Runner struct {
	cfg    types.LintConfig
	root   string
	docs   []types.Document
	paths  map[string]bool
	prober *httputil.Prober
}

// NewRunner builds a Runner. root is the corpus root directory, used to
// resolve cross-references against files that are not themselves notes.
func NewRunner(cfg types.LintConfig, root string, docs []types.Document) *Runner {
	paths := make(map[string]bool, len(docs))
	for _, d := range docs {
		paths[d.Path] = true
	}

	r := &Runner{cfg: cfg, root: root, docs: docs, paths: paths}
	if cfg.External {
		r.prober = httputil.NewProber(cfg.HTTPConfig, cfg.MaxRetries)
	}
	return r
}

// enabled reports whether the named rule runs. An empty rule list in the
// config enables everything.
func (r *Runner) enabled(name string) bool {
	if len(r.cfg.Rules) == 0 {
		return true
	}
	for _, n := range r.cfg.Rules {
		if n == name {
			return true
		}
	}
	return false
}

// Run evaluates the enabled rules over every document and returns the
// aggregated report. Findings are sorted by path, then line, then rule.
func (r *Runner) Run(ctx context.Context) (types.LintReport, error) {
	report := types.LintReport{Checked: len(r.docs)}

	for _, doc := range r.docs {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		for _, name := range ruleOrder {
			if !r.enabled(name) {
				continue
			}
			report.Findings = append(report.Findings, rules[name](ctx, r, doc)...)
		}
	}

	sort.Slice(report.Findings, func(i, j int) bool {
		a, b := report.Findings[i], report.Findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return a.Message < b.Message
	})

	for _, f := range report.Findings {
		switch f.Severity {
		case types.SeverityError:
			report.Errors++
		case types.SeverityWarning:
			report.Warnings++
		}
	}

	report.Timestamp = time.Now()
	return report, nil
}

// fileLine converts a body-relative line to a file line for doc.
func fileLine(doc types.Document, bodyLine int) int {
	if bodyLine <= 0 {
		return 0
	}
	return doc.BodyLine - 1 + bodyLine
}
