// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Severity classifies a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one document-hygiene problem located in the corpus.
type Finding struct {
	// Rule is the name of the rule that produced the finding.
	Rule string `json:"rule" yaml:"rule"`

	// Severity is error or warning.
	Severity Severity `json:"severity" yaml:"severity"`

	// Path is the corpus-relative path of the offending file.
	Path string `json:"path" yaml:"path"`

	// Line is the 1-based line number, 0 when the finding is file-level.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// Message describes the problem.
	Message string `json:"message" yaml:"message"`
}

// LintReport aggregates the findings of one lint run.
type LintReport struct {
	// Checked is the number of documents examined.
	Checked int `json:"checked" yaml:"checked"`

	// Errors and Warnings count findings by severity.
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`

	// Findings is sorted by path, then line, then rule.
	Findings []Finding `json:"findings" yaml:"findings"`

	// Timestamp records when the run finished.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Clean reports whether the run produced no findings at all.
func (r LintReport) Clean() bool {
	return len(r.Findings) == 0
}
