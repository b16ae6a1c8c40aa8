// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sentinel implements the separator convention used to concatenate
// several originally-distinct notes into one Markdown file. The separator is
// a token of the form <|RELATED_DOC_SEP-magic-<hex>|> on a line of its own.
// Detection accepts any hex suffix; Join always emits the canonical token.
package sentinel

import (
	"regexp"
	"strings"

	"github.com/pdiddy/notemill/pkg/types"
)

// CanonicalToken is the separator emitted when joining fragments.
const CanonicalToken = "