"

// tokenRe matches a separator line, tolerating trailing whitespace.
var tokenRe = regexp.MustCompile(`^<\|RELATED_DOC_SEP-magic-[0-9a-fA-F]+\|>[ \t]*$`)

// IsToken reports whether line is a separator line.
func IsToken(line string) bool {
	return tokenRe.MatchString(strings.TrimRight(line, "\r"))
}

// Contains reports whether body holds at least one separator line.
func Contains(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		if IsToken(line) {
			return true
		}
	}
	return false
}

// Split divides body at separator lines and returns every fragment in
// order, including empty ones produced by leading, trailing, or doubled
// separators. Callers that only want real content filter on Body != "".
// Fragment bodies have surrounding blank lines trimmed; Line points at the
// first non-blank line of the fragment in the original body (1-based).
// A body without separators yields exactly one fragment.
func Split(body string) []types.Fragment {
	lines := strings.Split(body, "\n")

	var frags []types.Fragment
	start := 0

	flush := func(from, to int) {
		frag := trimFragment(lines, from, to)
		frag.Index = len(frags)
		frags = append(frags, frag)
	}

	for i, line := range lines {
		if IsToken(line) {
			flush(start, i)
			start = i + 1
		}
	}
	flush(start, len(lines))

	return frags
}

// trimFragment builds a Fragment from lines[from:to], dropping leading and
// trailing blank lines and recording where the content starts.
func trimFragment(lines []string, from, to int) types.Fragment {
	origFrom := from
	for from < to && strings.TrimSpace(lines[from]) == "" {
		from++
	}
	for to > from && strings.TrimSpace(lines[to-1]) == "" {
		to--
	}
	if from >= to {
		return types.Fragment{Line: origFrom + 1}
	}
	return types.Fragment{
		Body: strings.Join(lines[from:to], "\n"),
		Line: from + 1,
	}
}

// Join concatenates fragment bodies with the canonical separator, padded by
// blank lines, ending with a trailing newline. Because Split trims blank
// lines around each fragment, Split(Join(bodies)) recovers each non-empty,
// separator-free body with its surrounding blank lines removed; bodies that
// are already trimmed round-trip exactly.
func Join(bodies []string) string {
	var b strings.Builder
	for i, body := range bodies {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(CanonicalToken)
			b.WriteString("\n\n")
		}
		b.WriteString(strings.TrimRight(body, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// slugRe collapses every run of non-alphanumeric characters.
var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a lowercase filename stem from a fragment title,
// e.g. "ArgumentParser.add_argument()" becomes "argumentparser-add-argument".
func Slug(title string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
