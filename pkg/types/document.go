// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Fragment is one sentinel-delimited sub-document within a note file.
// A file without the separator has exactly one fragment covering the body.
type Fragment struct {
	// Index is the 0-based position of the fragment within its file.
	Index int `json:"index" yaml:"index"`

	// Title is the text of the first heading in the fragment, if any.
	Title string `json:"title" yaml:"title"`

	// Body is the fragment content with surrounding blank lines trimmed.
	Body string `json:"body" yaml:"body"`

	// Line is the 1-based line in the source file where the fragment starts.
	Line int `json:"line" yaml:"line"`
}

// FrontMatter holds the optional YAML metadata block at the top of a note.
// Fields beyond the known set are preserved in Custom.
type FrontMatter struct {
	Title       string         `json:"title,omitempty" yaml:"title,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Custom      map[string]any `json:"custom,omitempty" yaml:",inline"`
}

// Document is one Markdown note file in the corpus.
type Document struct {
	// Path is the corpus-relative file path, always forward-slashed.
	Path string `json:"path" yaml:"path"`

	// Namespace is the topic namespace: the path with the extension
	// stripped from the leaf (e.g. "modules/argparse/ArgumentParser/nargs").
	Namespace string `json:"namespace" yaml:"namespace"`

	// Title is the text of the first heading; empty when the file has none.
	Title string `json:"title" yaml:"title"`

	// FrontMatter is the parsed metadata block; zero value when absent.
	FrontMatter FrontMatter `json:"front_matter,omitempty" yaml:"front_matter,omitempty"`

	// HasFrontMatter reports whether a metadata block was present at all.
	HasFrontMatter bool `json:"has_front_matter" yaml:"has_front_matter"`

	// Body is the Markdown content with frontmatter stripped.
	Body string `json:"body" yaml:"body"`

	// BodyLine is the 1-based line in the file where Body begins; 1 when
	// the file has no frontmatter. Lint rules use it to report file lines.
	BodyLine int `json:"body_line" yaml:"body_line"`

	// Fragments are the sentinel-delimited sub-documents, empties dropped.
	Fragments []Fragment `json:"fragments" yaml:"fragments"`

	// ModTime is the file modification time.
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`

	// WordCount counts whitespace-separated words in the body.
	WordCount int `json:"word_count" yaml:"word_count"`
}

// IsConcatenated reports whether the document holds more than one fragment.
func (d Document) IsConcatenated() bool {
	return len(d.Fragments) > 1
}
