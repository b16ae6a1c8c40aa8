package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that probe external URLs.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "notemill/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CorpusConfig holds settings for locating and scanning the notes corpus.
type CorpusConfig struct {
	// RootDir is the base directory of the Markdown corpus.
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// Extensions lists the file extensions treated as notes (default [".md"]).
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// SplitConfig holds settings for the sentinel split stage.
type SplitConfig struct {
	// OutputDir is the directory where per-topic fragment files are written.
	// Empty means write under the source document's namespace directory.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DryRun reports what would be written without creating files.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// LintConfig holds settings for the document-hygiene lint stage.
type LintConfig struct {
	HTTPConfig `yaml:",inline"`

	// Rules lists enabled rule names. Empty enables every rule.
	// Known rules: title, code-block, xref, sentinel, frontmatter.
	Rules []string `json:"rules,omitempty" yaml:"rules,omitempty"`

	// External enables HTTP probing of absolute link targets.
	External bool `json:"external" yaml:"external"`

	// MaxRetries bounds retry attempts when probing rate-limited hosts.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// IndexConfig holds settings for the full-text index stage.
type IndexConfig struct {
	// IndexDir is the directory holding the SQLite database and exports.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// TocConfig holds settings for table-of-contents generation.
type TocConfig struct {
	// Title is the heading placed at the top of the generated TOC.
	Title string `json:"title" yaml:"title"`

	// OutputFile is the file the TOC is written to. Empty means stdout.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// ToolConfig groups all stage configurations.
type ToolConfig struct {
	Corpus CorpusConfig `json:"corpus" yaml:"corpus"`
	Split  SplitConfig  `json:"split" yaml:"split"`
	Lint   LintConfig   `json:"lint" yaml:"lint"`
	Index  IndexConfig  `json:"index" yaml:"index"`
	Toc    TocConfig    `json:"toc" yaml:"toc"`
}
