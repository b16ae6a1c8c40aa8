// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notemill/internal/sentinel"
	"github.com/pdiddy/notemill/pkg/types"
)

// writeNote creates a note file under root, making parent directories.
func writeNote(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestNamespace(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"modules/argparse/nargs.md", "modules/argparse/nargs"},
		{"index.md", "index"},
		{"notes/builtin_modules/json/dumps.md", "notes/builtin_modules/json/dumps"},
		{"no_extension", "no_extension"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Namespace(tt.rel), "Namespace(%q)", tt.rel)
	}
}

func TestLoadDocumentPlain(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "modules/json/dumps.md",
		"# json.dumps\n\nSerialize obj to a JSON string.\n")

	doc, err := LoadDocument(root, "modules/json/dumps.md")
	require.NoError(t, err)

	assert.Equal(t, "modules/json/dumps.md", doc.Path)
	assert.Equal(t, "modules/json/dumps", doc.Namespace)
	assert.Equal(t, "json.dumps", doc.Title)
	assert.Equal(t, 1, doc.BodyLine)
	assert.False(t, doc.HasFrontMatter)
	assert.Equal(t, 8, doc.WordCount)
	require.Len(t, doc.Fragments, 1)
	assert.Equal(t, "json.dumps", doc.Fragments[0].Title)
	assert.False(t, doc.IsConcatenated())
}

func TestLoadDocumentFrontMatter(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "notes/pytest/fixtures.md",
		"---\ntitle: Pytest fixtures\ntags:\n  - pytest\n  - testing\n---\n\n# Fixtures\n\nBody text.\n")

	doc, err := LoadDocument(root, "notes/pytest/fixtures.md")
	require.NoError(t, err)

	assert.True(t, doc.HasFrontMatter)
	assert.Equal(t, "Pytest fixtures", doc.FrontMatter.Title)
	assert.Equal(t, []string{"pytest", "testing"}, doc.FrontMatter.Tags)
	assert.Equal(t, "Fixtures", doc.Title)
	assert.Equal(t, 7, doc.BodyLine)
	assert.NotContains(t, doc.Body, "---")
}

func TestLoadDocumentConcatenated(t *testing.T) {
	root := t.TempDir()
	content := "# First note\n\nalpha\n\n" + sentinel.CanonicalToken + "\n\n# Second note\n\nbeta\n"
	writeNote(t, root, "modules/datetime/now.md", content)

	doc, err := LoadDocument(root, "modules/datetime/now.md")
	require.NoError(t, err)

	assert.True(t, doc.IsConcatenated())
	require.Len(t, doc.Fragments, 2)
	assert.Equal(t, "First note", doc.Fragments[0].Title)
	assert.Equal(t, 1, doc.Fragments[0].Line)
	assert.Equal(t, "Second note", doc.Fragments[1].Title)
	assert.Equal(t, 7, doc.Fragments[1].Line)
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "b/two.md", "# Two\n")
	writeNote(t, root, "a/one.md", "# One\n")
	writeNote(t, root, "a/skip.txt", "not a note")
	writeNote(t, root, ".hidden/ignored.md", "# Hidden\n")

	var warnings strings.Builder
	docs, err := Scan(types.CorpusConfig{RootDir: root}, &warnings)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "a/one.md", docs[0].Path)
	assert.Equal(t, "b/two.md", docs[1].Path)
	assert.Empty(t, warnings.String())
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(types.CorpusConfig{RootDir: filepath.Join(t.TempDir(), "nope")}, os.Stderr)
	require.Error(t, err)
}

func TestScanSkipsUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}
	root := t.TempDir()
	writeNote(t, root, "a/one.md", "# One\n")
	writeNote(t, root, "locked/hidden.md", "# Hidden\n")

	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	var warnings strings.Builder
	docs, err := Scan(types.CorpusConfig{RootDir: root}, &warnings)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "a/one.md", docs[0].Path)
	assert.Contains(t, warnings.String(), "locked")
}

func TestScanEmptyCorpus(t *testing.T) {
	root := t.TempDir()
	docs, err := Scan(types.CorpusConfig{RootDir: root}, os.Stderr)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestScanCustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "a/one.markdown", "# One\n")
	writeNote(t, root, "a/two.md", "# Two\n")

	cfg := types.CorpusConfig{RootDir: root, Extensions: []string{".markdown"}}
	docs, err := Scan(cfg, os.Stderr)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "a/one.markdown", docs[0].Path)
	assert.Equal(t, "a/one", docs[0].Namespace)
}
