// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notemill/pkg/types"
)

func concatenatedDoc() types.Document {
	return types.Document{
		Path:      "modules/json.md",
		Namespace: "modules/json",
		Title:     "json.dumps",
		Fragments: []types.Fragment{
			{Index: 0, Title: "json.dumps", Body: "# json.dumps\n\nSerialize obj.", Line: 1},
			{Index: 1, Title: "json.loads", Body: "# json.loads\n\nParse a string.", Line: 7},
		},
	}
}

func runSplit(t *testing.T, cfg types.SplitConfig, root string, docs []types.Document) (Summary, string) {
	t.Helper()
	var buf strings.Builder
	summary, err := Run(cfg, root, docs, &buf)
	require.NoError(t, err)
	return summary, buf.String()
}

func TestSplitWritesFragments(t *testing.T) {
	root := t.TempDir()
	summary, out := runSplit(t, types.SplitConfig{}, root, []types.Document{concatenatedDoc()})

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 2, summary.Written)
	assert.Zero(t, summary.Skipped)

	data, err := os.ReadFile(filepath.Join(root, "modules", "json", "json-dumps.md"))
	require.NoError(t, err)
	assert.Equal(t, "# json.dumps\n\nSerialize obj.\n", string(data))

	_, err = os.Stat(filepath.Join(root, "modules", "json", "json-loads.md"))
	require.NoError(t, err)

	assert.Contains(t, out, "wrote")
	assert.Contains(t, out, "fragments written: 2")
}

func TestSplitSkipsPlainDocuments(t *testing.T) {
	root := t.TempDir()
	doc := types.Document{
		Path:      "a/plain.md",
		Namespace: "a/plain",
		Fragments: []types.Fragment{{Index: 0, Title: "Plain", Body: "# Plain\n"}},
	}

	summary, _ := runSplit(t, types.SplitConfig{}, root, []types.Document{doc})
	assert.Zero(t, summary.Files)
	assert.Zero(t, summary.Written)
	assert.Equal(t, 1, summary.Skipped)
}

func TestSplitOutputDir(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()

	runSplit(t, types.SplitConfig{OutputDir: outDir}, root, []types.Document{concatenatedDoc()})

	_, err := os.Stat(filepath.Join(outDir, "modules", "json", "json-dumps.md"))
	require.NoError(t, err)

	// Nothing lands under the corpus root.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSplitNeverOverwrites(t *testing.T) {
	root := t.TempDir()
	destDir := filepath.Join(root, "modules", "json")
	require.NoError(t, os.MkdirAll(destDir, 0o755))
	existing := filepath.Join(destDir, "json-dumps.md")
	require.NoError(t, os.WriteFile(existing, []byte("keep me\n"), 0o644))

	summary, _ := runSplit(t, types.SplitConfig{}, root, []types.Document{concatenatedDoc()})
	assert.Equal(t, 2, summary.Written)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(data))

	_, err = os.Stat(filepath.Join(destDir, "json-dumps-2.md"))
	require.NoError(t, err)
}

func TestSplitDuplicateTitlesWithinRun(t *testing.T) {
	root := t.TempDir()
	doc := types.Document{
		Path:      "a/dup.md",
		Namespace: "a/dup",
		Fragments: []types.Fragment{
			{Index: 0, Title: "Same", Body: "# Same\n\nfirst"},
			{Index: 1, Title: "Same", Body: "# Same\n\nsecond"},
		},
	}

	summary, _ := runSplit(t, types.SplitConfig{}, root, []types.Document{doc})
	assert.Equal(t, 2, summary.Written)

	_, err := os.Stat(filepath.Join(root, "a", "dup", "same.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "a", "dup", "same-2.md"))
	require.NoError(t, err)
}

func TestSplitUntitledFragmentUsesIndex(t *testing.T) {
	root := t.TempDir()
	doc := types.Document{
		Path:      "a/x.md",
		Namespace: "a/x",
		Fragments: []types.Fragment{
			{Index: 0, Title: "Titled", Body: "# Titled\n"},
			{Index: 1, Body: "just text"},
		},
	}

	runSplit(t, types.SplitConfig{}, root, []types.Document{doc})

	_, err := os.Stat(filepath.Join(root, "a", "x", "fragment-01.md"))
	require.NoError(t, err)
}

func TestSplitDryRun(t *testing.T) {
	root := t.TempDir()
	summary, out := runSplit(t, types.SplitConfig{DryRun: true}, root, []types.Document{concatenatedDoc()})

	assert.Equal(t, 1, summary.Files)
	assert.Zero(t, summary.Written)
	assert.Contains(t, out, "would write")

	// The namespace directory is not created either.
	_, err := os.Stat(filepath.Join(root, "modules"))
	assert.True(t, os.IsNotExist(err))
}
