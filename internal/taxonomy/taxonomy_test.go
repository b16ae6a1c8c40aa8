// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notemill/pkg/types"
)

func tocDocs() []types.Document {
	return []types.Document{
		{Path: "modules/json/dumps.md", Namespace: "modules/json/dumps", Title: "json.dumps"},
		{Path: "modules/json/loads.md", Namespace: "modules/json/loads", Title: "json.loads"},
		{Path: "modules/argparse.md", Namespace: "modules/argparse", Title: "argparse"},
		{Path: "readme.md", Namespace: "readme", Title: "Readme"},
	}
}

func TestBuildTree(t *testing.T) {
	root := Build(tocDocs())

	require.Len(t, root.Children, 2)
	modules := root.Children[0]
	assert.Equal(t, "modules", modules.Name)
	assert.False(t, modules.IsLeaf())

	readme := root.Children[1]
	assert.Equal(t, "readme", readme.Name)
	assert.True(t, readme.IsLeaf())
	assert.Equal(t, "readme.md", readme.DocPath)

	// Interior nodes sort before leaves.
	require.Len(t, modules.Children, 2)
	assert.Equal(t, "json", modules.Children[0].Name)
	assert.Equal(t, "argparse", modules.Children[1].Name)
	assert.True(t, modules.Children[1].IsLeaf())
}

func TestBuildNamespaceDirectoryCollision(t *testing.T) {
	// foo.md next to foo/ yields a leaf and an interior node with the
	// same name.
	docs := []types.Document{
		{Path: "modules/json.md", Namespace: "modules/json", Title: "json overview"},
		{Path: "modules/json/dumps.md", Namespace: "modules/json/dumps", Title: "json.dumps"},
	}
	root := Build(docs)

	modules := root.Children[0]
	require.Len(t, modules.Children, 2)
	assert.False(t, modules.Children[0].IsLeaf())
	assert.True(t, modules.Children[1].IsLeaf())
	assert.Equal(t, modules.Children[0].Name, modules.Children[1].Name)
}

func TestBuildEmpty(t *testing.T) {
	root := Build(nil)
	assert.Empty(t, root.Children)
}

func TestRenderMarkdown(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderMarkdown(&buf, "Contents", Build(tocDocs())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Contents\n\n"))
	assert.Contains(t, out, "- modules/\n")
	assert.Contains(t, out, "  - json/\n")
	assert.Contains(t, out, "    - [json.dumps](modules/json/dumps.md)\n")
	assert.Contains(t, out, "- [Readme](readme.md)\n")
}

func TestRenderMarkdownNoTitle(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderMarkdown(&buf, "", Build(tocDocs())))
	assert.False(t, strings.HasPrefix(buf.String(), "#"))
}

func TestRenderMarkdownUntitledLeafUsesName(t *testing.T) {
	docs := []types.Document{{Path: "a/b.md", Namespace: "a/b"}}
	var buf strings.Builder
	require.NoError(t, RenderMarkdown(&buf, "", Build(docs)))
	assert.Contains(t, buf.String(), "- [b](a/b.md)\n")
}
