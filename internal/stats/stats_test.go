// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notemill/pkg/types"
)

func statsDocs() []types.Document {
	return []types.Document{
		{
			Namespace: "modules/json/dumps",
			Title:     "json.dumps",
			Body:      "# json.dumps\n\n```python\nimport json\n```\n",
			WordCount: 5,
		},
		{
			Namespace: "modules/json/loads",
			Title:     "json.loads",
			Body:      "# json.loads\n",
			WordCount: 2,
			Fragments: []types.Fragment{{Index: 0}, {Index: 1}},
		},
		{
			Namespace: "modules/argparse/parser",
			Title:     "ArgumentParser",
			Body:      "# ArgumentParser\n",
			WordCount: 2,
		},
		{
			Namespace: "notes/pytest",
			Body:      "no heading\n",
			WordCount: 2,
		},
	}
}

func TestCollectGroupsByPrefix(t *testing.T) {
	report := Collect(statsDocs(), 2)

	require.Len(t, report.ByPrefix, 3)
	assert.Equal(t, "modules/argparse", report.ByPrefix[0].Prefix)
	assert.Equal(t, "modules/json", report.ByPrefix[1].Prefix)
	assert.Equal(t, "notes/pytest", report.ByPrefix[2].Prefix)

	js := report.ByPrefix[1]
	assert.Equal(t, 2, js.Documents)
	assert.Equal(t, 2, js.Fragments)
	assert.Equal(t, 7, js.Words)
	assert.Equal(t, 1, js.CodeBlocks)
	assert.Zero(t, js.MissingTitle)
}

func TestCollectTotals(t *testing.T) {
	report := Collect(statsDocs(), 2)

	assert.Equal(t, 4, report.Total.Documents)
	assert.Equal(t, 2, report.Total.Fragments)
	assert.Equal(t, 11, report.Total.Words)
	assert.Equal(t, 1, report.Total.CodeBlocks)
	assert.Equal(t, 1, report.Total.MissingTitle)
}

func TestCollectDepthOne(t *testing.T) {
	report := Collect(statsDocs(), 1)

	require.Len(t, report.ByPrefix, 2)
	assert.Equal(t, "modules", report.ByPrefix[0].Prefix)
	assert.Equal(t, 3, report.ByPrefix[0].Documents)
	assert.Equal(t, "notes", report.ByPrefix[1].Prefix)
}

func TestCollectDefaultDepth(t *testing.T) {
	// Zero depth falls back to two components.
	report := Collect(statsDocs(), 0)
	require.Len(t, report.ByPrefix, 3)
}

func TestCollectShallowNamespace(t *testing.T) {
	docs := []types.Document{{Namespace: "readme", Title: "Readme", WordCount: 1}}
	report := Collect(docs, 2)

	require.Len(t, report.ByPrefix, 1)
	assert.Equal(t, "readme", report.ByPrefix[0].Prefix)
}

func TestCollectEmpty(t *testing.T) {
	report := Collect(nil, 2)
	assert.Empty(t, report.ByPrefix)
	assert.Zero(t, report.Total.Documents)
}

func TestWriteTable(t *testing.T) {
	var buf strings.Builder
	WriteTable(&buf, Collect(statsDocs(), 2))

	out := buf.String()
	assert.Contains(t, out, "Namespace")
	assert.Contains(t, out, "modules/json")
	assert.Contains(t, out, "total")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, three groups, separator, total.
	assert.Len(t, lines, 7)
}
