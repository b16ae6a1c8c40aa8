// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sentinel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsToken(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"canonical token", CanonicalToken, true},
		{"other hex suffix", "<|RELATED_DOC_SEP-magic-00ff00ff00ff00ff00ff00ff|>", true},
		{"short hex suffix", "<|RELATED_DOC_SEP-magic-af1b|>", true},
		{"trailing spaces", CanonicalToken + "   ", true},
		{"trailing carriage return", CanonicalToken + "\r", true},
		{"leading text", "x" + CanonicalToken, false},
		{"trailing text", CanonicalToken + " note", false},
		{"non-hex suffix", "<|RELATED_DOC_SEP-magic-zzzz|>", false},
		{"empty suffix", "<|RELATED_DOC_SEP-magic-|>", false},
		{"plain prose", "just a line of text", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsToken(tt.line))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantBodies []string
		wantLines  []int
	}{
		{
			name:       "no separator yields one fragment",
			body:       "# json.dumps\n\nSerialize obj to JSON.\n",
			wantBodies: []string{"# json.dumps\n\nSerialize obj to JSON."},
			wantLines:  []int{1},
		},
		{
			name: "two fragments",
			body: "# First\n\nbody one\n\n" + CanonicalToken + "\n\n# Second\n\nbody two\n",
			wantBodies: []string{
				"# First\n\nbody one",
				"# Second\n\nbody two",
			},
			wantLines: []int{1, 7},
		},
		{
			name:       "leading separator yields empty first fragment",
			body:       CanonicalToken + "\n\n# Only\n",
			wantBodies: []string{"", "# Only"},
			wantLines:  []int{1, 3},
		},
		{
			name:       "doubled separator yields empty middle fragment",
			body:       "# A\n" + CanonicalToken + "\n" + CanonicalToken + "\n# B\n",
			wantBodies: []string{"# A", "", "# B"},
			wantLines:  []int{1, 3, 4},
		},
		{
			name:       "empty body yields one empty fragment",
			body:       "",
			wantBodies: []string{""},
			wantLines:  []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frags := Split(tt.body)
			require.Len(t, frags, len(tt.wantBodies))
			for i, frag := range frags {
				assert.Equal(t, tt.wantBodies[i], frag.Body, "fragment %d body", i)
				assert.Equal(t, tt.wantLines[i], frag.Line, "fragment %d line", i)
				assert.Equal(t, i, frag.Index, "fragment %d index", i)
			}
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("a\n"+CanonicalToken+"\nb"))
	assert.False(t, Contains("a\nb\nc"))
	assert.False(t, Contains("mentioned inline: "+CanonicalToken+" here"))
}

func TestJoinSplitRoundTrip(t *testing.T) {
	bodies := []string{
		"# argparse.ArgumentParser\n\nCreates a parser.",
		"# add_argument\n\nDefines an argument.",
		"# nargs\n\nControls arity.",
	}

	joined := Join(bodies)
	assert.Contains(t, joined, CanonicalToken)

	frags := Split(joined)
	require.Len(t, frags, len(bodies))
	for i, frag := range frags {
		assert.Equal(t, bodies[i], frag.Body)
	}
}

func TestJoinSplitTrimsSurroundingBlankLines(t *testing.T) {
	bodies := []string{
		"# json.dumps\n\nSerialize obj.\n",
		"# json.loads\n\nParse a string.\n",
	}

	frags := Split(Join(bodies))
	require.Len(t, frags, len(bodies))
	for i, frag := range frags {
		assert.Equal(t, strings.TrimRight(bodies[i], "\n"), frag.Body, "fragment %d", i)
	}
}

func TestJoinSingleBody(t *testing.T) {
	joined := Join([]string{"# Solo\n\ntext\n"})
	assert.Equal(t, "# Solo\n\ntext\n", joined)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"json.dumps() — indent", "json-dumps-indent"},
		{"ArgumentParser.add_argument", "argumentparser-add-argument"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"---", "untitled"},
		{"", "untitled"},
		{"b64encode", "b64encode"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.title), "Slug(%q)", tt.title)
	}
}
