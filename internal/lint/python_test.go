// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPythonClean(t *testing.T) {
	snippets := []string{
		"import json\nprint(json.dumps({'a': 1}))\n",
		"def f(x):\n    return [i for i in range(x)]\n",
		"s = \"it's fine\"\n",
		"doc = '''\nmulti\nline\n'''\n",
		"# just a comment with ( and [ unbalanced\n",
		"d = {'key': (1, 2), 'other': [3]}\n",
		"s = 'escaped \\' quote'\n",
		"",
	}
	for _, src := range snippets {
		assert.Empty(t, checkPython(src), "snippet %q", src)
	}
}

func TestCheckPythonUnclosedBracket(t *testing.T) {
	problems := checkPython("x = [1, 2\ny = 3\n")
	require.Len(t, problems, 1)
	assert.Equal(t, 1, problems[0].Line)
	assert.Contains(t, problems[0].Message, `unclosed "["`)
}

func TestCheckPythonMismatchedBracket(t *testing.T) {
	problems := checkPython("x = (1, 2]\n")
	require.Len(t, problems, 1)
	assert.Equal(t, 1, problems[0].Line)
	assert.Contains(t, problems[0].Message, "does not match")
}

func TestCheckPythonUnexpectedClose(t *testing.T) {
	problems := checkPython("x = 1)\n")
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message, "unexpected closing")
}

func TestCheckPythonUnterminatedString(t *testing.T) {
	problems := checkPython("s = 'no end\nprint(s)\n")
	require.Len(t, problems, 1)
	assert.Equal(t, 1, problems[0].Line)
	assert.Contains(t, problems[0].Message, "unterminated string")
}

func TestCheckPythonUnterminatedTripleString(t *testing.T) {
	problems := checkPython("s = '''\nstill open\n")
	require.Len(t, problems, 1)
	assert.Equal(t, 1, problems[0].Line)
}

func TestCheckPythonReportsLaterLines(t *testing.T) {
	problems := checkPython("a = 1\nb = 2\nc = (3\n")
	require.Len(t, problems, 1)
	assert.Equal(t, 3, problems[0].Line)
}
