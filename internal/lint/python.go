// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import "fmt"

// pyProblem is one structural defect in a Python code sample. Line is
// relative to the code block body (1-based).
type pyProblem struct {
	Line    int
	Message string
}

// checkPython runs a structural balance check over a Python snippet:
// paired brackets and terminated string literals, with awareness of
// comments and triple-quoted strings. It approximates "syntactically
// valid"; it is not a Python parser.
func checkPython(src string) []pyProblem {
	type open struct {
		ch   byte
		line int
	}

	var (
		problems []pyProblem
		stack    []open
		line     = 1
	)

	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}

	i := 0
	for i < len(src) {
		c := src[i]

		switch c {
		case '\n':
			line++
			i++

		case '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}

		case '\'', '"':
			consumed, newlines, terminated := scanPyString(src[i:])
			if !terminated {
				problems = append(problems, pyProblem{
					Line:    line,
					Message: "unterminated string literal",
				})
			}
			line += newlines
			i += consumed

		case '(', '[', '{':
			stack = append(stack, open{ch: c, line: line})
			i++

		case ')', ']', '}':
			want := pairs[c]
			if len(stack) == 0 {
				problems = append(problems, pyProblem{
					Line:    line,
					Message: fmt.Sprintf("unexpected closing %q", string(c)),
				})
			} else if top := stack[len(stack)-1]; top.ch != want {
				problems = append(problems, pyProblem{
					Line:    line,
					Message: fmt.Sprintf("closing %q does not match %q opened on line %d", string(c), string(top.ch), top.line),
				})
				stack = stack[:len(stack)-1]
			} else {
				stack = stack[:len(stack)-1]
			}
			i++

		default:
			i++
		}
	}

	for _, o := range stack {
		problems = append(problems, pyProblem{
			Line:    o.line,
			Message: fmt.Sprintf("unclosed %q", string(o.ch)),
		})
	}
	return problems
}

// scanPyString consumes a Python string literal starting at src[0] (a quote
// character). It returns the bytes consumed, newlines crossed, and whether
// the literal was terminated. Single-quoted literals end at a newline;
// triple-quoted literals may span lines.
func scanPyString(src string) (consumed, newlines int, terminated bool) {
	quote := src[0]
	triple := len(src) >= 3 && src[1] == quote && src[2] == quote

	i := 1
	if triple {
		i = 3
	}

	for i < len(src) {
		c := src[i]

		if c == '\\' && i+1 < len(src) {
			if src[i+1] == '\n' {
				newlines++
			}
			i += 2
			continue
		}

		if c == '\n' {
			if !triple {
				return i, newlines, false
			}
			newlines++
			i++
			continue
		}

		if c == quote {
			if !triple {
				return i + 1, newlines, true
			}
			if i+2 < len(src) && src[i+1] == quote && src[i+2] == quote {
				return i + 3, newlines, true
			}
		}
		i++
	}
	return len(src), newlines, false
}
