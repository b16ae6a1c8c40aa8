// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mdscan extracts structural facts from Markdown sources using the
// goldmark AST: headings, fenced code blocks, link destinations, and named
// section bodies. It is shared by the corpus loader, the lint rules, and
// the index trace path.
package mdscan

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one Markdown heading with its source line.
type Heading struct {
	Level int
	Text  string
	Line  int
}

// CodeBlock is one fenced code block. Info is the first word of the info
// string ("python", "pycon", ...); empty when the fence has none.
type CodeBlock struct {
	Info string
	Body string
	Line int
}

// Link is one link destination with its source line.
type Link struct {
	Dest string
	Line int
}

func parse(src []byte) ast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(src))
}

// lineOf converts a byte offset into a 1-based line number.
func lineOf(src []byte, offset int) int {
	if offset < 0 || offset > len(src) {
		return 0
	}
	return 1 + bytes.Count(src[:offset], []byte{'\n'})
}

// nodeLine returns the source line of n. Inline nodes use their own text
// segment, so a link in the middle of a multi-line paragraph reports the
// line it sits on; nodes without one fall back to the nearest ancestor
// block with line segments.
func nodeLine(n ast.Node, src []byte) int {
	if off := firstSegmentOffset(n); off >= 0 {
		return lineOf(src, off)
	}
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Type() == ast.TypeBlock && cur.Lines().Len() > 0 {
			return lineOf(src, cur.Lines().At(0).Start)
		}
	}
	return 0
}

// firstSegmentOffset returns the byte offset of the first non-empty text
// segment under n, or -1 when there is none.
func firstSegmentOffset(n ast.Node) int {
	if t, ok := n.(*ast.Text); ok {
		if t.Segment.Len() > 0 {
			return t.Segment.Start
		}
		return -1
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off := firstSegmentOffset(c); off >= 0 {
			return off
		}
	}
	return -1
}

// Headings returns every heading in source order.
func Headings(src []byte) []Heading {
	doc := parse(src)

	var out []Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		out = append(out, Heading{
			Level: h.Level,
			Text:  string(h.Text(src)),
			Line:  nodeLine(h, src),
		})
		return ast.WalkContinue, nil
	})
	return out
}

// Title returns the text of the first heading, or "" when there is none.
func Title(src []byte) string {
	hs := Headings(src)
	if len(hs) == 0 {
		return ""
	}
	return hs[0].Text
}

// CodeBlocks returns every fenced code block in source order.
func CodeBlocks(src []byte) []CodeBlock {
	doc := parse(src)

	var blocks []CodeBlock
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var body bytes.Buffer
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}

		info := ""
		if lang := fcb.Language(src); lang != nil {
			info = string(lang)
		}

		blocks = append(blocks, CodeBlock{Info: info, Body: body.String()})
		return ast.WalkContinue, nil
	})

	// goldmark does not retain the opening fence position, so pair each
	// block with the matching fence line found by a source scan.
	openings := fenceOpenings(src)
	for i := range blocks {
		if i < len(openings) {
			blocks[i].Line = openings[i]
		}
	}
	return blocks
}

// fenceOpenings returns the 1-based line numbers of opening code fences.
// Tracks the fence character and length so that shorter or mismatched
// fences inside an open block do not close it.
func fenceOpenings(src []byte) []int {
	var (
		openings []int
		openChar byte
		openLen  int
		inFence  bool
	)

	for i, line := range strings.Split(string(src), "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if len(line)-len(trimmed) > 3 {
			continue
		}

		ch, n := fenceRun(trimmed)
		if n < 3 {
			continue
		}

		if !inFence {
			inFence = true
			openChar = ch
			openLen = n
			openings = append(openings, i+1)
			continue
		}

		// A closing fence carries nothing but fence characters and spaces.
		rest := strings.TrimRight(trimmed[n:], " \t\r")
		if ch == openChar && n >= openLen && rest == "" {
			inFence = false
		}
	}
	return openings
}

// fenceRun returns the fence character and run length at the start of line,
// or (0, 0) when the line does not begin with a fence character.
func fenceRun(line string) (byte, int) {
	if line == "" || (line[0] != '`' && line[0] != '~') {
		return 0, 0
	}
	ch := line[0]
	n := 0
	for n < len(line) && line[n] == ch {
		n++
	}
	return ch, n
}

// Links returns every link and autolink destination in source order.
func Links(src []byte) []Link {
	doc := parse(src)

	var out []Link
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			out = append(out, Link{Dest: string(node.Destination), Line: nodeLine(node, src)})
		case *ast.AutoLink:
			out = append(out, Link{Dest: string(node.URL(src)), Line: nodeLine(node, src)})
		}
		return ast.WalkContinue, nil
	})
	return out
}

// Section returns the body text of the section introduced by the heading
// with the given text: the lines after the heading up to the next heading
// of the same or higher level. Returns "" when the heading is not found.
func Section(src []byte, heading string) string {
	hs := Headings(src)
	lines := strings.Split(string(src), "\n")

	for i, h := range hs {
		if h.Text != heading || h.Line == 0 {
			continue
		}

		end := len(lines)
		for _, next := range hs[i+1:] {
			if next.Level <= h.Level && next.Line > 0 {
				end = next.Line - 1
				break
			}
		}

		start := h.Line
		if start > len(lines) {
			return ""
		}
		return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
	}
	return ""
}
