// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy builds the topic tree implied by document namespaces
// and renders it as a Markdown table of contents.
package taxonomy

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/notemill/pkg/types"
)

// Node is one level of the topic tree. Leaves carry the document path and
// title; interior nodes carry only children.
type Node struct {
	Name     string
	DocPath  string
	DocTitle string
	Children []*Node
}

// IsLeaf reports whether the node refers to a document.
func (n *Node) IsLeaf() bool {
	return n.DocPath != ""
}

// Build assembles the topic tree from document namespaces. Children are
// sorted with interior nodes before leaves, both alphabetically.
func Build(docs []types.Document) *Node {
	root := &Node{}

	for _, doc := range docs {
		parts := strings.Split(doc.Namespace, "/")
		cur := root
		for i, part := range parts {
			last := i == len(parts)-1
			child := cur.findChild(part, last)
			if child == nil {
				child = &Node{Name: part}
				cur.Children = append(cur.Children, child)
			}
			if last {
				child.DocPath = doc.Path
				child.DocTitle = doc.Title
			}
			cur = child
		}
	}

	sortTree(root)
	return root
}

// findChild locates an existing child by name. A namespace can collide
// with a directory name (foo.md next to foo/); leaves and interior nodes
// are kept separate in that case.
func (n *Node) findChild(name string, leaf bool) *Node {
	for _, c := range n.Children {
		if c.Name == name && c.IsLeaf() == leaf {
			return c
		}
	}
	return nil
}

func sortTree(n *Node) {
	sort.Slice(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsLeaf() != b.IsLeaf() {
			return !a.IsLeaf()
		}
		return a.Name < b.Name
	})
	for _, c := range n.Children {
		sortTree(c)
	}
}

// RenderMarkdown writes the tree as a nested Markdown list. Leaves render
// as links using the document title when present, the leaf name otherwise.
func RenderMarkdown(w io.Writer, title string, root *Node) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "# %s\n\n", title); err != nil {
			return err
		}
	}
	return renderChildren(w, root, 0)
}

func renderChildren(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, c := range n.Children {
		var line string
		if c.IsLeaf() {
			text := c.DocTitle
			if text == "" {
				text = c.Name
			}
			line = fmt.Sprintf("%s- [%s](%s)\n", indent, text, c.DocPath)
		} else {
			line = fmt.Sprintf("%s- %s/\n", indent, c.Name)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if err := renderChildren(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
