// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus walks the notes tree and loads Markdown files into
// Documents: frontmatter parsed, title extracted, sentinel fragments split,
// topic namespace derived from the relative path.
package corpus

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/notemill/internal/mdscan"
	"github.com/pdiddy/notemill/internal/sentinel"
	"github.com/pdiddy/notemill/pkg/types"
)

// defaultExtensions is used when the config names none.
var defaultExtensions = []string{".md"}

// Scan walks cfg.RootDir and loads every note file into a Document, sorted
// by path. Dot-directories are skipped; unreadable files produce a warning
// on w and are skipped rather than aborting the walk.
func Scan(cfg types.CorpusConfig, w io.Writer) ([]types.Document, error) {
	root := cfg.RootDir
	if root == "" {
		root = "."
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = defaultExtensions
	}

	var docs []types.Document
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			fmt.Fprintf(w, "warning: skipping %s: %v\n", p, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if p != root && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !hasExtension(name, exts) || strings.HasPrefix(name, ".") {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		doc, err := LoadDocument(root, filepath.ToSlash(rel))
		if err != nil {
			fmt.Fprintf(w, "warning: skipping %s: %v\n", rel, err)
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking corpus %s: %w", root, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// LoadDocument reads and parses one note file. rel is the corpus-relative,
// forward-slashed path.
func LoadDocument(root, rel string) (types.Document, error) {
	full := filepath.Join(root, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if err != nil {
		return types.Document{}, fmt.Errorf("stat: %w", err)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading: %w", err)
	}

	doc := types.Document{
		Path:      rel,
		Namespace: Namespace(rel),
		ModTime:   info.ModTime(),
		BodyLine:  1,
	}

	body := data
	var meta types.FrontMatter
	if rest, err := frontmatter.Parse(bytes.NewReader(data), &meta); err == nil {
		body = rest
		if len(rest) != len(data) {
			doc.FrontMatter = meta
			doc.HasFrontMatter = true
			doc.BodyLine = 1 + bytes.Count(data[:len(data)-len(rest)], []byte{'\n'})
		}
	}

	doc.Body = string(body)
	doc.Title = mdscan.Title(body)
	doc.WordCount = len(strings.Fields(doc.Body))

	for _, frag := range sentinel.Split(doc.Body) {
		if frag.Body == "" {
			continue
		}
		frag.Index = len(doc.Fragments)
		frag.Title = mdscan.Title([]byte(frag.Body))
		frag.Line += doc.BodyLine - 1
		doc.Fragments = append(doc.Fragments, frag)
	}

	return doc, nil
}

// Namespace derives the topic namespace from a corpus-relative path: the
// forward-slashed path with the extension stripped from the leaf, e.g.
// "modules/argparse/nargs.md" -> "modules/argparse/nargs".
func Namespace(rel string) string {
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, path.Ext(rel))
}

func hasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			return true
		}
	}
	return false
}
