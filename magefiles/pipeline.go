//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Lint runs the document hygiene checks over the notes corpus.
func Lint() error {
	return runBin("lint", "--root", "notes")
}

// Reindex rebuilds the full-text index from the notes corpus.
func Reindex() error {
	return runBin("index", "build", "--root", "notes", "--index-dir", "index")
}

// Toc regenerates the table of contents for the notes corpus.
func Toc() error {
	return runBin("toc", "--root", "notes", "--out", filepath.Join("notes", "toc.md"))
}

func runBin(args ...string) error {
	if err := Build(); err != nil {
		return err
	}
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
