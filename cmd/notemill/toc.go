// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notemill/internal/taxonomy"
)

var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Generate a Markdown table of contents for the corpus",
	Long: `Toc builds the topic tree from document namespaces and renders it as
a nested Markdown list with links to each note, using the note's title as
link text when it has one.`,
	RunE: runToc,
}

func runToc(cmd *cobra.Command, args []string) error {
	title := configString(cmd, "title", "toc.title")
	outFile := configString(cmd, "out", "toc.output_file")

	docs, err := scanCorpus(cmd)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outFile, err)
		}
		defer f.Close()
		out = f
	}

	tree := taxonomy.Build(docs)
	return taxonomy.RenderMarkdown(out, title, tree)
}

func init() {
	tocCmd.Flags().String("title", "Contents", "heading placed at the top of the TOC")
	tocCmd.Flags().String("out", "", "write the TOC to a file instead of stdout")

	rootCmd.AddCommand(tocCmd)
}
