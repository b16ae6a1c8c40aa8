// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notemill/internal/corpus"
	"github.com/pdiddy/notemill/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Walk the corpus and report the document inventory",
	Long: `Scan walks the corpus root, parses every Markdown note (frontmatter,
title, sentinel fragments), and prints the inventory. Unreadable files are
reported on stderr and skipped.`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	docs, err := scanCorpus(cmd)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	if len(docs) == 0 {
		fmt.Println("No documents found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-50s  %5s  %6s  %s\n", "Path", "Frags", "Words", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, doc := range docs {
		path := doc.Path
		if len(path) > 50 {
			path = path[:47] + "..."
		}
		title := doc.Title
		if len(title) > 35 {
			title = title[:32] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-50s  %5d  %6d  %s\n",
			path, len(doc.Fragments), doc.WordCount, title)
	}
	fmt.Fprintf(os.Stdout, "\n%d documents\n", len(docs))
	return nil
}

// scanCorpus loads the corpus named by the shared --root flag. Warnings
// for unreadable files go to stderr.
func scanCorpus(cmd *cobra.Command) ([]types.Document, error) {
	cfg := types.CorpusConfig{
		RootDir:    corpusRoot(cmd),
		Extensions: viper.GetStringSlice("corpus.extensions"),
	}
	return corpus.Scan(cfg, os.Stderr)
}

func init() {
	scanCmd.Flags().Bool("json", false, "output the inventory as JSON")

	rootCmd.AddCommand(scanCmd)
}
