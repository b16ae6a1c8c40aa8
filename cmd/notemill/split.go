// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notemill/internal/splitter"
	"github.com/pdiddy/notemill/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split concatenated note files into per-topic documents",
	Long: `Split finds files joined by the separator token and writes each
fragment out as its own document, named after the fragment's first heading.
Existing files are never overwritten: name collisions get a numeric suffix.
Source files are left untouched.`,
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	outputDir := configString(cmd, "out", "split.output_dir")
	dryRun := configBool(cmd, "dry-run", "split.dry_run")

	docs, err := scanCorpus(cmd)
	if err != nil {
		return err
	}

	cfg := types.SplitConfig{OutputDir: outputDir, DryRun: dryRun}
	_, err = splitter.Run(cfg, corpusRoot(cmd), docs, os.Stdout)
	return err
}

func init() {
	splitCmd.Flags().String("out", "", "output directory for fragment files (default: under the corpus root)")
	splitCmd.Flags().Bool("dry-run", false, "report what would be written without creating files")

	rootCmd.AddCommand(splitCmd)
}
