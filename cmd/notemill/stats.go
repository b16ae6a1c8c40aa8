// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notemill/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print corpus statistics by topic namespace",
	Long: `Stats aggregates the corpus by namespace prefix: document, fragment,
word, and code block counts, plus documents missing a title heading.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	depth, _ := cmd.Flags().GetInt("depth")
	format, _ := cmd.Flags().GetString("format")

	docs, err := scanCorpus(cmd)
	if err != nil {
		return err
	}

	report := stats.Collect(docs, depth)

	switch format {
	case "text", "":
		stats.WriteTable(os.Stdout, report)
		return nil
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling stats: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use text or yaml", format)
	}
}

func init() {
	statsCmd.Flags().Int("depth", 2, "number of namespace components to group by")
	statsCmd.Flags().String("format", "text", "output format: text or yaml")

	rootCmd.AddCommand(statsCmd)
}
