// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notemill/internal/index"
	"github.com/pdiddy/notemill/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the full-text index (build, search, export)",
	Long: `Index manages a local SQLite full-text index over document titles and
bodies. Use subcommands to build it incrementally, query it, or export it.`,
}

// --- build subcommand ---

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Index the corpus incrementally",
	Long: `Build scans the corpus and indexes every document into a SQLite
database with FTS5 search. Unchanged files are skipped on subsequent runs;
rows for deleted files are pruned.`,
	RunE: runIndexBuild,
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	docs, err := scanCorpus(cmd)
	if err != nil {
		return err
	}

	summary, err := store.Build(context.Background(), docs, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d document(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var indexSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query the index with full-text search and filters",
	Long: `Search queries the index using FTS5 full-text search, structured
filters (namespace prefix, tag), or a combination of both. Results carry a
contextual snippet for full-text queries.

Use --trace with a document path and --section with a heading to view the
source text behind a result. Use --save to write the query and its results
to a YAML file for later reuse.`,
	RunE: runIndexSearch,
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	tracePath, _ := cmd.Flags().GetString("trace")
	section, _ := cmd.Flags().GetString("section")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	// Trace mode: show the source section behind a result.
	if tracePath != "" {
		if section == "" {
			return fmt.Errorf("--trace requires --section with the heading to show")
		}
		text, err := store.Trace(context.Background(), tracePath, section)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --namespace, or --tag")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	if saveFile, _ := cmd.Flags().GetString("save"); saveFile != "" {
		if err := index.WriteQueryFile(saveFile, opts, results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved query to %s\n", saveFile)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []index.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-45s  %-30s  %s\n", "Rank", "Path", "Title", "Snippet")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		path := r.Path
		if len(path) > 45 {
			path = path[:42] + "..."
		}
		title := r.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		snippet := strings.ReplaceAll(r.Snippet, "\n", " ")
		if len(snippet) > 40 {
			snippet = snippet[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-45s  %-30s  %s\n", i+1, path, title, snippet)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the index to YAML or JSON",
	Long: `Export writes the full index (or a filtered subset) to
<index-dir>/export.yaml or export.json. Supports the same filter flags as
search for partial exports.`,
	RunE: runIndexExport,
}

func runIndexExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	indexDir := configString(cmd, "index-dir", "index.index_dir")

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.yaml\n", indexDir)
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.json\n", indexDir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*index.Store, error) {
	cfg := types.IndexConfig{
		IndexDir:   configString(cmd, "index-dir", "index.index_dir"),
		MaxResults: configInt(cmd, "max-results", "index.max_results"),
	}
	return index.NewStore(cfg, corpusRoot(cmd))
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	namespace, _ := cmd.Flags().GetString("namespace")
	tag, _ := cmd.Flags().GetString("tag")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.QueryOptions{
		Query:      queryText,
		Namespace:  namespace,
		Tag:        tag,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	indexCmd.PersistentFlags().String("index-dir", "index", "directory for the index database and exports")
	indexCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Search flags.
	indexSearchCmd.Flags().String("query", "", "full-text search query")
	indexSearchCmd.Flags().String("namespace", "", "filter by topic namespace prefix")
	indexSearchCmd.Flags().String("tag", "", "filter by frontmatter tag")
	indexSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexSearchCmd.Flags().String("trace", "", "show source text for a document path")
	indexSearchCmd.Flags().String("section", "", "heading to show with --trace")
	indexSearchCmd.Flags().String("save", "", "save the query and results to a YAML file")
	indexSearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	indexExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	indexExportCmd.Flags().String("namespace", "", "filter by namespace prefix for partial export")
	indexExportCmd.Flags().String("tag", "", "filter by tag for partial export")
	indexExportCmd.Flags().Int("limit", 0, "maximum entries to export (0 = all)")

	// Wire subcommands.
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexSearchCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
