// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notemill/internal/lint"
	"github.com/pdiddy/notemill/pkg/types"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run document-hygiene checks over the corpus",
	Long: `Lint checks every note for hygiene problems: missing title headings,
fenced code blocks without a language or with structurally broken Python,
dangling cross-references, malformed sentinel fragments, and invalid
frontmatter.

External http(s) links are only probed with --external. The exit status is
non-zero when any error-severity finding exists.`,
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	rules := configStringSlice(cmd, "rules", "lint.rules")
	external := configBool(cmd, "external", "lint.external")
	timeout := configDuration(cmd, "timeout", "lint.timeout")
	format, _ := cmd.Flags().GetString("format")
	outFile, _ := cmd.Flags().GetString("out")

	docs, err := scanCorpus(cmd)
	if err != nil {
		return err
	}

	cfg := types.LintConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: viper.GetString("lint.user_agent"),
		},
		Rules:      rules,
		External:   external,
		MaxRetries: viper.GetInt("lint.max_retries"),
	}

	runner := lint.NewRunner(cfg, corpusRoot(cmd), docs)
	report, err := runner.Run(context.Background())
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

	if err := writeLintReport(out, report, format); err != nil {
		return err
	}

	if report.Errors > 0 {
		return fmt.Errorf("lint found %d error(s)", report.Errors)
	}
	return nil
}

func writeLintReport(w io.Writer, report types.LintReport, format string) error {
	switch format {
	case "text", "":
		if report.Clean() {
			fmt.Fprintf(w, "%d documents checked, no findings\n", report.Checked)
			return nil
		}
		for _, f := range report.Findings {
			if f.Line > 0 {
				fmt.Fprintf(w, "%s:%d: %s [%s] %s\n", f.Path, f.Line, f.Severity, f.Rule, f.Message)
			} else {
				fmt.Fprintf(w, "%s: %s [%s] %s\n", f.Path, f.Severity, f.Rule, f.Message)
			}
		}
		fmt.Fprintf(w, "\n%d documents checked: %d error(s), %d warning(s)\n",
			report.Checked, report.Errors, report.Warnings)
		return nil
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

func init() {
	lintCmd.Flags().StringSlice("rules", nil, "rules to run: title, code-block, xref, sentinel, frontmatter (default all)")
	lintCmd.Flags().Bool("external", false, "probe external http(s) link targets")
	lintCmd.Flags().Duration("timeout", 10*time.Second, "HTTP timeout for external link probes")
	lintCmd.Flags().String("format", "text", "report format: text, yaml, or json")
	lintCmd.Flags().String("out", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(lintCmd)
}
