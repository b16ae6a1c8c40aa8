// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notemill CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the notemill CLI.
var rootCmd = &cobra.Command{
	Use:   "notemill",
	Short: "Maintain a corpus of Markdown reference notes",
	Long: `notemill maintains a corpus of Markdown reference notes organized by
topic namespace. It understands the separator convention used to concatenate
related notes into one file, and provides the maintenance stages as
subcommands: scan, split, lint, index, stats, and toc.

Each stage reads the corpus from --root (default "."). Stages compose via
the shell; none of them modifies an existing file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./notemill.yaml or ~/.config/notemill/config.yaml)")
	rootCmd.PersistentFlags().String("root", "", "corpus root directory (default \".\")")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notemill")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notemill"))
		}
	}

	viper.SetEnvPrefix("NOTEMILL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
