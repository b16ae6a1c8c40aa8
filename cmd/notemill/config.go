// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// The config file provides defaults for settings that mirror config
// fields; an explicitly set flag always wins, the flag default applies
// when neither is given.

func configString(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func configBool(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func configInt(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func configStringSlice(cmd *cobra.Command, flag, key string) []string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetStringSlice(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	v, _ := cmd.Flags().GetStringSlice(flag)
	return v
}

func configDuration(cmd *cobra.Command, flag, key string) time.Duration {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetDuration(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	v, _ := cmd.Flags().GetDuration(flag)
	return v
}

// corpusRoot resolves the corpus root: flag first, then config, then ".".
func corpusRoot(cmd *cobra.Command) string {
	if root, _ := cmd.Flags().GetString("root"); root != "" {
		return root
	}
	if root := viper.GetString("corpus.root_dir"); root != "" {
		return root
	}
	return "."
}
