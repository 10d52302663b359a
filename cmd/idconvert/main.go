// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the idconvert CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhruska/idconvert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the idconvert CLI.
var rootCmd = &cobra.Command{
	Use:   "idconvert",
	Short: "Batch-convert subject-ID CSV exports",
	Long: `idconvert scans a folder of CSV exports, extracts the "ID Subjektu"
column from each file, merges in supplementary IDs from a second folder,
and writes a deduplicated, sorted single-column "ID" CSV next to each
input file.

Conversion is best effort: problems with individual files are reported
and the rest of the batch continues. Finished runs are recorded in a
local history ledger unless disabled.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./idconvert.yaml or ~/.config/idconvert/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("idconvert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "idconvert"))
		}
	}

	viper.SetEnvPrefix("IDCONVERT")
	viper.AutomaticEnv()

	viper.SetDefault("folders.input", types.DefaultInputDir)
	viper.SetDefault("folders.merge", types.DefaultMergeDir)
	viper.SetDefault("ledger.enabled", true)
	viper.SetDefault("ledger.path", types.DefaultLedgerPath)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
