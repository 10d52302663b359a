package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhruska/idconvert/internal/convert"
	"github.com/jhruska/idconvert/internal/ledger"
	"github.com/jhruska/idconvert/internal/report"
	"github.com/jhruska/idconvert/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the input folder against the merge folder",
	Long: `Convert processes every CSV file in the input folder. Files that are
already converted, whose output exists, or that lack the "ID Subjektu"
column are skipped with a reason; the rest are converted in place.
Per-file failures do not stop the batch and do not change the exit
status. The only fatal condition is a missing input folder.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input", "", `folder with CSV files to convert (default "input")`)
	convertCmd.Flags().String("merge", "", `folder with supplementary ID files (default "merge")`)
	convertCmd.Flags().String("report", "", "write a run report to this file (.yaml or .json)")
	convertCmd.Flags().Bool("no-ledger", false, "do not record the run in the history ledger")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	folders := types.FoldersConfig{
		InputDir: viper.GetString("folders.input"),
		MergeDir: viper.GetString("folders.merge"),
	}
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		folders.InputDir = v
	}
	if v, _ := cmd.Flags().GetString("merge"); v != "" {
		folders.MergeDir = v
	}

	rep, err := convert.Run(folders, os.Stdout)
	if err != nil {
		return err
	}

	if noLedger, _ := cmd.Flags().GetBool("no-ledger"); !noLedger && viper.GetBool("ledger.enabled") {
		recordRun(rep)
	}

	if path, _ := cmd.Flags().GetString("report"); path != "" {
		if err := report.Write(path, rep); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

// recordRun stores the run in the history ledger. Ledger trouble is a
// warning, never a run failure.
func recordRun(rep types.RunReport) {
	led, err := ledger.Open(viper.GetString("ledger.path"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ledger unavailable: %v\n", err)
		return
	}
	defer led.Close()

	if _, err := led.Record(context.Background(), rep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
	}
}
