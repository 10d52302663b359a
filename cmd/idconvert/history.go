// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhruska/idconvert/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversion runs from the ledger",
	Long: `History lists the runs recorded in the local ledger, newest first.
Use --run with a run ID to see the per-file outcomes of one run.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 10, "maximum number of runs to show")
	historyCmd.Flags().Int64("run", 0, "show per-file outcomes for this run ID")
	historyCmd.Flags().Bool("json", false, "print output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	led, err := ledger.Open(viper.GetString("ledger.path"))
	if err != nil {
		return err
	}
	defer led.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	if runID, _ := cmd.Flags().GetInt64("run"); runID != 0 {
		files, err := led.Files(context.Background(), runID)
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(files)
		}
		if len(files) == 0 {
			fmt.Printf("No files recorded for run %d.\n", runID)
			return nil
		}

		fmt.Fprintf(os.Stdout, "%-40s  %-24s  %6s  %s\n", "File", "Status", "IDs", "Detail")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
		for _, f := range files {
			fmt.Fprintf(os.Stdout, "%-40s  %-24s  %6d  %s\n", f.Name, f.Status, f.IDs, f.Detail)
		}
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := led.Runs(context.Background(), limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-20s  %-20s  %9s  %9s  %7s  %6s\n",
		"Run", "Started", "Input", "Merge IDs", "Converted", "Skipped", "Failed")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-5d  %-20s  %-20s  %9d  %9d  %7d  %6d\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.InputDir,
			r.MergeIDs, r.Converted, r.Skipped, r.Failed)
	}
	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}
