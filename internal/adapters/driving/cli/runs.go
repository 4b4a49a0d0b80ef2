package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent batch runs from local history",
	RunE:  runRuns,
}

var runsRecordsCmd = &cobra.Command{
	Use:   "records [run-id]",
	Short: "Show the manifest records of a past run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsRecords,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "maximum number of runs")
	runsCmd.AddCommand(runsRecordsCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	if recordStore == nil {
		return errors.New("history store not configured")
	}

	runs, err := recordStore.ListRuns(context.Background(), runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %s\n", run.RunID, run.StartedAt.Format(time.RFC3339), run.InputPath)
		cmd.Printf("    rows %d, sourced %d, generated %d, failed %d, skipped %d\n",
			run.Rows, run.Sourced, run.Generated, run.Failed, run.Skipped)
	}
	return nil
}

func runRunsRecords(cmd *cobra.Command, args []string) error {
	if recordStore == nil {
		return errors.New("history store not configured")
	}

	records, err := recordStore.Records(context.Background(), args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println("No records for that run.")
		return nil
	}

	for _, r := range records {
		passed := "FALSE"
		if r.ValidationPassed {
			passed = "TRUE"
		}
		cmd.Printf("%s  %s  %.12s  %s  %s\n", r.Catid, r.TitleSelected, r.PathHash, passed, r.SourceIcon)
	}
	return nil
}
