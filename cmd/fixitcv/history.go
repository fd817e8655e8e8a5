package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/db"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/observability"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

var historyCmd = &cobra.Command{
	Use:   "history <resume-id>",
	Short: "Show or clear the recorded scores of a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

var (
	historyLimit int
	historyClear bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", db.DefaultScoreListLimit, "Number of scores to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete every recorded score for the resume")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	resumeID := args[0]
	if !types.ResumeIDPattern.MatchString(resumeID) {
		return fmt.Errorf("invalid resume ID %q", resumeID)
	}
	if appConfig.Database.URL == "" {
		return errors.New("history requires DATABASE_URL")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, appConfig.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if historyClear {
		n, err := database.DeleteScores(ctx, resumeID)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), map[string]any{"resume_id": resumeID, "deleted": n})
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d score(s) for %s\n", n, resumeID)
		return nil
	}

	records, err := database.ListScores(ctx, resumeID, db.ClampScoreLimit(historyLimit))
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), records)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintScoreHistory(resumeID, records)
	return nil
}
