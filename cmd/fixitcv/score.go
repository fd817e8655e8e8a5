package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ats"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/db"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/observability"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json>",
	Short: "Score a resume document",
	Long: "Scores a resume JSON document and prints the overall score, the five dimension " +
		"scores and the suggestions. Documents with too little content are reported as " +
		"insufficient data instead of being scored.",
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

var (
	scorePremium  bool
	scoreResumeID string
)

func init() {
	scoreCmd.Flags().BoolVar(&scorePremium, "premium", false, "Score in premium mode (institution bonus)")
	scoreCmd.Flags().StringVar(&scoreResumeID, "save", "", "Record the score in history under this resume ID (requires DATABASE_URL)")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	doc, err := ats.LoadDocument(args[0])
	if err != nil {
		return err
	}
	opts, err := scorerOptions()
	if err != nil {
		return err
	}

	score := ats.CalculateATSScore(doc, ats.ModeFromPremium(scorePremium), opts...)

	if scoreResumeID != "" && score != nil {
		if err := saveScore(cmd.Context(), scoreResumeID, score); err != nil {
			return err
		}
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), types.ScoreResponse{
			ResumeID:         scoreResumeID,
			Score:            score,
			InsufficientData: score == nil,
		})
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if score == nil {
		printer.PrintInsufficientData()
		return nil
	}
	printer.PrintATSScore(score)
	return nil
}

func saveScore(ctx context.Context, resumeID string, score *types.ATSScore) error {
	if !types.ResumeIDPattern.MatchString(resumeID) {
		return fmt.Errorf("invalid resume ID %q", resumeID)
	}
	if appConfig.Database.URL == "" {
		return errors.New("--save requires DATABASE_URL")
	}

	database, err := db.Connect(ctx, appConfig.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	record, err := database.SaveScore(ctx, db.ScoreInput{
		ResumeID: resumeID,
		Premium:  scorePremium,
		Score:    score,
	})
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"resume_id":  resumeID,
		"history_id": record.ID.String(),
	}).Info("score recorded")
	return nil
}
