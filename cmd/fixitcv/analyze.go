package main

import (
	"github.com/spf13/cobra"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ats"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/observability"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.json>",
	Short: "Show the premium keyword analysis",
	Long:  "Prints keyword coverage, found and missing industry keywords and the industry benchmark. Requires --premium.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var analyzePremium bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzePremium, "premium", false, "Use premium mode (required for the analysis)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	doc, err := ats.LoadDocument(args[0])
	if err != nil {
		return err
	}

	scorer := ats.NewScorer(doc, ats.ModeFromPremium(analyzePremium))
	analysis := scorer.DetailedAnalysis()

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), types.AnalysisResponse{
			Analysis:         analysis,
			InsufficientData: analyzePremium && !scorer.HasMinimumContent(),
		})
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if analyzePremium && !scorer.HasMinimumContent() {
		printer.PrintInsufficientData()
		return nil
	}
	printer.PrintAnalysis(analysis)
	return nil
}
