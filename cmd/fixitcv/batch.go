package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ats"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/export"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file-or-dir>...",
	Short: "Score many resumes and export an Excel report",
	Long: "Scores every resume JSON file given (directories are searched for *.json) " +
		"concurrently and writes a workbook with a Scores sheet and a Suggestions sheet. " +
		"A file that cannot be loaded is reported as failed without stopping the batch.",
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchOutFile     string
	batchPremium     bool
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutFile, "out", "o", "ats_report.xlsx", "Path of the Excel report")
	batchCmd.Flags().BoolVar(&batchPremium, "premium", false, "Score in premium mode")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Documents scored in parallel (default from config)")
	rootCmd.AddCommand(batchCmd)
}

// collectResumeFiles expands directories into their *.json files, sorted by path.
func collectResumeFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", arg, err)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no resume files found")
	}
	return files, nil
}

// scoreFiles scores each file with at most concurrency workers. Results keep the order
// of files.
func scoreFiles(files []string, mode ats.ScoringMode, concurrency int, opts []ats.Option) []export.BatchResult {
	results := make([]export.BatchResult, len(files))

	var g errgroup.Group
	g.SetLimit(max(concurrency, 1))
	for i, path := range files {
		g.Go(func() error {
			result := export.BatchResult{Source: filepath.Base(path)}
			doc, err := ats.LoadDocument(path)
			if err != nil {
				result.Err = err
			} else {
				result.Candidate = candidateName(doc)
				result.Score = ats.CalculateATSScore(doc, mode, opts...)
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func candidateName(doc *types.ResumeDocument) string {
	return strings.TrimSpace(doc.PersonalInfo.FirstName + " " + doc.PersonalInfo.LastName)
}

type batchSummary struct {
	Report       string `json:"report"`
	Total        int    `json:"total"`
	Scored       int    `json:"scored"`
	Insufficient int    `json:"insufficient_data"`
	Failed       int    `json:"failed"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	files, err := collectResumeFiles(args)
	if err != nil {
		return err
	}
	opts, err := scorerOptions()
	if err != nil {
		return err
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = appConfig.Batch.Concurrency
	}

	results := scoreFiles(files, ats.ModeFromPremium(batchPremium), concurrency, opts)

	summary := batchSummary{Total: len(results)}
	for _, r := range results {
		switch r.Status() {
		case export.StatusScored:
			summary.Scored++
		case export.StatusInsufficient:
			summary.Insufficient++
		default:
			summary.Failed++
			logger.WithError(r.Err).WithField("file", r.Source).Warn("failed to score resume")
		}
	}

	path, err := export.ExportBatchReport(results, batchOutFile)
	if err != nil {
		return err
	}
	summary.Report = path

	logger.WithFields(logrus.Fields{
		"report": path,
		"total":  summary.Total,
		"failed": summary.Failed,
	}).Info("batch complete")

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Scored %d of %d resumes (%d insufficient data, %d failed)\n",
		summary.Scored, summary.Total, summary.Insufficient, summary.Failed)
	_, _ = fmt.Fprintf(out, "Report: %s\n", path)
	return nil
}
