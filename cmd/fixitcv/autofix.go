package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ats"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/observability"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

var autofixCmd = &cobra.Command{
	Use:   "autofix <resume.json>",
	Short: "Propose automatic fixes for a resume document",
	Long: "Builds the sparse patch of replacements that would raise the score: contact " +
		"placeholders, a synthesized summary, supplemented skills and rewritten bullets. " +
		"With --out the patched document is written to a file.",
	Args: cobra.ExactArgs(1),
	RunE: runAutoFix,
}

var (
	autofixPremium bool
	autofixOutFile string
)

func init() {
	autofixCmd.Flags().BoolVar(&autofixPremium, "premium", false, "Use premium mode")
	autofixCmd.Flags().StringVarP(&autofixOutFile, "out", "o", "", "Write the patched document to this file")
	rootCmd.AddCommand(autofixCmd)
}

func runAutoFix(cmd *cobra.Command, args []string) error {
	doc, err := ats.LoadDocument(args[0])
	if err != nil {
		return err
	}
	opts, err := scorerOptions()
	if err != nil {
		return err
	}

	fixes := ats.GetAutoFixes(doc, ats.ModeFromPremium(autofixPremium), opts...)

	if autofixOutFile != "" {
		patched := fixes.Apply(*doc)
		data, err := json.MarshalIndent(patched, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal patched document: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(autofixOutFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(autofixOutFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.WithField("path", autofixOutFile).Info("patched document written")
	}

	if jsonOutput {
		fields := fixes.Fields()
		if fields == nil {
			fields = []string{}
		}
		return writeJSON(cmd.OutOrStdout(), types.AutoFixResponse{Fixes: fixes, Fields: fields})
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintAutoFixes(fixes)
	return nil
}
