package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json>",
	Short: "Validate a resume document against the JSON schema",
	Long:  "Checks a resume JSON file against the built-in resume document schema, or against --schema when given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Validate against this schema file instead of the built-in one")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var err error
	if validateSchemaPath != "" {
		err = schemas.ValidateJSON(validateSchemaPath, args[0])
	} else {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], readErr)
		}
		err = schemas.ValidateResumeJSON(data)
	}

	out := cmd.OutOrStdout()
	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		_, _ = fmt.Fprintln(out, "Validation passed")
		return nil
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprintln(out, "Validation failed:")
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%d schema violation(s)", len(validationErr.Errors))
	default:
		return err
	}
}
