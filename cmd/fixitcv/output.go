package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ats"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// scorerOptions returns the engine options selected by the loaded configuration.
func scorerOptions() ([]ats.Option, error) {
	picker, err := ats.NewVerbPicker(appConfig.Scoring.VerbStrategy)
	if err != nil {
		return nil, err
	}
	return []ats.Option{ats.WithVerbPicker(picker)}, nil
}
