package ats

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/schemas"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// DecodeDocument reads one JSON resume document from r.
func DecodeDocument(r io.Reader, source string) (*types.ResumeDocument, error) {
	var doc types.ResumeDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &DocumentError{Source: source, Message: "failed to parse resume JSON", Cause: err}
	}
	return &doc, nil
}

// ParseDocument checks data against the resume schema and decodes it. Schema violations
// unwrap to *schemas.ValidationError.
func ParseDocument(data []byte, source string) (*types.ResumeDocument, error) {
	if err := schemas.ValidateResumeJSON(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &DocumentError{Source: source, Message: "resume does not match schema", Cause: err}
		}
		return nil, &DocumentError{Source: source, Message: "failed to parse resume JSON", Cause: err}
	}
	return DecodeDocument(bytes.NewReader(data), source)
}

// LoadDocument reads, validates and decodes a JSON resume document from a file.
func LoadDocument(path string) (*types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentError{Source: path, Message: "failed to open resume file", Cause: err}
	}
	return ParseDocument(data, path)
}
