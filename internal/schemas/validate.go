// Package schemas validates raw resume JSON against the bundled JSON Schema before it is
// decoded into types.ResumeDocument.
package schemas

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_document.schema.json
var resumeDocumentSchema []byte

// ResumeDocumentSchemaName identifies the embedded schema in SchemaLoadError values.
const ResumeDocumentSchemaName = "resume_document.schema.json"

var (
	resumeSchemaOnce sync.Once
	resumeSchema     *gojsonschema.Schema
	resumeSchemaErr  error
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Fields returns the failing field paths in report order.
func (ve *ValidationError) Fields() []string {
	fields := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		fields[i] = e.Field
	}
	return fields
}

// ResumeDocumentSchema returns a copy of the embedded schema source.
func ResumeDocumentSchema() []byte {
	out := make([]byte, len(resumeDocumentSchema))
	copy(out, resumeDocumentSchema)
	return out
}

func compiledResumeSchema() (*gojsonschema.Schema, error) {
	resumeSchemaOnce.Do(func() {
		resumeSchema, resumeSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeDocumentSchema))
		if resumeSchemaErr != nil {
			resumeSchemaErr = &SchemaLoadError{
				Path:    ResumeDocumentSchemaName,
				Message: "embedded schema failed to compile",
				Cause:   resumeSchemaErr,
			}
		}
	})
	return resumeSchema, resumeSchemaErr
}

// ValidateResumeJSON checks raw JSON against the resume document schema. Malformed JSON
// is reported as a plain error; schema violations as *ValidationError.
func ValidateResumeJSON(data []byte) error {
	schema, err := compiledResumeSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return toValidationError(result)
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbsPath)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + jsonAbsPath)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaAbsPath,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
