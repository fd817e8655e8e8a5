package types

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ResumeIDPattern restricts resume identifiers to safe tokens.
var ResumeIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// YearMonthPattern matches dates stored as YYYY-MM (a trailing -DD is tolerated).
var YearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])(-\d{2})?$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the resume-specific tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		RegisterResumeValidators(validate)
	})
	return validate
}

// RegisterResumeValidators registers the custom tags used by resume request types.
func RegisterResumeValidators(v *validator.Validate) {
	_ = v.RegisterValidation("resume_id", validateResumeID)
	_ = v.RegisterValidation("yearmonth", validateYearMonth)
}

func validateResumeID(fl validator.FieldLevel) bool {
	return ResumeIDPattern.MatchString(fl.Field().String())
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return YearMonthPattern.MatchString(fl.Field().String())
}

// ScoreRequest is the body of the scoring, auto-fix and analysis endpoints.
type ScoreRequest struct {
	ResumeID string          `json:"resume_id,omitempty" validate:"omitempty,resume_id"`
	Document *ResumeDocument `json:"document" validate:"required"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	return Validator().Struct(r)
}

// ScoreResponse is returned by the scoring endpoint. Score is nil when the document
// does not carry enough content to be scored.
type ScoreResponse struct {
	ResumeID         string    `json:"resume_id,omitempty"`
	Score            *ATSScore `json:"score"`
	InsufficientData bool      `json:"insufficient_data"`
	Cached           bool      `json:"cached"`
	HistoryID        string    `json:"history_id,omitempty"`
}

// AutoFixResponse is returned by the auto-fix endpoint.
type AutoFixResponse struct {
	Fixes  *AutoFixSet `json:"fixes"`
	Fields []string    `json:"fields"`
}

// AnalysisResponse is returned by the detailed-analysis endpoint.
type AnalysisResponse struct {
	Analysis         *DetailedAnalysis `json:"analysis"`
	InsufficientData bool              `json:"insufficient_data"`
}
