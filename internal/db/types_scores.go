package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// Score history limits
const (
	DefaultScoreListLimit = 20
	MaxScoreListLimit     = 100
)

// ScoreRecord is one row of ats_scores.
type ScoreRecord struct {
	ID          uuid.UUID              `json:"id"`
	ResumeID    string                 `json:"resume_id"`
	Overall     int                    `json:"overall"`
	Breakdown   types.ScoreBreakdown   `json:"breakdown"`
	Industry    types.IndustryCategory `json:"industry"`
	Institution *types.InstitutionType `json:"institution,omitempty"`
	Premium     bool                   `json:"premium"`
	Suggestions []types.Suggestion     `json:"suggestions"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ScoreInput is what SaveScore persists.
type ScoreInput struct {
	ResumeID string
	Premium  bool
	Score    *types.ATSScore
}

// ClampScoreLimit maps a caller-supplied limit into [1, MaxScoreListLimit], using the
// default for zero or negative values.
func ClampScoreLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultScoreListLimit
	case limit > MaxScoreListLimit:
		return MaxScoreListLimit
	default:
		return limit
	}
}
