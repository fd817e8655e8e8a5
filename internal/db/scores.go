package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// ErrScoreRequired is returned when SaveScore is handed no score.
var ErrScoreRequired = errors.New("score is required")

const scoreColumns = `id, resume_id, overall, breakdown, industry, institution, premium, suggestions, created_at`

// SaveScore stores a score in the history table and returns the new record.
// The record's created_at is the score's LastUpdated when set.
func (db *DB) SaveScore(ctx context.Context, input ScoreInput) (*ScoreRecord, error) {
	if input.Score == nil {
		return nil, ErrScoreRequired
	}
	score := input.Score

	breakdown, err := json.Marshal(score.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal breakdown: %w", err)
	}
	suggestions := score.Suggestions
	if suggestions == nil {
		suggestions = []types.Suggestion{}
	}
	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	var institution *string
	if score.Institution != nil {
		s := string(*score.Institution)
		institution = &s
	}
	var createdAt *time.Time
	if !score.LastUpdated.IsZero() {
		t := score.LastUpdated
		createdAt = &t
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO ats_scores (resume_id, overall, breakdown, industry, institution, premium, suggestions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()))
		 RETURNING `+scoreColumns,
		input.ResumeID, score.Overall, breakdown, string(score.Industry), institution, input.Premium, suggestionsJSON, createdAt,
	)
	record, err := scanScore(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}
	return record, nil
}

// GetScore retrieves a score by ID. Returns nil, nil when no row matches.
func (db *DB) GetScore(ctx context.Context, id uuid.UUID) (*ScoreRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+scoreColumns+` FROM ats_scores WHERE id = $1`,
		id,
	)
	record, err := scanScore(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	return record, nil
}

// ListScores returns the newest scores for a resume, newest first.
func (db *DB) ListScores(ctx context.Context, resumeID string, limit int) ([]ScoreRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+scoreColumns+` FROM ats_scores
		 WHERE resume_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		resumeID, ClampScoreLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	records := []ScoreRecord{}
	for rows.Next() {
		record, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	return records, nil
}

// DeleteScores removes every history row for a resume and reports how many were deleted.
func (db *DB) DeleteScores(ctx context.Context, resumeID string) (int64, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM ats_scores WHERE resume_id = $1`, resumeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete scores: %w", err)
	}
	return result.RowsAffected(), nil
}

func scanScore(row pgx.Row) (*ScoreRecord, error) {
	var (
		record          ScoreRecord
		industry        string
		institution     *string
		breakdownJSON   []byte
		suggestionsJSON []byte
	)
	if err := row.Scan(
		&record.ID, &record.ResumeID, &record.Overall, &breakdownJSON, &industry,
		&institution, &record.Premium, &suggestionsJSON, &record.CreatedAt,
	); err != nil {
		return nil, err
	}

	record.Industry = types.IndustryCategory(industry)
	if institution != nil {
		t := types.InstitutionType(*institution)
		record.Institution = &t
	}
	if err := json.Unmarshal(breakdownJSON, &record.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to unmarshal breakdown: %w", err)
	}
	record.Suggestions = []types.Suggestion{}
	if len(suggestionsJSON) > 0 {
		if err := json.Unmarshal(suggestionsJSON, &record.Suggestions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
		}
	}
	return &record, nil
}
