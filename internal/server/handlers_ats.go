package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ats"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/cache"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/db"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/server/middleware"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// MaxRequestBytes bounds the size of a scoring request body.
const MaxRequestBytes = 1 << 20

// scoreRequestBody keeps the document raw so it can be checked against the schema
// before it is decoded.
type scoreRequestBody struct {
	ResumeID string          `json:"resume_id"`
	Document json.RawMessage `json:"document"`
}

// decodeScoreRequest reads and validates a scoring request body.
func decodeScoreRequest(w http.ResponseWriter, r *http.Request) (*types.ScoreRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &ErrValidation{Field: "body", Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)}
		}
		return nil, &ErrValidation{Field: "body", Message: "failed to read request body"}
	}

	var raw scoreRequestBody
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if len(raw.Document) == 0 || string(raw.Document) == "null" {
		return nil, &ErrValidation{Field: "document", Message: "document is required"}
	}

	doc, err := ats.ParseDocument(raw.Document, "request")
	if err != nil {
		return nil, &ErrValidation{Field: "document", Message: err.Error()}
	}

	req := &types.ScoreRequest{ResumeID: raw.ResumeID, Document: doc}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	return req, nil
}

// validationError converts the first validator failure into an ErrValidation.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: fe.Namespace(), Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag())}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

func (s *Server) scorerFor(r *http.Request, doc *types.ResumeDocument) *ats.Scorer {
	mode := ats.ModeFromPremium(middleware.IsPremium(r))
	return ats.NewScorer(doc, mode, ats.WithClock(s.now), ats.WithVerbPicker(s.verbs))
}

// handleScore scores a document, consulting the cache first and recording the result
// in history when a resume_id is given.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	req, err := decodeScoreRequest(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	ctx := r.Context()
	premium := middleware.IsPremium(r)
	mode := ats.ModeFromPremium(premium)
	log := s.logger.WithFields(logrus.Fields{
		"request_id": requestID(r),
		"resume_id":  req.ResumeID,
		"mode":       mode.String(),
	})

	resp := types.ScoreResponse{ResumeID: req.ResumeID}

	var key string
	if s.cache != nil {
		key, err = cache.ScoreKey(req.Document, mode.String())
		if err != nil {
			log.WithError(err).Warn("failed to build cache key")
		} else if cached, ok, err := s.cache.Get(ctx, key); err != nil {
			log.WithError(err).Warn("score cache lookup failed")
		} else if ok {
			// Cached entries keep the time of the first scoring; stamp this request.
			fresh := *cached
			fresh.LastUpdated = s.now().UTC()
			resp.Score = &fresh
			resp.Cached = true
		}
	}

	if resp.Score == nil {
		resp.Score = s.scorerFor(r, req.Document).Score()
		if resp.Score != nil && key != "" {
			if err := s.cache.Set(ctx, key, resp.Score); err != nil {
				log.WithError(err).Warn("failed to cache score")
			}
		}
	}

	if resp.Score == nil {
		resp.InsufficientData = true
		s.jsonResponse(w, http.StatusOK, resp)
		return
	}

	if req.ResumeID != "" && s.history != nil {
		record, err := s.history.SaveScore(ctx, db.ScoreInput{
			ResumeID: req.ResumeID,
			Premium:  premium,
			Score:    resp.Score,
		})
		if err != nil {
			// The score is still useful to the caller.
			log.WithError(err).Error("failed to save score history")
		} else {
			resp.HistoryID = record.ID.String()
		}
	}

	log.WithFields(logrus.Fields{
		"overall":  resp.Score.Overall,
		"industry": resp.Score.Industry,
		"cached":   resp.Cached,
	}).Debug("resume scored")
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAutoFix returns the sparse patch for a document.
func (s *Server) handleAutoFix(w http.ResponseWriter, r *http.Request) {
	req, err := decodeScoreRequest(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	fixes := s.scorerFor(r, req.Document).AutoFixes()
	fields := fixes.Fields()
	if fields == nil {
		fields = []string{}
	}
	s.jsonResponse(w, http.StatusOK, types.AutoFixResponse{Fixes: fixes, Fields: fields})
}

// handleAnalysis returns the keyword analysis. Free callers are refused.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsPremium(r) {
		s.writeError(w, &ErrPremiumRequired{Feature: "detailed analysis"})
		return
	}
	req, err := decodeScoreRequest(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	scorer := s.scorerFor(r, req.Document)
	if !scorer.HasMinimumContent() {
		s.jsonResponse(w, http.StatusOK, types.AnalysisResponse{InsufficientData: true})
		return
	}
	s.jsonResponse(w, http.StatusOK, types.AnalysisResponse{Analysis: scorer.DetailedAnalysis()})
}

// handleListScores returns the newest scores recorded for a resume.
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeError(w, &ErrHistoryUnavailable{})
		return
	}

	resumeID := r.PathValue("resume_id")
	if !types.ResumeIDPattern.MatchString(resumeID) {
		s.writeError(w, &ErrValidation{Field: "resume_id", Message: "must be 1-64 letters, digits, '-' or '_'"})
		return
	}

	limit := db.DefaultScoreListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = db.ClampScoreLimit(n)
	}

	records, err := s.history.ListScores(r.Context(), resumeID, limit)
	if err != nil {
		s.writeError(w, fmt.Errorf("failed to list scores: %w", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_id": resumeID,
		"scores":    records,
		"count":     len(records),
	})
}
