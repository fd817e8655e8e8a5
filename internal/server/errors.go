// Package server provides the HTTP API for ATS scoring, auto-fix, detailed analysis and
// score history.
package server

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPremiumRequired indicates a premium-only feature was requested by a free caller.
type ErrPremiumRequired struct {
	Feature string
}

func (e *ErrPremiumRequired) Error() string {
	return fmt.Sprintf("%s requires a premium token", e.Feature)
}

// ErrUnauthorized indicates the presented token was rejected.
type ErrUnauthorized struct {
	Reason string
}

func (e *ErrUnauthorized) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Reason
}

// ErrHistoryUnavailable indicates score history was requested without a database.
type ErrHistoryUnavailable struct{}

func (e *ErrHistoryUnavailable) Error() string {
	return "score history is not configured"
}

// ErrNotFound indicates the requested record does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		premium     *ErrPremiumRequired
		unauth      *ErrUnauthorized
		unavailable *ErrHistoryUnavailable
		notFound    *ErrNotFound
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &premium):
		return http.StatusForbidden
	case errors.As(err, &unauth):
		return http.StatusUnauthorized
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
