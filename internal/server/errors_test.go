package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "document", Message: "required"}, http.StatusBadRequest},
		{"premium", &ErrPremiumRequired{Feature: "detailed analysis"}, http.StatusForbidden},
		{"unauthorized", &ErrUnauthorized{}, http.StatusUnauthorized},
		{"history", &ErrHistoryUnavailable{}, http.StatusServiceUnavailable},
		{"not found", &ErrNotFound{Resource: "score", ID: "x"}, http.StatusNotFound},
		{"wrapped", fmt.Errorf("handler: %w", &ErrValidation{Field: "limit"}), http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation error: limit - must be positive", (&ErrValidation{Field: "limit", Message: "must be positive"}).Error())
	assert.Equal(t, "detailed analysis requires a premium token", (&ErrPremiumRequired{Feature: "detailed analysis"}).Error())
	assert.Equal(t, "unauthorized", (&ErrUnauthorized{}).Error())
	assert.Equal(t, "unauthorized: expired", (&ErrUnauthorized{Reason: "expired"}).Error())
	assert.Equal(t, "score not found: abc", (&ErrNotFound{Resource: "score", ID: "abc"}).Error())
}
