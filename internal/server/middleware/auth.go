// Package middleware resolves the caller's identity and scoring tier from bearer tokens.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const principalKey ContextKey = "principal"

// ErrMalformedAuthorization is returned for an Authorization header that is not a
// well-formed bearer credential.
var ErrMalformedAuthorization = errors.New("authorization header must be 'Bearer <token>'")

// TokenValidator validates a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (PrincipalClaims, error)
}

// PrincipalClaims is what the middleware needs from validated claims.
type PrincipalClaims interface {
	GetSubject() (string, error)
	IsPremium() bool
}

// Principal is the resolved caller. The zero value is an anonymous free-tier caller.
type Principal struct {
	Subject       string
	Premium       bool
	Authenticated bool
}

// UnauthorizedHandler writes the response for a rejected token.
type UnauthorizedHandler func(w http.ResponseWriter, r *http.Request, err error)

// BearerToken extracts the token from an Authorization header value. An empty header
// yields ("", nil).
func BearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", nil
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedAuthorization
	}
	return parts[1], nil
}

// OptionalAuth attaches a Principal to every request. Requests without an
// Authorization header continue as anonymous free-tier callers; a header that is
// malformed or carries an invalid token is rejected through onError. A nil validator
// makes every request anonymous, and any presented token is ignored.
func OptionalAuth(validator TokenValidator, onError UnauthorizedHandler) func(http.Handler) http.Handler {
	if onError == nil {
		onError = func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := Principal{}

			if validator != nil {
				token, err := BearerToken(r.Header.Get("Authorization"))
				if err != nil {
					onError(w, r, err)
					return
				}
				if token != "" {
					claims, err := validator.ValidateToken(token)
					if err != nil {
						onError(w, r, err)
						return
					}
					subject, _ := claims.GetSubject()
					principal = Principal{Subject: subject, Premium: claims.IsPremium(), Authenticated: true}
				}
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal returns the caller attached by OptionalAuth, or an anonymous principal.
func GetPrincipal(r *http.Request) Principal {
	p, _ := r.Context().Value(principalKey).(Principal)
	return p
}

// IsPremium reports whether the caller holds a premium token.
func IsPremium(r *http.Request) bool {
	return GetPrincipal(r).Premium
}
