package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClaims struct {
	subject string
	premium bool
}

func (c testClaims) GetSubject() (string, error) { return c.subject, nil }
func (c testClaims) IsPremium() bool             { return c.premium }

// testTokenValidator accepts only the tokens registered on it.
type testTokenValidator map[string]testClaims

func (v testTokenValidator) ValidateToken(token string) (PrincipalClaims, error) {
	claims, ok := v[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func newValidator() testTokenValidator {
	return testTokenValidator{
		"premium-token": {subject: "user-1", premium: true},
		"free-token":    {subject: "user-2"},
	}
}

// run sends a request with the given Authorization header and returns the recorder and
// the principal the handler saw (nil if the handler was not reached).
func run(t *testing.T, validator TokenValidator, header string) (*httptest.ResponseRecorder, *Principal) {
	t.Helper()
	var seen *Principal
	handler := OptionalAuth(validator, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := GetPrincipal(r)
		seen = &p
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/ats/score", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, seen
}

func TestOptionalAuth_NoHeaderIsAnonymous(t *testing.T) {
	w, p := run(t, newValidator(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, p)
	assert.Equal(t, Principal{}, *p)
}

func TestOptionalAuth_ValidTokens(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Principal
	}{
		{name: "premium", header: "Bearer premium-token", want: Principal{Subject: "user-1", Premium: true, Authenticated: true}},
		{name: "free", header: "Bearer free-token", want: Principal{Subject: "user-2", Authenticated: true}},
		{name: "lowercase scheme", header: "bearer premium-token", want: Principal{Subject: "user-1", Premium: true, Authenticated: true}},
		{name: "extra spaces", header: "  Bearer   free-token  ", want: Principal{Subject: "user-2", Authenticated: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, p := run(t, newValidator(), tt.header)
			assert.Equal(t, http.StatusOK, w.Code)
			require.NotNil(t, p)
			assert.Equal(t, tt.want, *p)
		})
	}
}

func TestOptionalAuth_Rejects(t *testing.T) {
	for _, header := range []string{
		"Bearer unknown-token",
		"Basic dXNlcjpwYXNz",
		"Bearer",
		"Bearer a b",
		"premium-token",
	} {
		t.Run(header, func(t *testing.T) {
			w, p := run(t, newValidator(), header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Nil(t, p, "handler must not run")
		})
	}
}

func TestOptionalAuth_NilValidatorIgnoresTokens(t *testing.T) {
	w, p := run(t, nil, "Bearer premium-token")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, p)
	assert.False(t, p.Premium)
	assert.False(t, p.Authenticated)
}

func TestOptionalAuth_CustomErrorHandler(t *testing.T) {
	var got error
	handler := OptionalAuth(newValidator(), func(w http.ResponseWriter, _ *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.ErrorIs(t, got, ErrMalformedAuthorization)
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("")
	assert.NoError(t, err)
	assert.Empty(t, token)

	token, err = BearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = BearerToken("Bearer")
	assert.ErrorIs(t, err, ErrMalformedAuthorization)
}

func TestGetPrincipal_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, Principal{}, GetPrincipal(req))
	assert.False(t, IsPremium(req))

	req = req.WithContext(WithPrincipal(req.Context(), Principal{Premium: true}))
	assert.True(t, IsPremium(req))
}
