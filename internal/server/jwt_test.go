package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/config"
)

const testSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	cfg := &config.JWTConfig{
		Secret:          testSecret,
		Issuer:          "fixitcv",
		ExpirationHours: expirationHours,
	}
	return NewJWTService(cfg)
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token, err := service.GenerateToken("user-1", true)
	require.NoError(t, err)

	// Test token format is valid JWT (three parts separated by dots)
	parts := strings.Split(token, ".")
	assert.Equal(t, 3, len(parts), "JWT should have 3 parts separated by dots")
}

func TestJWTService_GenerateToken_RequiresSubject(t *testing.T) {
	service := setupTestJWTService(t, 24)
	_, err := service.GenerateToken("", false)
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := setupTestJWTService(t, 24)

	for _, premium := range []bool{true, false} {
		token, err := service.GenerateToken("user-1", premium)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "fixitcv", claims.Issuer)
		assert.Equal(t, premium, claims.IsPremium())
	}
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := setupTestJWTService(t, 1)
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateToken("user-1", true)
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Contains(t, err.Error(), "token expired")
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := setupTestJWTService(t, 24)
	token, err := service.GenerateToken("user-1", true)
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "another-secret-key-that-is-long-enough",
		Issuer:          "fixitcv",
		ExpirationHours: 24,
	})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_ValidateToken_WrongIssuer(t *testing.T) {
	service := setupTestJWTService(t, 24)
	token, err := service.GenerateToken("user-1", true)
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: testSecret, Issuer: "someone-else", ExpirationHours: 24})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTService_ValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	service := setupTestJWTService(t, 24)

	claims := &Claims{Premium: true, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "fixitcv",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	service := setupTestJWTService(t, 24)

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := setupTestJWTService(t, 24)
	token, err := service.GenerateToken("user-9", true)
	require.NoError(t, err)

	claims, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "user-9", subject)
	assert.True(t, claims.IsPremium())

	_, err = service.AsTokenValidator().ValidateToken("garbage")
	assert.Error(t, err)
}
