package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate("d5f4c1f0-0000-0000-0000-000000000001", "author@example.com", "author")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "d5f4c1f0-0000-0000-0000-000000000001", claims.UserID)
	assert.Equal(t, "author@example.com", claims.Email)
	assert.Equal(t, "author", claims.Role)

	// Hết hạn sau đúng 7 ngày
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, TokenTTL.Seconds(), ttl.Seconds(), 5)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Generate("id", "a@example.com", "reader")
	require.NoError(t, err)

	_, err = NewManager("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestValidateTamperedToken(t *testing.T) {
	m := NewManager("test-secret")
	token, err := m.Generate("id", "a@example.com", "reader")
	require.NoError(t, err)

	_, err = m.Validate(token + "x")
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	m := NewManager("test-secret")

	for _, raw := range []string{"", "not.a.token", "Bearer abc"} {
		_, err := m.Validate(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := Claims{
		UserID: "id",
		Email:  "a@example.com",
		Role:   "reader",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewManager(secret).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{UserID: "id", Role: "author"}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("test-secret").Validate(token)
	assert.Error(t, err)
}

func TestIsAuthor(t *testing.T) {
	assert.True(t, (&Claims{Role: "author"}).IsAuthor())
	assert.False(t, (&Claims{Role: "reader"}).IsAuthor())
	assert.False(t, (&Claims{}).IsAuthor())
}
