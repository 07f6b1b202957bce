package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, "fitbyte")

	token, err := svc.GenerateToken("user-1", "a@fit.io")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@fit.io", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "fitbyte", claims.Issuer)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, "fitbyte")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken("user-1", "a@fit.io")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("secret", time.Hour, "fitbyte")
	verifier := NewJWTService("other-secret", time.Hour, "fitbyte")

	token, err := issuer.GenerateToken("user-1", "a@fit.io")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	token, err := NewJWTService("secret", time.Hour, "someone-else").GenerateToken("user-1", "a@fit.io")
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Hour, "fitbyte").ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, "fitbyte")

	_, err := svc.ValidateToken("")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.ValidateToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
