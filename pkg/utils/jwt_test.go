package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := GenerateJWTToken(42, "doctor@strokeapp.com", "doctor", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "doctor@strokeapp.com", claims.Email)
	assert.Equal(t, "doctor", claims.Role)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := GenerateJWTToken(1, "p@strokeapp.com", "patient", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateJWTToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret-one")
	token, err := GenerateJWTToken(1, "p@strokeapp.com", "patient", time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "secret-two")
	_, err = ValidateJWTToken(token)
	assert.Error(t, err)
}

func TestMissingSecretFails(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := GenerateJWTToken(1, "p@strokeapp.com", "patient", time.Now().Add(time.Hour))
	assert.Error(t, err)

	_, err = ValidateJWTToken("whatever")
	assert.Error(t, err)
}
