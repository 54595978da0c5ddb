package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("river-card")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("river-card", hash))
	assert.False(t, CheckPasswordHash("turn-card", hash))
	assert.False(t, CheckPasswordHash("river-card", ""))
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("player", "secret-for-tests", time.Hour, "bankroll-app")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret-for-tests")
	require.NoError(t, err)
	assert.Equal(t, "player", claims.Subject)
	assert.Equal(t, "bankroll-app", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, _, err := GenerateJWT("player", "secret-for-tests", -time.Minute, "bankroll-app")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret-for-tests")
	assert.Error(t, err)
}
