package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret", "not-a-hash"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("admin-id-1", "fairoz")
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-id-1", claims.AdminID)
	assert.Equal(t, "fairoz", claims.Username)
}

func TestSessionTokenTampered(t *testing.T) {
	token, err := GenerateSessionToken("admin-id-1", "fairoz")
	require.NoError(t, err)

	_, err = ValidateSessionToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateSessionToken("garbage")
	assert.Error(t, err)
}
