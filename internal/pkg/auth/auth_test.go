package auth_test

import (
	"testing"
	"time"

	"littlelemon/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.Generate("9cdedd79-3986-4ea4-9aca-4e2a8a1e9d4d", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "9cdedd79-3986-4ea4-9aca-4e2a8a1e9d4d", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer, err := auth.NewTokenService("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewTokenService("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Generate("id", "alice")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc, err := auth.NewTokenService("test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.Generate("id", "alice")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.Validate(token)
	require.Error(t, err)
}

func TestTokenService_RequiresConfig(t *testing.T) {
	_, err := auth.NewTokenService("", time.Hour)
	require.Error(t, err)

	_, err = auth.NewTokenService("secret", 0)
	require.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.True(t, hasher.Check(hash, "s3cret"))
	assert.False(t, hasher.Check(hash, "wrong"))
}
