package auth_test

import (
	"testing"
	"time"

	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	auth.Configure("test-secret")

	token, err := auth.IssueToken(42, time.Hour)
	require.NoError(t, err)

	userID, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseTokenExpired(t *testing.T) {
	auth.Configure("test-secret")

	token, err := auth.IssueToken(42, -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	auth.Configure("test-secret")

	_, err := auth.ParseToken("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	auth.Configure("first-secret")
	token, err := auth.IssueToken(42, time.Hour)
	require.NoError(t, err)

	auth.Configure("second-secret")
	_, err = auth.ParseToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
