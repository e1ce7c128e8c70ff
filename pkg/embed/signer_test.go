package embed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenSignerGenerateAndParse(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)
	token, expiresAt, err := signer.Generate("tenant-1", "prop-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	propertyID, tenantID, parsedExpiry, err := signer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "prop-1", propertyID)
	require.Equal(t, "tenant-1", tenantID)
	require.WithinDuration(t, expiresAt, parsedExpiry, time.Second)
}

func TestTokenSignerExpired(t *testing.T) {
	signer := NewTokenSigner("secret", time.Millisecond*10)
	token, _, err := signer.Generate("tenant-1", "prop-1")
	require.NoError(t, err)
	time.Sleep(time.Millisecond * 20)

	_, _, _, err = signer.Parse(token)
	require.Error(t, err)
}

func TestTokenSignerTamperedSignature(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)
	token, _, err := signer.Generate("tenant-1", "prop-1")
	require.NoError(t, err)

	other := NewTokenSigner("other_secret", time.Hour)
	_, _, _, err = other.Parse(token)
	require.Error(t, err)
}
