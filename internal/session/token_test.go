package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Sign("sid-42")
	require.NoError(t, err)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-42", got)
}

func TestTokenCodecRejectsTamperedToken(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Sign("sid-42")
	require.NoError(t, err)

	_, err = codec.Verify(token + "x")
	assert.Error(t, err)

	_, err = codec.Verify("definitely-not-a-jwt")
	assert.Error(t, err)
}

func TestTokenCodecRejectsOtherSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-a", time.Hour).Sign("sid-42")
	require.NoError(t, err)

	_, err = NewTokenCodec("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestTokenCodecRejectsExpiredToken(t *testing.T) {
	codec := NewTokenCodec("secret", -time.Minute)

	token, err := codec.Sign("sid-42")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.Error(t, err)
}
