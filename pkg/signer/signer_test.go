package signer_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/edgekit/pkg/signer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("with valid secret", func(t *testing.T) {
		s, err := signer.New([]byte("secret"))
		require.NoError(t, err)
		require.NotNil(t, s)
	})

	t.Run("with empty secret", func(t *testing.T) {
		s, err := signer.New(nil)
		require.ErrorIs(t, err, signer.ErrMissingSecret)
		require.Nil(t, s)
	})

	t.Run("from empty string", func(t *testing.T) {
		s, err := signer.NewFromString("")
		require.ErrorIs(t, err, signer.ErrMissingSecret)
		require.Nil(t, s)
	})
}

func TestSign(t *testing.T) {
	t.Parallel()
	s, err := signer.New([]byte("secret"))
	require.NoError(t, err)

	t.Run("is deterministic", func(t *testing.T) {
		msg := []byte("payload")
		assert.Equal(t, s.Sign(msg), s.Sign(msg))
	})

	t.Run("matches reference hmac", func(t *testing.T) {
		h := hmac.New(sha256.New, []byte("secret"))
		h.Write([]byte("payload"))
		assert.Equal(t, h.Sum(nil), s.Sign([]byte("payload")))
	})

	t.Run("differs per message and key", func(t *testing.T) {
		other, err := signer.New([]byte("other-secret"))
		require.NoError(t, err)

		assert.NotEqual(t, s.Sign([]byte("a")), s.Sign([]byte("b")))
		assert.NotEqual(t, s.Sign([]byte("a")), other.Sign([]byte("a")))
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()
	s, err := signer.New([]byte("secret"))
	require.NoError(t, err)

	msg := []byte("payload")
	mac := s.Sign(msg)

	t.Run("accepts valid mac", func(t *testing.T) {
		assert.True(t, s.Verify(msg, mac))
	})

	t.Run("rejects tampered mac", func(t *testing.T) {
		tampered := append([]byte(nil), mac...)
		tampered[0] ^= 0x01
		assert.False(t, s.Verify(msg, tampered))
	})

	t.Run("rejects tampered message", func(t *testing.T) {
		assert.False(t, s.Verify([]byte("Payload"), mac))
	})

	t.Run("rejects wrong length without error", func(t *testing.T) {
		assert.False(t, s.Verify(msg, mac[:len(mac)-1]))
		assert.False(t, s.Verify(msg, nil))
	})
}
