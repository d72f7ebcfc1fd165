package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/edgekit/pkg/password"
)

func TestSHA256Hasher(t *testing.T) {
	t.Parallel()
	h := password.SHA256Hasher{}

	t.Run("produces known hex digest", func(t *testing.T) {
		digest, err := h.Hash("password")
		require.NoError(t, err)
		// Unsalted single-round SHA-256 is deterministic by construction.
		assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", digest)
	})

	t.Run("verify accepts matching password", func(t *testing.T) {
		digest, err := h.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, h.Verify("correct horse battery staple", digest))
	})

	t.Run("verify rejects wrong password", func(t *testing.T) {
		digest, err := h.Hash("correct")
		require.NoError(t, err)
		assert.False(t, h.Verify("wrong", digest))
	})

	t.Run("verify rejects malformed stored hash", func(t *testing.T) {
		assert.False(t, h.Verify("anything", "not-a-digest"))
		assert.False(t, h.Verify("anything", ""))
	})
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()
	h := password.NewBcryptHasher(4) // min cost keeps the test fast

	t.Run("hash and verify", func(t *testing.T) {
		hash, err := h.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$2"))
		assert.True(t, h.Verify("s3cret-pass", hash))
		assert.False(t, h.Verify("other-pass", hash))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := h.Hash("same-password")
		require.NoError(t, err)
		second, err := h.Hash("same-password")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("invalid cost falls back to default", func(t *testing.T) {
		hash, err := password.NewBcryptHasher(-1).Hash("pw")
		require.NoError(t, err)
		assert.True(t, password.NewBcryptHasher(-1).Verify("pw", hash))
	})
}
