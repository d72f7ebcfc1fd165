package jwt_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/edgekit/pkg/codec"
	"github.com/edgekit/edgekit/pkg/jwt"
	"github.com/edgekit/edgekit/pkg/signer"
)

const weekSeconds = 7 * 24 * 60 * 60

func fixedClock(unix int64) jwt.Option {
	return jwt.WithTimeFunc(func() time.Time { return time.Unix(unix, 0) })
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("with valid secret", func(t *testing.T) {
		svc, err := jwt.New([]byte("secret"))
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("with empty secret", func(t *testing.T) {
		svc, err := jwt.New(nil)
		require.ErrorIs(t, err, signer.ErrMissingSecret)
		require.Nil(t, svc)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("s3cret", fixedClock(1000))
	require.NoError(t, err)

	claims := jwt.Claims{
		Subject:    "u1",
		Attributes: map[string]any{"role": "admin"},
		IssuedAt:   1000,
		ExpiresAt:  1000 + weekSeconds,
	}

	token, err := svc.Encode(claims)
	require.NoError(t, err)

	t.Run("produces three dot-joined segments", func(t *testing.T) {
		assert.Len(t, strings.Split(token, "."), 3)
	})

	t.Run("header segment is the fixed HS256 header", func(t *testing.T) {
		headerJSON, err := codec.Decode(strings.Split(token, ".")[0])
		require.NoError(t, err)
		assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(headerJSON))
	})

	t.Run("payload carries claims and timestamps", func(t *testing.T) {
		payloadJSON, err := codec.Decode(strings.Split(token, ".")[1])
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(payloadJSON, &payload))
		assert.Equal(t, "u1", payload["userId"])
		assert.Equal(t, float64(1000), payload["iat"])
		assert.Equal(t, float64(1000+weekSeconds), payload["exp"])
	})

	t.Run("is deterministic", func(t *testing.T) {
		again, err := svc.Encode(claims)
		require.NoError(t, err)
		assert.Equal(t, token, again)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	claims := jwt.Claims{
		Subject:    "u1",
		Attributes: map[string]any{"role": "admin"},
		IssuedAt:   1000,
		ExpiresAt:  1000 + weekSeconds,
	}

	issue := func(t *testing.T, clockUnix int64) (*jwt.Service, string) {
		t.Helper()
		svc, err := jwt.NewFromString("s3cret", fixedClock(clockUnix))
		require.NoError(t, err)
		token, err := svc.Encode(claims)
		require.NoError(t, err)
		return svc, token
	}

	t.Run("round trip before expiry", func(t *testing.T) {
		svc, token := issue(t, 1000)

		decoded, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, claims, decoded)
	})

	t.Run("expired exactly at exp", func(t *testing.T) {
		svc, err := jwt.NewFromString("s3cret", fixedClock(1000+weekSeconds))
		require.NoError(t, err)
		token, err := svc.Encode(claims)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("expired after exp", func(t *testing.T) {
		svc, err := jwt.NewFromString("s3cret", fixedClock(1000+weekSeconds+1))
		require.NoError(t, err)
		token, err := svc.Encode(claims)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong segment count", func(t *testing.T) {
		svc, token := issue(t, 1000)

		_, err := svc.Decode("")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)

		parts := strings.Split(token, ".")
		_, err = svc.Decode(parts[0] + "." + parts[1])
		require.ErrorIs(t, err, jwt.ErrInvalidToken)

		_, err = svc.Decode(token + ".extra")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("tampered signature segment", func(t *testing.T) {
		svc, token := issue(t, 1000)
		parts := strings.Split(token, ".")

		tampered := flipChar(parts[2])
		_, err := svc.Decode(parts[0] + "." + parts[1] + "." + tampered)
		require.Error(t, err)
	})

	t.Run("tampered payload segment", func(t *testing.T) {
		svc, token := issue(t, 1000)
		parts := strings.Split(token, ".")

		tampered := flipChar(parts[1])
		_, err := svc.Decode(parts[0] + "." + tampered + "." + parts[2])
		require.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, token := issue(t, 1000)

		other, err := jwt.NewFromString("not-the-secret", fixedClock(1000))
		require.NoError(t, err)

		_, err = other.Decode(token)
		require.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		svc, token := issue(t, 1000)
		parts := strings.Split(token, ".")

		// Re-sign a forged header with the real secret so only the alg
		// check can reject it.
		sig, err := signer.NewFromString("s3cret")
		require.NoError(t, err)

		forgedHeader := codec.Encode([]byte(`{"alg":"none","typ":"JWT"}`))
		payload := forgedHeader + "." + parts[1]
		forged := payload + "." + codec.Encode(sig.Sign([]byte(payload)))

		_, err = svc.Decode(forged)
		require.ErrorIs(t, err, jwt.ErrUnexpectedSigningMethod)
	})

	t.Run("non-JSON payload", func(t *testing.T) {
		svc, _ := issue(t, 1000)
		sig, err := signer.NewFromString("s3cret")
		require.NoError(t, err)

		header := codec.Encode([]byte(`{"alg":"HS256","typ":"JWT"}`))
		payload := header + "." + codec.Encode([]byte("not json"))
		forged := payload + "." + codec.Encode(sig.Sign([]byte(payload)))

		_, err = svc.Decode(forged)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("hostile garbage never panics", func(t *testing.T) {
		svc, _ := issue(t, 1000)
		for _, tok := range []string{
			"...",
			"a.b.c",
			"....",
			strings.Repeat(".", 100),
			"\x00.\x01.\x02",
		} {
			_, err := svc.Decode(tok)
			require.Error(t, err)
		}
	})
}

// flipChar changes the first character of a base64url segment to a
// different alphabet character, simulating a single corrupted byte.
func flipChar(s string) string {
	replacement := byte('A')
	if s[0] == 'A' {
		replacement = 'B'
	}
	return string(replacement) + s[1:]
}
