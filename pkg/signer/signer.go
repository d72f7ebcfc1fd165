package signer

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Signer produces and checks HMAC-SHA256 message authentication codes
// using a server-held secret. The secret is kept in memory only and is
// never exposed after construction.
type Signer struct {
	secret []byte
}

// New creates a Signer with the provided secret. A missing secret is a
// startup condition, not a per-request one: callers are expected to fail
// process initialization on error.
func New(secret []byte) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	return &Signer{secret: secret}, nil
}

// NewFromString is a convenience wrapper around New for string-based
// configuration.
func NewFromString(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	return &Signer{secret: []byte(secret)}, nil
}

// Sign computes the MAC over message. Deterministic: the same
// (secret, message) pair always yields the same MAC.
func (s *Signer) Sign(message []byte) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write(message)
	return h.Sum(nil)
}

// Verify recomputes the MAC over message and compares it against mac in
// constant time. It returns false, never an error, on any mismatch
// including a wrong length.
func (s *Signer) Verify(message, mac []byte) bool {
	return hmac.Equal(s.Sign(message), mac)
}
