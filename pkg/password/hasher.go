package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher is a one-way digest plus constant-result comparison for stored
// credentials. Verify must not be used for anything except authentication
// decisions; it reports only match or mismatch.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// SHA256Hasher reproduces the legacy stored-hash format: an unsalted,
// single-round SHA-256 digest of the UTF-8 password bytes, hex-encoded.
//
// This scheme is weak (no salt, no work factor) and is retained only for
// compatibility with existing credential records. Use BcryptHasher for new
// deployments; see the package documentation for the migration note.
type SHA256Hasher struct{}

// Hash returns the hex-encoded SHA-256 digest of password. It never fails;
// the error return exists to satisfy Hasher.
func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares the hex strings in constant
// time. Returns false on any mismatch, including a malformed stored hash.
func (SHA256Hasher) Verify(password, hash string) bool {
	sum := sha256.Sum256([]byte(password))
	computed := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// BcryptHasher is the recommended replacement for SHA256Hasher: a salted,
// adaptive KDF whose cost can grow with hardware. Produced hashes use the
// standard bcrypt format and are not interchangeable with SHA-256 digests.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-backed hasher. Costs below the bcrypt
// minimum fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash of password.
func (h BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored bcrypt hash.
func (h BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
