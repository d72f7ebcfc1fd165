// Package password provides the one-way hashing layer behind login,
// registration and password changes.
//
// Two Hasher implementations are shipped:
//
//   - SHA256Hasher matches the historical stored-hash format: unsalted
//     single-round SHA-256, hex-encoded. It is a documented weakness kept
//     only so existing records keep verifying.
//   - BcryptHasher is the recommended scheme for new deployments.
//
// # Migration
//
// The two formats are trivially distinguishable (bcrypt hashes start with
// "$2"; legacy digests are 64 hex characters), so a deployment can verify
// against the legacy hasher and transparently re-hash with bcrypt on the
// next successful login. This package does not perform the migration
// itself; it only makes both formats available.
package password
