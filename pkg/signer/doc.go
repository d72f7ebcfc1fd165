// Package signer provides a keyed HMAC-SHA256 message authentication code
// over arbitrary byte strings.
//
// Verification uses a constant-time comparison so a prober cannot learn the
// position of the first mismatching byte from response timing. The secret
// is injected explicitly at construction rather than read from a process
// global, which keeps tests deterministic with fixed keys.
package signer
