// Package credentials implements login, registration and password-change
// business logic on top of an external user-record store.
//
// The service never exposes a password hash outside the package: Login
// returns a User with the hash stripped, and verification happens through
// a pluggable password.Hasher (bcrypt by default, the legacy SHA-256
// hasher for pre-existing records).
//
// Authentication failures are deliberately flat: an unknown username and a
// wrong password both return ErrInvalidCredentials so responses cannot be
// used to enumerate accounts.
//
// Registration performs explicit username/email lookups first to produce
// friendly conflict errors, but those checks are racy across requests and
// are only a fast path. The store's uniqueness constraint is the actual
// guard; PostgresStorage maps constraint violations onto the same typed
// errors, so callers see a single consistent outcome either way.
package credentials
