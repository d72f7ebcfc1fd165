package session

import "errors"

// ErrUnauthenticated indicates a guard was hit by an anonymous session.
// How to respond (redirect vs. error body) is the caller's decision.
var ErrUnauthenticated = errors.New("session.unauthenticated")
