package signer

import "errors"

// ErrMissingSecret is returned by the constructors when no secret is
// configured. Treat it as fatal at startup.
var ErrMissingSecret = errors.New("signer: missing secret")
