package codec

import "errors"

// ErrMalformedInput is returned when the input contains characters outside
// the base64url alphabet or has a length no valid encoding can produce.
var ErrMalformedInput = errors.New("codec: malformed input")
