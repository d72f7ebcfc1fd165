package cookie

import "errors"

// ErrCookieNotFound indicates the session cookie is absent from the
// request. This is a normal outcome for anonymous visitors, not a failure.
var ErrCookieNotFound = errors.New("cookie.not_found")
