package credentials

import "errors"

var (
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password. The two cases are deliberately undifferentiated so a
	// caller cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("credentials: invalid credentials")

	ErrUserNotFound  = errors.New("credentials: user not found")
	ErrWrongPassword = errors.New("credentials: wrong password")
	ErrUsernameTaken = errors.New("credentials: username already taken")
	ErrEmailTaken    = errors.New("credentials: email already taken")

	// ErrStoreUnavailable wraps unexpected failures from the external
	// store. The service does not retry; retry policy belongs to the
	// caller.
	ErrStoreUnavailable = errors.New("credentials: store unavailable")
)
