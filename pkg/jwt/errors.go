package jwt

import "errors"

var (
	ErrInvalidToken            = errors.New("jwt: invalid token")
	ErrInvalidSignature        = errors.New("jwt: invalid signature")
	ErrTokenExpired            = errors.New("jwt: token is expired")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
)
