package codec

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Encode maps arbitrary bytes to the URL- and cookie-safe base64url
// alphabet without padding characters, as required by RFC 7515 for
// token segments.
func Encode(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

// Decode is the exact inverse of Encode. Token segments travel unpadded,
// so padding is restored before decoding; Go's decoder requires it.
func Decode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 1:
		// No valid base64 encoding produces a length of 4n+1.
		return nil, ErrMalformedInput
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrMalformedInput, err)
	}

	return data, nil
}
