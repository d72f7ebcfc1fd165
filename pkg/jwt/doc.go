// Package jwt serializes session claims to and from the HS256 JWT wire
// format used by the session cookie.
//
// A token is three dot-joined base64url segments: header, payload and an
// HMAC-SHA256 signature over the first two raw segments. A token is
// authentic iff recomputing the MAC with the server secret reproduces the
// received signature under a constant-time comparison, and current iff the
// decode-time clock is strictly before the exp claim. A token that is
// authentic but expired is still rejected.
//
// # Usage
//
//	svc, err := jwt.NewFromString(os.Getenv("AUTH_JWT_SECRET"))
//	if err != nil {
//	    // fatal: refuse to start without a secret
//	}
//
//	now := time.Now().Unix()
//	token, err := svc.Encode(jwt.Claims{
//	    Subject:   "user_123",
//	    Attributes: map[string]any{"role": "admin"},
//	    IssuedAt:  now,
//	    ExpiresAt: now + 7*24*60*60,
//	})
//
//	claims, err := svc.Decode(token)
//
// # Error Handling
//
// Decode reports ErrInvalidToken, ErrInvalidSignature, ErrTokenExpired or
// ErrUnexpectedSigningMethod. The distinction is for logs and tests only;
// user-facing layers must present all of them identically as "not logged
// in" so a prober cannot learn why a token was rejected.
//
// # Confidentiality
//
// The payload is signed, not encrypted. Anything stored in
// Claims.Attributes is visible to the client holding the cookie.
package jwt
