package jwt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/edgekit/edgekit/pkg/codec"
	"github.com/edgekit/edgekit/pkg/signer"
)

// JWT header constants. Every token issued by this package carries the same
// header, and tokens presenting any other algorithm are rejected to prevent
// algorithm confusion attacks.
const (
	HeaderAlgorithm = "HS256"
	HeaderType      = "JWT"
)

// Header represents the JWT header as defined in RFC 7515. Field order
// matters: the wire bytes are base64url(`{"alg":"HS256","typ":"JWT"}`).
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// Claims is the authenticated identity payload carried inside a token.
//
// Attributes ride in the token signed but NOT encrypted: the client can
// read every key and value, it just cannot tamper with them. Never place
// data here that must stay confidential.
type Claims struct {
	Subject    string         `json:"userId,omitempty"`
	Attributes map[string]any `json:"data,omitempty"`
	IssuedAt   int64          `json:"iat"`
	ExpiresAt  int64          `json:"exp"`
}

// Valid reports whether the claims are current at the given time. A claims
// value is valid only while now is strictly before ExpiresAt.
func (c Claims) Valid(now time.Time) error {
	if now.Unix() >= c.ExpiresAt {
		return ErrTokenExpired
	}
	return nil
}

// Service serializes Claims to and from the three-segment signed-token
// wire format: base64url(header) "." base64url(payload) "." base64url(mac).
type Service struct {
	signer *signer.Signer
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTimeFunc overrides the clock used for expiry checks. Intended for
// deterministic tests with fixed timestamps.
func WithTimeFunc(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a token codec signing with the provided secret. An empty
// secret surfaces signer.ErrMissingSecret and should abort startup.
func New(secret []byte, opts ...Option) (*Service, error) {
	sig, err := signer.New(secret)
	if err != nil {
		return nil, err
	}

	s := &Service{
		signer: sig,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromString creates a token codec from a string secret. Convenience
// wrapper around New for environment-sourced configuration.
func NewFromString(secret string, opts ...Option) (*Service, error) {
	return New([]byte(secret), opts...)
}

// Encode builds a signed token from the given claims. The claims are
// serialized as compact JSON; IssuedAt and ExpiresAt are emitted as-is, so
// the caller stamps them before encoding.
func (s *Service) Encode(claims Claims) (string, error) {
	headerJSON, err := json.Marshal(Header{
		Algorithm: HeaderAlgorithm,
		Type:      HeaderType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := codec.Encode(headerJSON) + "." + codec.Encode(claimsJSON)
	mac := s.signer.Sign([]byte(payload))

	return payload + "." + codec.Encode(mac), nil
}

// Decode verifies a token and returns its claims. Every failure mode of a
// hostile or stale token converges to a sentinel error, never a panic:
// wrong segment count, undecodable segments, a bad signature, an unexpected
// algorithm, unparseable claims, and expiry. Callers that treat tokens as
// optional should collapse any error to "no claims present".
func (s *Service) Decode(token string) (Claims, error) {
	var claims Claims

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return claims, ErrInvalidToken
	}

	// The MAC covers the two raw segments exactly as received; verify
	// before parsing so attacker-controlled JSON is never touched with an
	// unchecked signature.
	mac, err := codec.Decode(parts[2])
	if err != nil {
		return claims, ErrInvalidToken
	}
	if !s.signer.Verify([]byte(parts[0]+"."+parts[1]), mac) {
		return claims, ErrInvalidSignature
	}

	headerJSON, err := codec.Decode(parts[0])
	if err != nil {
		return claims, ErrInvalidToken
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return claims, ErrInvalidToken
	}
	if header.Algorithm != HeaderAlgorithm {
		return claims, ErrUnexpectedSigningMethod
	}

	claimsJSON, err := codec.Decode(parts[1])
	if err != nil {
		return claims, ErrInvalidToken
	}
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}

	if err := claims.Valid(s.now()); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
