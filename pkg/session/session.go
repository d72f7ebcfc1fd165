package session

import (
	"github.com/edgekit/edgekit/pkg/jwt"
)

// Session is the per-request wrapper around at most one claims value. It
// starts Anonymous, may become Authenticated by loading a valid inbound
// cookie, and accumulates pending mutations (subject, attributes) in
// memory until the manager re-signs it into a fresh token. A Session never
// persists across requests by itself; durability comes from the cookie
// round-trip.
type Session struct {
	claims        jwt.Claims
	authenticated bool
}

// IsAuthenticated reports whether the session carries verified claims or
// has been issued during this request.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.authenticated
}

// RequireAuthenticated is a read-only guard: it reports ErrUnauthenticated
// when the session is anonymous. It performs no I/O; the caller decides
// between a redirect and an error response.
func (s *Session) RequireAuthenticated() error {
	if !s.IsAuthenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// Subject returns the identifier of the authenticated principal, or the
// empty string for an anonymous session.
func (s *Session) Subject() string {
	if s == nil {
		return ""
	}
	return s.claims.Subject
}

// SetSubject records the principal for an in-progress login. The change is
// pure in-memory until the manager saves the session.
func (s *Session) SetSubject(id string) {
	if s == nil {
		return
	}
	s.claims.Subject = id
}

// Set stores an attribute in the pending claims.
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.claims.Attributes == nil {
		s.claims.Attributes = make(map[string]any)
	}
	s.claims.Attributes[key] = value
}

// Get retrieves an attribute value.
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.claims.Attributes == nil {
		return nil, false
	}
	val, ok := s.claims.Attributes[key]
	return val, ok
}

// GetString retrieves a string attribute.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int attribute. Numbers decoded from a token payload
// arrive as float64, so numeric JSON types are converted.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool attribute.
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Delete removes an attribute from the pending claims.
func (s *Session) Delete(key string) {
	if s == nil || s.claims.Attributes == nil {
		return
	}
	delete(s.claims.Attributes, key)
}

// Claims returns a copy of the session's current claims value.
func (s *Session) Claims() jwt.Claims {
	if s == nil {
		return jwt.Claims{}
	}
	return s.claims
}
