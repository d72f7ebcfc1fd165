package session

import (
	"net/http"
	"time"

	"github.com/edgekit/edgekit/pkg/cookie"
	"github.com/edgekit/edgekit/pkg/jwt"
)

// DefaultTTL is the fixed validity window for a freshly issued token.
const DefaultTTL = 7 * 24 * time.Hour

// Manager orchestrates the session lifecycle: it verifies inbound cookies
// into Session values and re-signs mutated sessions into outbound cookies.
// A Manager is immutable after construction and safe for concurrent use;
// token verification is pure computation.
type Manager struct {
	tokens  *jwt.Service
	cookies *cookie.Manager
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithTTL overrides the token validity window. Non-positive durations are
// ignored.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithTimeFunc overrides the clock used to stamp issued tokens. Intended
// for deterministic tests.
func WithTimeFunc(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a session manager on top of a token codec and a cookie
// manager. Both are required; nil dependencies are a programming error and
// fail fast.
func New(tokens *jwt.Service, cookies *cookie.Manager, opts ...Option) *Manager {
	if tokens == nil || cookies == nil {
		panic("session: token codec and cookie manager are required")
	}

	m := &Manager{
		tokens:  tokens,
		cookies: cookies,
		ttl:     DefaultTTL,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Load populates a session from the request's cookie header. It never
// fails the request: a missing cookie, a forged or malformed token and an
// expired token all produce the same anonymous session, indistinguishable
// from one another by design.
func (m *Manager) Load(r *http.Request) *Session {
	return m.LoadHeader(r.Header.Get("Cookie"))
}

// LoadHeader is Load for callers that hold the raw Cookie header text
// instead of an *http.Request.
func (m *Manager) LoadHeader(header string) *Session {
	token, err := m.cookies.Parse(header)
	if err != nil {
		return &Session{}
	}

	claims, err := m.tokens.Decode(token)
	if err != nil {
		return &Session{}
	}

	return &Session{claims: claims, authenticated: true}
}

// Save re-signs the session into a fresh token with a new issuance/expiry
// pair and emits the outbound cookie. Calling Save twice issues two
// independent tokens, each individually valid. The signed token is
// returned for callers that need it outside the cookie (tests, logs of
// token IDs, non-HTTP transports).
func (m *Manager) Save(w http.ResponseWriter, s *Session) (string, error) {
	now := m.now()
	s.claims.IssuedAt = now.Unix()
	s.claims.ExpiresAt = now.Add(m.ttl).Unix()

	token, err := m.tokens.Encode(s.claims)
	if err != nil {
		return "", err
	}

	s.authenticated = true
	m.cookies.Set(w, token, m.ttl)

	return token, nil
}

// Clear resets the session to anonymous and emits an immediate-expiry
// cookie instructing the client to delete it.
func (m *Manager) Clear(w http.ResponseWriter, s *Session) {
	s.claims = jwt.Claims{}
	s.authenticated = false
	m.cookies.Clear(w)
}

// TTL returns the configured token validity window.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
