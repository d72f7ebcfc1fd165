package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultName is the session cookie name shared by build and parse.
const DefaultName = "auth_token"

// Manager builds and parses the wire representation of the session cookie.
// The outbound attribute set is fixed: HttpOnly, Secure, SameSite=Strict,
// Path=/ and a Max-Age derived from the token TTL (0 instructs the client
// to delete the cookie immediately).
type Manager struct {
	name string
}

// New creates a cookie manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{name: DefaultName}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the configured cookie name.
func (m *Manager) Name() string {
	return m.name
}

// Build renders the Set-Cookie header value for the given token. The
// attribute order is part of the wire contract and is rendered literally
// rather than through net/http, whose serialization order differs.
func (m *Manager) Build(token string, maxAge int) string {
	var b strings.Builder
	b.WriteString(m.name)
	b.WriteByte('=')
	b.WriteString(token)
	b.WriteString("; HttpOnly; Secure; SameSite=Strict; Max-Age=")
	b.WriteString(strconv.Itoa(maxAge))
	b.WriteString("; Path=/")
	return b.String()
}

// Set writes the session cookie to the response with Max-Age equal to the
// given TTL.
func (m *Manager) Set(w http.ResponseWriter, token string, ttl time.Duration) {
	w.Header().Add("Set-Cookie", m.Build(token, int(ttl.Seconds())))
}

// Clear writes an empty, immediately expiring session cookie, instructing
// the client to delete it.
func (m *Manager) Clear(w http.ResponseWriter) {
	w.Header().Add("Set-Cookie", m.Build("", 0))
}

// Parse extracts the session token from a raw Cookie request header.
// Pairs are split on ";" with surrounding whitespace trimmed, and each
// pair on the first "=". Malformed pairs without "=" are skipped, not
// fatal. Returns ErrCookieNotFound when the session cookie is absent.
func (m *Manager) Parse(header string) (string, error) {
	for pair := range strings.SplitSeq(header, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		if name == m.name {
			return value, nil
		}
	}

	return "", ErrCookieNotFound
}

// GetToken extracts the session token from an HTTP request.
func (m *Manager) GetToken(r *http.Request) (string, error) {
	return m.Parse(r.Header.Get("Cookie"))
}
