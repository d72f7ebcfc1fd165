package session

import "net/http"

// Middleware loads the session from the inbound cookie and stores it in
// the request context. Anonymous visitors pass through with an empty
// session; loading never rejects a request.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.Load(r)
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// RequireAuth guards a handler behind an authenticated session. The
// onDenied handler decides the response shape (redirect to a login page,
// JSON error, plain 401); nil falls back to a bare 401. Expired, forged
// and absent tokens are denied identically.
func (m *Manager) RequireAuth(next http.Handler, onDenied http.Handler) http.Handler {
	if onDenied == nil {
		onDenied = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := FromContext(r.Context())
		if !ok {
			s = m.Load(r)
			r = r.WithContext(WithSession(r.Context(), s))
		}

		if err := s.RequireAuthenticated(); err != nil {
			onDenied.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
