package cookie

// Option configures a Manager.
type Option func(*Manager)

// WithName overrides the session cookie name. Empty names are ignored so a
// zero-value config cannot silently break the build/parse pairing.
func WithName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.name = name
		}
	}
}
