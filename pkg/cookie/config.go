package cookie

// Config holds cookie manager configuration sourced from the environment.
type Config struct {
	Name string `env:"AUTH_COOKIE_NAME" envDefault:"auth_token"`
}

// DefaultConfig returns the default cookie configuration.
func DefaultConfig() Config {
	return Config{Name: DefaultName}
}

// NewFromConfig creates a Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, len(opts)+1)
	configOpts = append(configOpts, WithName(cfg.Name))
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
