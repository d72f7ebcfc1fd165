package session

import (
	"time"

	"github.com/edgekit/edgekit/pkg/cookie"
	"github.com/edgekit/edgekit/pkg/jwt"
)

// Config holds session configuration sourced from the environment. The
// signing secret is required: a deployment without one must not start.
type Config struct {
	Secret     string        `env:"AUTH_JWT_SECRET,required"`
	CookieName string        `env:"AUTH_COOKIE_NAME" envDefault:"auth_token"`
	TTL        time.Duration `env:"AUTH_SESSION_TTL" envDefault:"168h"`
}

// DefaultConfig returns default session configuration without a secret.
func DefaultConfig() Config {
	return Config{
		CookieName: cookie.DefaultName,
		TTL:        DefaultTTL,
	}
}

// NewFromConfig wires the token codec, cookie manager and session manager
// from a single Config. It fails, and the process should refuse to start,
// when the secret is absent.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	tokens, err := jwt.NewFromString(cfg.Secret)
	if err != nil {
		return nil, err
	}

	cookies := cookie.New(cookie.WithName(cfg.CookieName))

	configOpts := make([]Option, 0, len(opts)+1)
	configOpts = append(configOpts, WithTTL(cfg.TTL))
	configOpts = append(configOpts, opts...)

	return New(tokens, cookies, configOpts...), nil
}
