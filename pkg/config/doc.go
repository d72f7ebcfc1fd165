// Package config loads typed configuration structs from environment
// variables and an optional .env file.
//
// Fields are declared with `env` tags from github.com/caarlos0/env:
//
//	type Config struct {
//	    Secret string        `env:"AUTH_JWT_SECRET,required"`
//	    TTL    time.Duration `env:"AUTH_SESSION_TTL" envDefault:"168h"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg) // panics at startup if AUTH_JWT_SECRET is unset
//
// Required values that are absent fail at load time, which is how startup
// conditions like a missing signing secret are kept out of request paths.
package config
