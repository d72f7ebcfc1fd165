// Package logger is a small factory over log/slog with consistent
// attribute helpers.
//
//	log := logger.New(logger.WithProduction("authsvc"))
//	log.Info("user registered", logger.UserID(id), logger.Component("credentials"))
//
// Services in this module accept a *slog.Logger via an option and default
// to a discard logger, so logging is never required for correctness.
package logger
