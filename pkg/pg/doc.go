// Package pg bootstraps the PostgreSQL layer behind the credential store:
// connection pooling via pgx/v5, schema migrations via goose/v3, a health
// check, and helpers for the SQLSTATE conditions the credential service
// cares about (no rows, unique-key violations).
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil { ... }
//
//	store := credentials.NewPostgresStorage(pool)
package pg
