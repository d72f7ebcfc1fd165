package credentials

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage implements Storage on a pgx connection pool. The unique
// indexes on username and email (see the users-table migration) make the
// insert the race-safe duplicate guard; SQLSTATE 23505 violations are
// mapped back to the typed duplicate errors by constraint name.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates a Postgres-backed credential store.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

const selectUser = `SELECT id, username, email, password_hash, role, created_at, updated_at FROM users`

func (s *PostgresStorage) FindUserByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.findUser(ctx, selectUser+` WHERE id = $1`, id)
}

func (s *PostgresStorage) FindUserByUsername(ctx context.Context, username string) (*Record, error) {
	return s.findUser(ctx, selectUser+` WHERE username = $1`, username)
}

func (s *PostgresStorage) FindUserByEmail(ctx context.Context, email string) (*Record, error) {
	return s.findUser(ctx, selectUser+` WHERE email = $1`, email)
}

func (s *PostgresStorage) findUser(ctx context.Context, query string, arg any) (*Record, error) {
	var rec Record
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&rec.ID,
		&rec.Username,
		&rec.Email,
		&rec.PasswordHash,
		&rec.Role,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &rec, nil
}

func (s *PostgresStorage) InsertUser(ctx context.Context, rec *Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.Username, rec.Email, rec.PasswordHash, rec.Role, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return ErrEmailTaken
			}
			return ErrUsernameTaken
		}
		return err
	}

	return nil
}

func (s *PostgresStorage) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, hash,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
