package credentials

import (
	"context"

	"github.com/google/uuid"
)

// Storage is the external user-record store. Implementations return
// ErrUserNotFound for lookup misses and ErrUsernameTaken/ErrEmailTaken
// when an insert hits a uniqueness constraint; any other failure is
// treated as the store being unavailable.
//
// The uniqueness constraint enforced by the store is the race-safe guard
// for registration. The service's explicit pre-checks are a fast-path UX
// hint only.
type Storage interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*Record, error)
	FindUserByUsername(ctx context.Context, username string) (*Record, error)
	FindUserByEmail(ctx context.Context, email string) (*Record, error)
	InsertUser(ctx context.Context, rec *Record) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
