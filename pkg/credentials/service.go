package credentials

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edgekit/edgekit/pkg/logger"
	"github.com/edgekit/edgekit/pkg/password"
)

// Service implements login, registration and password-change business
// logic over an external user-record store.
type Service struct {
	storage Storage
	hasher  password.Hasher
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithHasher overrides the password hasher. Pass password.SHA256Hasher{}
// to verify legacy unsalted digests.
func WithHasher(h password.Hasher) Option {
	return func(s *Service) {
		if h != nil {
			s.hasher = h
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New creates a credential service. Hashing defaults to bcrypt; logging
// defaults to a discard logger.
func New(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		hasher:  password.NewBcryptHasher(0),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Login verifies a username/password pair and returns the identity with
// the password hash stripped. A lookup miss and a password mismatch are
// indistinguishable to the caller: both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, pass string) (*User, error) {
	rec, err := s.storage.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr(err)
	}

	if !s.hasher.Verify(pass, rec.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	user := rec.User
	return &user, nil
}

// Register hashes the password and inserts a new credential record. The
// username/email pre-checks are a fast path for friendly errors; the
// store's uniqueness constraint is the actual guard against the
// check-then-insert race, surfaced as the same typed errors.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if _, err := s.storage.FindUserByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, storeErr(err)
	}

	if _, err := s.storage.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, storeErr(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = DefaultRole
	}

	now := time.Now()
	rec := &Record{
		User: User{
			ID:        uuid.New(),
			Username:  in.Username,
			Email:     in.Email,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		},
		PasswordHash: hash,
	}

	if err := s.storage.InsertUser(ctx, rec); err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		return nil, storeErr(err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(rec.ID.String()),
		logger.Component("credentials"),
	)

	user := rec.User
	return &user, nil
}

// ChangePassword verifies the old password before writing the new hash.
func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, oldPass, newPass string) error {
	rec, err := s.storage.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return storeErr(err)
	}

	if !s.hasher.Verify(oldPass, rec.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := s.hasher.Hash(newPass)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.storage.UpdatePasswordHash(ctx, id, hash); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return storeErr(err)
	}

	return nil
}

// ResetPassword writes a new hash without checking the old password. For
// flows where the caller has already proven control of the account
// (verified email link, operator action).
func (s *Service) ResetPassword(ctx context.Context, id uuid.UUID, newPass string) error {
	hash, err := s.hasher.Hash(newPass)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.storage.UpdatePasswordHash(ctx, id, hash); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return storeErr(err)
	}

	return nil
}

func storeErr(err error) error {
	return errors.Join(ErrStoreUnavailable, err)
}
