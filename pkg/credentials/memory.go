package credentials

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage is an in-memory Storage for tests and local development.
// Uniqueness is enforced under a single lock, so unlike a real relational
// store there is no check-then-insert race to worry about here.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
}

// NewMemoryStorage creates an empty in-memory credential store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[uuid.UUID]Record)}
}

func (s *MemoryStorage) FindUserByID(_ context.Context, id uuid.UUID) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &rec, nil
}

func (s *MemoryStorage) FindUserByUsername(_ context.Context, username string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.Username == username {
			return &rec, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStorage) FindUserByEmail(_ context.Context, email string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStorage) InsertUser(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.Username == rec.Username {
			return ErrUsernameTaken
		}
		if existing.Email == rec.Email {
			return ErrEmailTaken
		}
	}

	s.records[rec.ID] = *rec
	return nil
}

func (s *MemoryStorage) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrUserNotFound
	}

	rec.PasswordHash = hash
	s.records[id] = rec
	return nil
}
