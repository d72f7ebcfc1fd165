package credentials

import (
	"time"

	"github.com/google/uuid"
)

// Default role assigned to newly registered users.
const DefaultRole = "user"

// User is the identity returned to callers. It deliberately has no
// password-hash field: the hash never leaves this package.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record is the stored credential row, including the password hash. It is
// exchanged only between the service and Storage implementations.
type Record struct {
	User
	PasswordHash string
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}
