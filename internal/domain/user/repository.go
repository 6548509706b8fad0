package user

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository is the persistence port for accounts. Implementations map
// store-level failures to the sentinel errors above.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)

	// SetResetToken stores a reset token and its expiry on the account.
	// Overwriting a still-valid token is allowed; last write wins.
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) error

	// GetByResetToken matches an account whose stored token equals token and
	// whose expiry is strictly after now. Unknown and expired tokens are both
	// ErrNotFound; callers must not distinguish the two.
	GetByResetToken(ctx context.Context, token string, now time.Time) (User, error)

	// UpdatePassword replaces the password hash and clears any reset token
	// state in the same write.
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	AppendHistory(ctx context.Context, email string, entry HistoryEntry) error
	GetHistory(ctx context.Context, email string) ([]HistoryEntry, error)
}
