package ports

import (
	"context"

	"appraise/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Users are never deleted; the only mutation is a role upgrade.
type UserRepository interface {
	// Add persists a new user and sets the storage-assigned ID on the aggregate.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by internal identifier.
	// Returns errs.ErrObjectNotFound if no such user exists.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByTelegramID retrieves a user by the external platform identifier.
	// Returns errs.ErrObjectNotFound if no such user exists.
	GetByTelegramID(ctx context.Context, telegramID int64) (*user.User, error)
}
