package queries

import (
	"errors"
	"time"

	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrGetUserByTelegramIDQueryIsNotConstructed = errors.New(
		"GetUserByTelegramIDQuery must be created via NewGetUserByTelegramIDQuery constructor",
	)
)

// UserResponse is the read model for registered users.
type UserResponse struct {
	ID         int64
	TelegramID int64
	Role       user.Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GetUserByTelegramIDQuery retrieves a user by Telegram identifier.
type GetUserByTelegramIDQuery struct { //nolint:recvcheck //using for validation
	telegramID int64

	guard guard.ConstructorGuard
}

// NewGetUserByTelegramIDQuery creates a query for one user.
func NewGetUserByTelegramIDQuery(telegramID int64) (GetUserByTelegramIDQuery, error) {
	if telegramID <= 0 {
		return GetUserByTelegramIDQuery{}, errs.NewValueIsRequiredError("telegramId")
	}

	return GetUserByTelegramIDQuery{
		telegramID: telegramID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByTelegramIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByTelegramIDQueryIsNotConstructed)
}

// TelegramID returns the Telegram identifier.
func (q GetUserByTelegramIDQuery) TelegramID() int64 {
	return q.telegramID
}
