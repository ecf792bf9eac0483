package queries

import (
	"context"
	"database/sql"
	"errors"

	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserByTelegramIDQueryHandler retrieves a user from the database by
// Telegram identifier.
type GetUserByTelegramIDQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByTelegramIDQueryHandler creates a handler for user lookups.
func NewGetUserByTelegramIDQueryHandler(db *gorm.DB) GetUserByTelegramIDQueryHandler {
	return GetUserByTelegramIDQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound for an unknown user.
func (h GetUserByTelegramIDQueryHandler) Handle(
	ctx context.Context, query GetUserByTelegramIDQuery,
) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			telegram_id,
			role,
			created_at,
			updated_at
		FROM users
		WHERE telegram_id = ?`, query.TelegramID()).Row()

	var resp UserResponse
	var roleValue int
	err := row.Scan(
		&resp.ID,
		&resp.TelegramID,
		&roleValue,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return UserResponse{}, errs.NewObjectNotFoundError("telegramId", query.TelegramID())
	}
	if err != nil {
		return UserResponse{}, err
	}

	resp.Role = user.Role(roleValue)
	return resp, nil
}
