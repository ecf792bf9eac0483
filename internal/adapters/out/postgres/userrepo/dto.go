// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"time"

	"appraise/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The Telegram ID carries a uniqueness constraint so concurrent first-contact
// registrations cannot create duplicate users.
type UserDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	TelegramID int64 `gorm:"uniqueIndex"`
	Role       int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:         aggregate.ID(),
		TelegramID: aggregate.TelegramID(),
		Role:       int(aggregate.Role()),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.TelegramID, user.Role(dto.Role), dto.CreatedAt, dto.UpdatedAt)
}
