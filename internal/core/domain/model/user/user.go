package user

import (
	"errors"
	"time"

	"appraise/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrUserIDAlreadySet is returned when SetID is called on a persisted user.
	ErrUserIDAlreadySet = errors.New("user ID has already been assigned")
)

// User represents a participant, identified externally by a Telegram ID.
// Users are created on first contact and never deleted; the only mutation
// is an in-place role upgrade from CLIENT to APPRAISER.
type User struct {
	// id is assigned by storage on first persist; zero until then.
	id int64

	// telegramID is the unique external platform identifier.
	telegramID int64

	role Role

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewUser creates a User with the given Telegram ID and role.
// Timestamps are set to the current time; the ID stays zero until storage assigns it.
func NewUser(telegramID int64, role Role) (*User, error) {
	if telegramID <= 0 {
		return nil, errs.NewValueIsRequiredError("telegramId")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		telegramID:    telegramID,
		role:          role,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a User from persistence without resetting timestamps.
func RestoreUser(id, telegramID int64, role Role, createdAt, updatedAt time.Time) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if telegramID <= 0 {
		return nil, errs.NewValueIsRequiredError("telegramId")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		telegramID:    telegramID,
		role:          role,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was built through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// SetID records the storage-assigned identifier. It may be called exactly once.
func (u *User) SetID(id int64) error {
	if u.id != 0 {
		return ErrUserIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}

	u.id = id
	return nil
}

// ID returns the internal identifier (zero before first persist).
func (u *User) ID() int64 {
	return u.id
}

// TelegramID returns the external platform identifier.
func (u *User) TelegramID() int64 {
	return u.telegramID
}

// Role returns the user's current role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// IsAppraiser reports whether the user holds the APPRAISER role.
func (u *User) IsAppraiser() bool {
	return u.role == Appraiser
}

// PromoteToAppraiser upgrades the user's role in place.
// Returns false when the user already is an appraiser, so callers can skip the save.
func (u *User) PromoteToAppraiser() bool {
	if u.role == Appraiser {
		return false
	}

	u.role = Appraiser
	u.updatedAt = time.Now()
	return true
}
