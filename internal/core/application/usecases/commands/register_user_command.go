package commands

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand represents a find-or-create login by Telegram ID.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	telegramID int64

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register or log in a user.
func NewRegisterUserCommand(telegramID int64) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := registerCommand.setTelegramID(telegramID); err != nil {
		return RegisterUserCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// TelegramID returns the external platform identifier.
func (c RegisterUserCommand) TelegramID() int64 {
	return c.telegramID
}

func (c *RegisterUserCommand) setTelegramID(telegramID int64) error {
	if telegramID <= 0 {
		return errs.NewValueIsRequiredError("telegramId")
	}

	c.telegramID = telegramID
	return nil
}
