package commands

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrRegisterAppraiserCommandIsNotConstructed = errors.New(
		"RegisterAppraiserCommand must be created via NewRegisterAppraiserCommand constructor",
	)
)

// RegisterAppraiserCommand represents an explicit request for the APPRAISER
// role. Promotion from CLIENT only ever happens through this command, gated by
// the configured allow-list; it is never automatic.
type RegisterAppraiserCommand struct { //nolint:recvcheck //using for validation
	telegramID int64

	guard guard.ConstructorGuard
}

// NewRegisterAppraiserCommand creates a command to register an appraiser.
func NewRegisterAppraiserCommand(telegramID int64) (RegisterAppraiserCommand, error) {
	registerCommand := RegisterAppraiserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := registerCommand.setTelegramID(telegramID); err != nil {
		return RegisterAppraiserCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAppraiserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAppraiserCommandIsNotConstructed)
}

// TelegramID returns the external platform identifier.
func (c RegisterAppraiserCommand) TelegramID() int64 {
	return c.telegramID
}

func (c *RegisterAppraiserCommand) setTelegramID(telegramID int64) error {
	if telegramID <= 0 {
		return errs.NewValueIsRequiredError("telegramId")
	}

	c.telegramID = telegramID
	return nil
}
