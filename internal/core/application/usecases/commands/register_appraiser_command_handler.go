package commands

import (
	"context"
	"errors"
	"fmt"

	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"
)

// RegisterAppraiserCommandHandler grants the APPRAISER role to an allow-listed
// Telegram ID: an existing CLIENT is promoted in place, an existing APPRAISER
// is returned as-is, and an unknown ID gets a fresh APPRAISER user.
type RegisterAppraiserCommandHandler struct {
	uowFactory UserUoWFactory
	allowList  user.AllowList
}

// NewRegisterAppraiserCommandHandler creates a handler for appraiser registration.
func NewRegisterAppraiserCommandHandler(uowFactory UserUoWFactory, allowList user.AllowList) RegisterAppraiserCommandHandler {
	return RegisterAppraiserCommandHandler{
		uowFactory: uowFactory,
		allowList:  allowList,
	}
}

// Handle registers or promotes the appraiser. Fails with ErrValueIsInvalid
// when the Telegram ID is not allow-listed.
func (h RegisterAppraiserCommandHandler) Handle(ctx context.Context, cmd RegisterAppraiserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !h.allowList.Contains(cmd.TelegramID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("telegramId",
			fmt.Errorf("%d is not in the appraiser allow list", cmd.TelegramID()))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.GetByTelegramID(ctx, cmd.TelegramID())
	switch {
	case err == nil:
		if !existing.PromoteToAppraiser() {
			return existing, nil
		}
		if err = userRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, errs.ErrObjectNotFound):
		newUser, userErr := user.NewUser(cmd.TelegramID(), user.Appraiser)
		if userErr != nil {
			return nil, userErr
		}
		if err = userRepo.Add(ctx, newUser); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return newUser, nil

	default:
		return nil, err
	}
}
