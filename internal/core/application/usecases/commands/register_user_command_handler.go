package commands

import (
	"context"
	"errors"

	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"
)

// RegisterUserCommandHandler implements find-or-create by Telegram ID.
// A new user gets the APPRAISER role when the Telegram ID is allow-listed,
// CLIENT otherwise; an existing user is returned unchanged.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	allowList  user.AllowList
}

// NewRegisterUserCommandHandler creates a handler for user registration.
// The appraiser allow-list is injected at construction time.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, allowList user.AllowList) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		allowList:  allowList,
	}
}

// Handle returns the existing user for the Telegram ID, or creates one.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	role := user.Client
	if h.allowList.Contains(cmd.TelegramID()) {
		role = user.Appraiser
	}

	newUser, err := user.NewUser(cmd.TelegramID(), role)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
