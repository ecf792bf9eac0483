package http

import (
	"net/http"

	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users/register - find-or-create by
// Telegram id. The role is APPRAISER when the id is allow-listed, else CLIENT.
func (s *Server) RegisterUser(ctx echo.Context) error {
	id, err := telegramID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	registered, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToResponse(registered))
}

// RegisterAppraiser handles POST /api/v1/users/register-appraiser - registers
// or promotes an allow-listed Telegram id to the APPRAISER role.
func (s *Server) RegisterAppraiser(ctx echo.Context) error {
	id, err := telegramID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterAppraiserCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	registered, err := s.registerAppraiserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToResponse(registered))
}

// GetCurrentUser handles GET /api/v1/users/me - looks up the caller.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	id, err := telegramID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetUserByTelegramIDQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	model, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userReadModelToResponse(model))
}
