// Package http provides the inbound HTTP adapter: an echo server exposing the
// order, report and user operations, plus trace-id propagation and error
// mapping. Callers identify themselves with a telegramId query parameter; the
// adapter resolves it to a registered user before invoking a use case.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/application/usecases/queries"
	"appraise/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	payOrderHandler          commands.PayOrderCommandHandler
	changeStatusHandler      commands.ChangeOrderStatusCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	createReportHandler      commands.CreateReportCommandHandler
	registerUserHandler      commands.RegisterUserCommandHandler
	registerAppraiserHandler commands.RegisterAppraiserCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getClientOrdersHandler    queries.GetClientOrdersQueryHandler
	getAppraiserOrdersHandler queries.GetAppraiserOrdersQueryHandler
	getReportHandler          queries.GetReportQueryHandler
	getReportByOrderHandler   queries.GetReportByOrderQueryHandler
	getUserHandler            queries.GetUserByTelegramIDQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	createReportHandler commands.CreateReportCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	registerAppraiserHandler commands.RegisterAppraiserCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getClientOrdersHandler queries.GetClientOrdersQueryHandler,
	getAppraiserOrdersHandler queries.GetAppraiserOrdersQueryHandler,
	getReportHandler queries.GetReportQueryHandler,
	getReportByOrderHandler queries.GetReportByOrderQueryHandler,
	getUserHandler queries.GetUserByTelegramIDQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		payOrderHandler:           payOrderHandler,
		changeStatusHandler:       changeStatusHandler,
		assignOrderHandler:        assignOrderHandler,
		createReportHandler:       createReportHandler,
		registerUserHandler:       registerUserHandler,
		registerAppraiserHandler:  registerAppraiserHandler,
		getOrderHandler:           getOrderHandler,
		getClientOrdersHandler:    getClientOrdersHandler,
		getAppraiserOrdersHandler: getAppraiserOrdersHandler,
		getReportHandler:          getReportHandler,
		getReportByOrderHandler:   getReportByOrderHandler,
		getUserHandler:            getUserHandler,
		logger:                    logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/users/register", s.RegisterUser)
	api.POST("/users/register-appraiser", s.RegisterAppraiser)
	api.GET("/users/me", s.GetCurrentUser)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/pay", s.PayOrder)
	api.PUT("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/assign", s.AssignOrder)

	api.POST("/reports/orders/:orderId", s.UploadReport)
	api.GET("/reports/orders/:orderId", s.DownloadReportByOrder)
	api.GET("/reports/:reportId", s.DownloadReport)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// telegramID extracts and parses the mandatory telegramId query parameter.
func telegramID(ctx echo.Context) (int64, error) {
	raw := ctx.QueryParam("telegramId")
	if raw == "" {
		return 0, errs.NewValueIsRequiredError("telegramId")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("telegramId")
	}

	return id, nil
}

// pathID parses a positive int64 path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}

	return id, nil
}

// resolveUser maps the telegramId query parameter to a registered user.
func (s *Server) resolveUser(ctx echo.Context) (queries.UserResponse, error) {
	id, err := telegramID(ctx)
	if err != nil {
		return queries.UserResponse{}, err
	}

	query, err := queries.NewGetUserByTelegramIDQuery(id)
	if err != nil {
		return queries.UserResponse{}, err
	}

	return s.getUserHandler.Handle(ctx.Request().Context(), query)
}
