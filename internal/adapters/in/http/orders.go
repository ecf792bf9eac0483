package http

import (
	"net/http"

	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/application/usecases/queries"
	"appraise/internal/core/domain/model/kernel"
	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - places a new appraisal order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := s.resolveUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid request body",
			TraceID: ctx.Response().Header().Get(HeaderTraceID),
		})
	}

	price, err := kernel.NewPrice(req.CarPrice)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor.ID, req.CarAdURL, req.CarLocation, price)
	if err != nil {
		return s.respondError(ctx, err)
	}

	newOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(newOrder))
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders.
// A client sees the orders they placed; an appraiser sees the orders
// assigned to them.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := s.resolveUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var models []queries.OrderResponse
	if actor.Role == user.Appraiser {
		query, queryErr := queries.NewGetAppraiserOrdersQuery(actor.ID)
		if queryErr != nil {
			return s.respondError(ctx, queryErr)
		}
		models, err = s.getAppraiserOrdersHandler.Handle(ctx.Request().Context(), query)
	} else {
		query, queryErr := queries.NewGetClientOrdersQuery(actor.ID)
		if queryErr != nil {
			return s.respondError(ctx, queryErr)
		}
		models, err = s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	}
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, len(models))
	for i, model := range models {
		response[i] = orderReadModelToResponse(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	if _, err := s.resolveUser(ctx); err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderReadModelToResponse(model))
}

// PayOrder handles POST /api/v1/orders/:orderId/pay - marks the order paid.
func (s *Server) PayOrder(ctx echo.Context) error {
	actor, err := s.resolveUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderID, actor.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	paidOrder, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(paidOrder))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:orderId/status - applies a
// lifecycle transition on behalf of the caller.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, err := s.resolveUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid request body",
			TraceID: ctx.Response().Header().Get(HeaderTraceID),
		})
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next, actor.ID, actor.Role)
	if err != nil {
		return s.respondError(ctx, err)
	}

	changedOrder, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(changedOrder))
}

// AssignOrder handles POST /api/v1/orders/:orderId/assign - attaches the
// calling appraiser to an order already in ASSIGNED status.
func (s *Server) AssignOrder(ctx echo.Context) error {
	actor, err := s.resolveUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if actor.Role != user.Appraiser {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Message: "only an appraiser can be assigned to an order",
			TraceID: ctx.Response().Header().Get(HeaderTraceID),
		})
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, actor.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	assignedOrder, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(assignedOrder))
}
