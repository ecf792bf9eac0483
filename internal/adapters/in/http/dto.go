package http

import (
	"time"

	"appraise/internal/core/application/usecases/queries"
	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the JSON body for placing a new order.
type CreateOrderRequest struct {
	CarAdURL    string          `json:"carAdUrl"`
	CarLocation string          `json:"carLocation"`
	CarPrice    decimal.Decimal `json:"carPrice"`
}

// ChangeOrderStatusRequest is the JSON body for a status transition.
// Status carries the wire token, e.g. "IN_PROGRESS".
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"clientId"`
	AppraiserID *int64          `json:"appraiserId,omitempty"`
	CarAdURL    string          `json:"carAdUrl"`
	CarLocation string          `json:"carLocation"`
	CarPrice    decimal.Decimal `json:"carPrice"`
	DateCreated time.Time       `json:"dateCreated"`
	Status      string          `json:"status"`
	ReportID    *int64          `json:"reportId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// UserResponse is the JSON representation of a user.
type UserResponse struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegramId"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ReportResponse is the JSON metadata returned after a report upload.
type ReportResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrorResponse is the JSON body for all error statuses.
type ErrorResponse struct {
	Message string `json:"message"`
	TraceID string `json:"traceId,omitempty"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:          aggregate.ID(),
		ClientID:    aggregate.ClientID(),
		AppraiserID: aggregate.AppraiserID(),
		CarAdURL:    aggregate.CarAdURL(),
		CarLocation: aggregate.CarLocation(),
		CarPrice:    aggregate.CarPrice().Amount(),
		DateCreated: aggregate.DateCreated(),
		Status:      aggregate.Status().String(),
		ReportID:    aggregate.ReportID(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func orderReadModelToResponse(model queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:          model.ID,
		ClientID:    model.ClientID,
		AppraiserID: model.AppraiserID,
		CarAdURL:    model.CarAdURL,
		CarLocation: model.CarLocation,
		CarPrice:    model.CarPrice,
		DateCreated: model.DateCreated,
		Status:      model.Status.String(),
		ReportID:    model.ReportID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func userToResponse(aggregate *user.User) UserResponse {
	return UserResponse{
		ID:         aggregate.ID(),
		TelegramID: aggregate.TelegramID(),
		Role:       aggregate.Role().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func userReadModelToResponse(model queries.UserResponse) UserResponse {
	return UserResponse{
		ID:         model.ID,
		TelegramID: model.TelegramID,
		Role:       model.Role.String(),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
