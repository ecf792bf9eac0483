// Package queries contains read-only operations in the CQRS layout. Query
// handlers read directly through gorm and return plain response structs; they
// never touch the write-side aggregates.
package queries

import (
	"errors"
	"time"

	"appraise/internal/core/domain/model/order"
	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// OrderResponse is the read model for a single order.
type OrderResponse struct {
	ID          int64
	ClientID    int64
	AppraiserID *int64
	CarAdURL    string
	CarLocation string
	CarPrice    decimal.Decimal
	DateCreated time.Time
	Status      order.Status
	ReportID    *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetOrderQuery retrieves one order by identifier.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}
