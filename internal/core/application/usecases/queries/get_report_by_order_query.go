package queries

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrGetReportByOrderQueryIsNotConstructed = errors.New(
		"GetReportByOrderQuery must be created via NewGetReportByOrderQuery constructor",
	)
)

// GetReportByOrderQuery retrieves the report attached to an order.
type GetReportByOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetReportByOrderQuery creates a query for an order's report.
func NewGetReportByOrderQuery(orderID int64) (GetReportByOrderQuery, error) {
	if orderID <= 0 {
		return GetReportByOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetReportByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetReportByOrderQueryIsNotConstructed)
}

// OrderID returns the order identifier.
func (q GetReportByOrderQuery) OrderID() int64 {
	return q.orderID
}
