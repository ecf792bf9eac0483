package queries

import (
	"context"
	"database/sql"
	"errors"

	"appraise/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetReportByOrderQueryHandler retrieves the report attached to an order.
type GetReportByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetReportByOrderQueryHandler creates a handler for order-report reads.
func NewGetReportByOrderQueryHandler(db *gorm.DB) GetReportByOrderQueryHandler {
	return GetReportByOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the order
// has no report yet.
func (h GetReportByOrderQueryHandler) Handle(
	ctx context.Context, query GetReportByOrderQuery,
) (ReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ReportResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(reportColumns+`WHERE order_id = ?`, query.OrderID()).Row()

	resp, err := scanReportRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return ReportResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return ReportResponse{}, err
	}

	return resp, nil
}
