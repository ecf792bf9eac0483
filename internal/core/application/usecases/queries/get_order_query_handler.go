package queries

import (
	"context"
	"database/sql"
	"errors"

	"appraise/internal/core/domain/model/order"
	"appraise/internal/pkg/errs"

	"gorm.io/gorm"
)

const orderColumns = `
	SELECT
		id,
		client_id,
		appraiser_id,
		car_ad_url,
		car_location,
		car_price,
		date_created,
		status,
		report_id,
		created_at,
		updated_at
	FROM orders
`

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound for a missing order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(orderColumns+`WHERE id = ?`, query.OrderID()).Row()

	resp, err := scanOrderRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// scanOrderRow maps one orders row onto an OrderResponse. The scan argument
// abstracts over *sql.Row and *sql.Rows.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var resp OrderResponse
	var statusValue int

	err := scan(
		&resp.ID,
		&resp.ClientID,
		&resp.AppraiserID,
		&resp.CarAdURL,
		&resp.CarLocation,
		&resp.CarPrice,
		&resp.DateCreated,
		&statusValue,
		&resp.ReportID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.Status = order.Status(statusValue)
	return resp, nil
}
