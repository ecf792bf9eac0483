package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAppraiserOrdersQueryHandler retrieves all orders assigned to an
// appraiser, oldest first.
type GetAppraiserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAppraiserOrdersQueryHandler creates a handler for appraiser order listings.
func NewGetAppraiserOrdersQueryHandler(db *gorm.DB) GetAppraiserOrdersQueryHandler {
	return GetAppraiserOrdersQueryHandler{db: db}
}

// Handle executes the query. An appraiser with no orders gets an empty slice.
func (h GetAppraiserOrdersQueryHandler) Handle(ctx context.Context, query GetAppraiserOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(orderColumns+`WHERE appraiser_id = ? ORDER BY id`, query.AppraiserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
