// Package ports defines the interfaces the core depends on: persistence,
// transaction boundaries, event publication, and appraiser notification.
// Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"appraise/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and sets the storage-assigned ID on the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound if no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByClientID retrieves all orders placed by the given client, oldest first.
	GetByClientID(ctx context.Context, clientID int64) ([]*order.Order, error)

	// GetByAppraiserID retrieves all orders assigned to the given appraiser, oldest first.
	GetByAppraiserID(ctx context.Context, appraiserID int64) ([]*order.Order, error)
}
