package ports

import (
	"context"

	"appraise/internal/core/domain/model/report"
)

// ReportRepository defines the persistence contract for report aggregates.
// Reports are write-once: there is no update or delete.
type ReportRepository interface {
	// Add persists a new report and sets the storage-assigned ID on the aggregate.
	// The storage layer enforces at most one report per order.
	Add(ctx context.Context, aggregate *report.Report) error

	// Get retrieves a report by its identifier.
	// Returns errs.ErrObjectNotFound if no such report exists.
	Get(ctx context.Context, id int64) (*report.Report, error)

	// GetByOrderID retrieves the report attached to the given order.
	// Returns errs.ErrObjectNotFound if the order has no report.
	GetByOrderID(ctx context.Context, orderID int64) (*report.Report, error)
}
