package reportrepo

import (
	"context"
	"errors"

	"appraise/internal/core/domain/model/report"
	"appraise/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository using GORM.
type GormReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormReportRepository creates a new GORM report repository.
func NewGormReportRepository(db *gorm.DB, tracker aggregateTracker) *GormReportRepository {
	return &GormReportRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new report to the database and propagates the assigned ID back
// to the aggregate. The order_id uniqueness constraint rejects a second report
// for the same order.
func (r *GormReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.SetID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a report by ID.
func (r *GormReportRepository) Get(ctx context.Context, id int64) (*report.Report, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto ReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("report", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the report attached to the given order.
func (r *GormReportRepository) GetByOrderID(ctx context.Context, orderID int64) (*report.Report, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dto ReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}
