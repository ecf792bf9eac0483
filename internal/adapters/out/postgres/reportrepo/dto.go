// Package reportrepo provides data transfer objects and mapping functions for report persistence.
// Reports are write-once: the repository exposes no update or delete, and a uniqueness
// constraint on order_id enforces at most one report per order at the storage level.
package reportrepo

import (
	"time"

	"appraise/internal/core/domain/model/report"
)

// ReportDTO represents the database structure for persisting report aggregates.
type ReportDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"uniqueIndex"`
	PdfFile   []byte `gorm:"type:bytea"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for report entities.
func (ReportDTO) TableName() string {
	return "reports"
}

// fromDomain converts a report domain aggregate to its database representation.
func fromDomain(aggregate *report.Report) ReportDTO {
	return ReportDTO{
		ID:        aggregate.ID(),
		OrderID:   aggregate.OrderID(),
		PdfFile:   aggregate.PdfFile(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a report domain aggregate.
func toDomain(dto ReportDTO) (*report.Report, error) {
	return report.RestoreReport(dto.ID, dto.OrderID, dto.PdfFile, dto.CreatedAt, dto.UpdatedAt)
}
