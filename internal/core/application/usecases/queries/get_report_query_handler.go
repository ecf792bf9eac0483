package queries

import (
	"context"
	"database/sql"
	"errors"

	"appraise/internal/pkg/errs"

	"gorm.io/gorm"
)

const reportColumns = `
	SELECT
		id,
		order_id,
		pdf_file,
		created_at,
		updated_at
	FROM reports
`

// GetReportQueryHandler retrieves a single report from the database.
type GetReportQueryHandler struct {
	db *gorm.DB
}

// NewGetReportQueryHandler creates a handler for single-report reads.
func NewGetReportQueryHandler(db *gorm.DB) GetReportQueryHandler {
	return GetReportQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound for a missing report.
func (h GetReportQueryHandler) Handle(ctx context.Context, query GetReportQuery) (ReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ReportResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(reportColumns+`WHERE id = ?`, query.ReportID()).Row()

	resp, err := scanReportRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return ReportResponse{}, errs.NewObjectNotFoundError("reportId", query.ReportID())
	}
	if err != nil {
		return ReportResponse{}, err
	}

	return resp, nil
}

// scanReportRow maps one reports row onto a ReportResponse.
func scanReportRow(scan func(dest ...any) error) (ReportResponse, error) {
	var resp ReportResponse

	err := scan(
		&resp.ID,
		&resp.OrderID,
		&resp.PdfFile,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ReportResponse{}, err
	}

	return resp, nil
}
