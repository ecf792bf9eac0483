package queries

import (
	"errors"
	"time"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrGetReportQueryIsNotConstructed = errors.New(
		"GetReportQuery must be created via NewGetReportQuery constructor",
	)
)

// ReportResponse is the read model for appraisal reports.
type ReportResponse struct {
	ID        int64
	OrderID   int64
	PdfFile   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetReportQuery retrieves a single report by its identifier.
type GetReportQuery struct { //nolint:recvcheck //using for validation
	reportID int64

	guard guard.ConstructorGuard
}

// NewGetReportQuery creates a query for one report.
func NewGetReportQuery(reportID int64) (GetReportQuery, error) {
	if reportID <= 0 {
		return GetReportQuery{}, errs.NewValueIsRequiredError("reportId")
	}

	return GetReportQuery{
		reportID: reportID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}

// ReportID returns the report identifier.
func (q GetReportQuery) ReportID() int64 {
	return q.reportID
}
