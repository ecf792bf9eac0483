// Package report provides the Report aggregate, the PDF deliverable that
// satisfies an order's completion precondition. A report is created exactly
// once per order and is immutable afterwards; the content is an opaque byte
// sequence stored and returned byte-for-byte.
package report

import (
	"errors"
	"time"

	"appraise/internal/pkg/errs"
)

var (
	// ErrReportIsNotConstructed is returned when a Report instance was not
	// created through NewReport or RestoreReport.
	ErrReportIsNotConstructed = errors.New("Report must be created via NewReport or RestoreReport")

	// ErrReportIDAlreadySet is returned when SetID is called on a persisted report.
	ErrReportIDAlreadySet = errors.New("report ID has already been assigned")
)

// Report is the binary deliverable for one order.
type Report struct {
	// id is assigned by storage on first persist; zero until then.
	id int64

	// orderID references the order this report fulfills; exactly one report
	// may exist per order (enforced by a storage uniqueness constraint).
	orderID int64

	// pdfFile is the opaque report content. No format validation happens here.
	pdfFile []byte

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewReport creates a Report for the given order. The content must be non-empty.
func NewReport(orderID int64, pdfFile []byte) (*Report, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if len(pdfFile) == 0 {
		return nil, errs.NewValueIsRequiredError("pdfFile")
	}

	now := time.Now()
	return &Report{
		orderID:       orderID,
		pdfFile:       pdfFile,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreReport reconstructs a Report from persistence.
func RestoreReport(id, orderID int64, pdfFile []byte, createdAt, updatedAt time.Time) (*Report, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if len(pdfFile) == 0 {
		return nil, errs.NewValueIsRequiredError("pdfFile")
	}

	return &Report{
		id:            id,
		orderID:       orderID,
		pdfFile:       pdfFile,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Report was built through a constructor.
func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

// SetID records the storage-assigned identifier. It may be called exactly once.
func (r *Report) SetID(id int64) error {
	if r.id != 0 {
		return ErrReportIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}

	r.id = id
	return nil
}

// ID returns the report's identifier (zero before first persist).
func (r *Report) ID() int64 { return r.id }

// OrderID returns the identifier of the fulfilled order.
func (r *Report) OrderID() int64 { return r.orderID }

// PdfFile returns the report content exactly as it was submitted.
func (r *Report) PdfFile() []byte { return r.pdfFile }

// CreatedAt returns the creation timestamp.
func (r *Report) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last-modification timestamp.
func (r *Report) UpdatedAt() time.Time { return r.updatedAt }
