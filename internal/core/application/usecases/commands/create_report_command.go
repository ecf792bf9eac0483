package commands

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrCreateReportCommandIsNotConstructed = errors.New(
		"CreateReportCommand must be created via NewCreateReportCommand constructor",
	)
)

// CreateReportCommand represents the assigned appraiser submitting the PDF
// deliverable for an order that is IN_PROGRESS.
type CreateReportCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	pdfFile     []byte
	appraiserID int64

	guard guard.ConstructorGuard
}

// NewCreateReportCommand creates a command to attach a report to an order.
// The content is carried as-is; no format validation happens in the core.
func NewCreateReportCommand(orderID int64, pdfFile []byte, appraiserID int64) (CreateReportCommand, error) {
	reportCommand := CreateReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reportCommand.setOrderID(orderID),
		reportCommand.setPdfFile(pdfFile),
		reportCommand.setAppraiserID(appraiserID),
	); err != nil {
		return CreateReportCommand{}, err
	}

	return reportCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReportCommand) Validate() error {
	return c.guard.Validate(ErrCreateReportCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being fulfilled.
func (c CreateReportCommand) OrderID() int64 {
	return c.orderID
}

// PdfFile returns the submitted report content.
func (c CreateReportCommand) PdfFile() []byte {
	return c.pdfFile
}

// AppraiserID returns the submitting appraiser's identifier.
func (c CreateReportCommand) AppraiserID() int64 {
	return c.appraiserID
}

func (c *CreateReportCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateReportCommand) setPdfFile(pdfFile []byte) error {
	if len(pdfFile) == 0 {
		return errs.NewValueIsRequiredError("pdfFile")
	}

	c.pdfFile = pdfFile
	return nil
}

func (c *CreateReportCommand) setAppraiserID(appraiserID int64) error {
	if appraiserID <= 0 {
		return errs.NewValueIsRequiredError("appraiserId")
	}

	c.appraiserID = appraiserID
	return nil
}
