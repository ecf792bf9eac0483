package commands

import (
	"context"

	"appraise/internal/core/domain/model/report"
)

// CreateReportCommandHandler accepts the appraiser's report and completes the
// order. The report row and the order's terminal transition to DONE commit in
// one transaction; this is the only path by which an order reaches DONE, and
// it guarantees the report precondition by construction instead of reusing the
// general transition table.
type CreateReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

// NewCreateReportCommandHandler creates a handler for report submission.
func NewCreateReportCommandHandler(uowFactory ReportUoWFactory) CreateReportCommandHandler {
	return CreateReportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates that the submitting appraiser is the one assigned and that
// the order is IN_PROGRESS, persists the report, and completes the order with
// the new report attached. Returns the persisted report.
func (h CreateReportCommandHandler) Handle(ctx context.Context, cmd CreateReportCommand) (*report.Report, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	fulfilledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = fulfilledOrder.CanAcceptReport(cmd.AppraiserID()); err != nil {
		return nil, err
	}

	newReport, err := report.NewReport(cmd.OrderID(), cmd.PdfFile())
	if err != nil {
		return nil, err
	}

	if err = uow.ReportRepository().Add(ctx, newReport); err != nil {
		return nil, err
	}

	if err = fulfilledOrder.CompleteWithReport(newReport.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, fulfilledOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newReport, nil
}
