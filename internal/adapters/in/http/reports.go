package http

import (
	"fmt"
	"io"
	"net/http"

	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/application/usecases/queries"
	"appraise/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// UploadReport handles POST /api/v1/reports/orders/:orderId - attaches the
// appraisal PDF to an order and completes it. APPRAISER role required.
func (s *Server) UploadReport(ctx echo.Context) error {
	actor, err := s.resolveUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if actor.Role != user.Appraiser {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Message: "only an appraiser can upload a report",
			TraceID: ctx.Response().Header().Get(HeaderTraceID),
		})
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "multipart field \"file\" is required",
			TraceID: ctx.Response().Header().Get(HeaderTraceID),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return s.respondError(ctx, err)
	}
	defer file.Close()

	pdfFile, err := io.ReadAll(file)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateReportCommand(orderID, pdfFile, actor.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	newReport, err := s.createReportHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ReportResponse{
		ID:        newReport.ID(),
		OrderID:   newReport.OrderID(),
		CreatedAt: newReport.CreatedAt(),
	})
}

// DownloadReportByOrder handles GET /api/v1/reports/orders/:orderId - streams
// the PDF attached to an order.
func (s *Server) DownloadReportByOrder(ctx echo.Context) error {
	if _, err := s.resolveUser(ctx); err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetReportByOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	model, err := s.getReportByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.servePdf(ctx, model)
}

// DownloadReport handles GET /api/v1/reports/:reportId - streams a report PDF.
func (s *Server) DownloadReport(ctx echo.Context) error {
	if _, err := s.resolveUser(ctx); err != nil {
		return s.respondError(ctx, err)
	}

	reportID, err := pathID(ctx, "reportId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetReportQuery(reportID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	model, err := s.getReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.servePdf(ctx, model)
}

// servePdf returns the report content byte-for-byte with an attachment disposition.
func (s *Server) servePdf(ctx echo.Context, model queries.ReportResponse) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="report-%d.pdf"`, model.OrderID))
	return ctx.Blob(http.StatusOK, "application/pdf", model.PdfFile)
}
