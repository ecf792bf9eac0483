package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"appraise/internal/adapters/out/messaging"
	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/ports"
	"appraise/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OrderEventsJob drains the in-process event queue. For each order-created
// event it notifies registered appraisers and advances the order to
// APPRAISOR_SEARCH; status-changed events are logged for observability.
// Runs every second so follow-up work stays near-real-time.
type OrderEventsJob struct {
	queue         *messaging.Queue
	notifier      ports.AppraiserNotifier
	searchHandler commands.StartAppraiserSearchCommandHandler
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewOrderEventsJob creates a job that dispatches queued order events.
func NewOrderEventsJob(
	queue *messaging.Queue,
	notifier ports.AppraiserNotifier,
	searchHandler commands.StartAppraiserSearchCommandHandler,
	logger *slog.Logger,
) *OrderEventsJob {
	return &OrderEventsJob{
		queue:         queue,
		notifier:      notifier,
		searchHandler: searchHandler,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "order_events_job"),
	}
}

// Start begins the event dispatch job to run every second.
func (j *OrderEventsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		j.dispatchCreated(ctx)
		j.dispatchStatusChanged(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order events job started (running every second)")
	return nil
}

// Stop stops the event dispatch job.
func (j *OrderEventsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order events job stopped")
}

func (j *OrderEventsJob) dispatchCreated(ctx context.Context) {
	for _, event := range j.queue.DrainOrderCreated() {
		message := fmt.Sprintf("New order available!\nCar: %s\nLocation: %s\nPrice: %s",
			event.CarAdURL, event.CarLocation, event.CarPrice.String())

		if err := j.notifier.NotifyAppraisers(ctx, message, event.OrderID); err != nil {
			j.logger.ErrorContext(ctx, "Failed to notify appraisers", "orderId", event.OrderID, "error", err)
		}

		j.startSearch(ctx, event.OrderID)
	}
}

func (j *OrderEventsJob) startSearch(ctx context.Context, orderID int64) {
	cmd, err := commands.NewStartAppraiserSearchCommand(orderID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build search command", "orderId", orderID, "error", err)
		return
	}

	if err = j.searchHandler.Handle(ctx, cmd); err != nil {
		// The order may already have moved past PAID by the time the event
		// is dispatched; that race is expected and not an error.
		if !errors.Is(err, errs.ErrInvalidState) {
			j.logger.ErrorContext(ctx, "Failed to start appraiser search", "orderId", orderID, "error", err)
		}
	}
}

func (j *OrderEventsJob) dispatchStatusChanged(ctx context.Context) {
	for _, event := range j.queue.DrainOrderStatusChanged() {
		j.logger.InfoContext(ctx, "Order status changed",
			"orderId", event.OrderID,
			"status", event.Status.String(),
			"appraiserId", event.AppraiserID)
	}
}
