package jobs

import (
	"fmt"
	"log/slog"

	"appraise/internal/adapters/out/messaging"
	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderEventsJob *OrderEventsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the event queue, notifier and command handler as dependencies
// to wire up the job execution.
func NewJobManager(
	queue *messaging.Queue,
	notifier ports.AppraiserNotifier,
	searchHandler commands.StartAppraiserSearchCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderEventsJob: NewOrderEventsJob(queue, notifier, searchHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderEventsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order events job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderEventsJob.Stop()
}
