// Package jobs provides scheduled background tasks for the appraisal service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the asynchronous follow-up work of order processing.
//
// # Available Jobs
//
// 1. OrderEventsJob - Runs every second to drain the in-process event queue:
// notifies registered appraisers about new orders, advances freshly created
// orders to APPRAISOR_SEARCH, and logs status transitions.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(queue, notifier, searchHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - The search advance ignores invalid-state errors: the order may already
//     have progressed past PAID when the event is dispatched.
//   - Notification failures are logged and do not block the search advance.
package jobs
