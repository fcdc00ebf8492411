// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the parcel workflow.
//
// # Available Jobs
//
// 1. PaymentReconciliationJob - Runs every minute to create the cash-on-delivery
// payment for any delivered parcel that is missing one
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcilePaymentsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reconciliation job uses the cron expression "0 * * * * *" which means it
// runs at the top of every minute. Payments are normally created in the same
// transaction as the delivery transition, so the sweep only repairs gaps left
// by historical data or manual database edits.
//
// # Error Handling
//
// - Reconciliation treats an empty sweep (no payments missing) as success
// - All other errors are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
