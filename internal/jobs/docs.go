// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipment lifecycle.
//
// # Available Jobs
//
// 1. ShipmentResolutionJob - Runs every second to poll queued shipping
// identifiers and resolve each shipment against its delivery deadline
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processBatchHandler, logger)
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
// The resolution job uses the cron expression "* * * * * *" which means it
// runs every second. This frequency keeps the observed resolution lag close
// to the queue poll wait.
//
// # Error Handling
//
// - A failed poll is logged and retried on the next tick
// - Per-shipment resolution failures are logged individually and never stop
//   the rest of the batch
package jobs
