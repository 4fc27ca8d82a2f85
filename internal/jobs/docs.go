// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and coordinated
// through JobManager:
//
//	jobManager := jobs.NewJobManager(sweepHandler, location, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is OrderSweepJob, which fires at midnight in the
// warehouse timezone and advances order lifecycles based on pickup
// proximity: past-due orders complete, orders within the release window are
// released to fulfillment. The sweep is idempotent, so a missed or repeated
// run cannot corrupt lifecycles.
package jobs
