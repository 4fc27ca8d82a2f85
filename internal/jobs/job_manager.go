package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodbank/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	orderSweepJob *OrderSweepJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepOrdersCommandHandler,
	location *time.Location,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderSweepJob: NewOrderSweepJob(sweepHandler, location, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start order sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderSweepJob.Stop()
}
