package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"foodbank/internal/core/application/usecases/commands"
)

// sweepSpec fires at midnight in the schedule's location.
const sweepSpec = "0 0 0 * * *"

// OrderSweepJob runs the nightly lifecycle sweep: past-due orders are
// completed and orders entering the release window are handed to fulfillment.
// The cron runs in the warehouse timezone so "midnight" tracks the pickup
// calendar, including across DST changes.
type OrderSweepJob struct {
	handler commands.SweepOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSweepJob creates the nightly sweep job in the given location.
func NewOrderSweepJob(
	handler commands.SweepOrdersCommandHandler,
	location *time.Location,
	logger *slog.Logger,
) *OrderSweepJob {
	return &OrderSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds(), cron.WithLocation(location)),
		logger:  logger.With("component", "order_sweep_job"),
	}
}

// Start schedules the sweep at midnight every day.
func (j *OrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(sweepSpec, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepOrdersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order sweep command construction failed", "error", cmdErr)
			return
		}

		advanced, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order sweep failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Order sweep finished", "advanced", advanced)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sweep job started (running nightly at midnight)")
	return nil
}

// Stop stops the sweep job.
func (j *OrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sweep job stopped")
}
