package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"matching/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepIntervalSeconds is the sweep cadence used when the configured
// interval is not positive.
const DefaultSweepIntervalSeconds = 30

// ExpirySweepJob periodically runs the expiry sweep so requests and offers
// past their persisted deadlines reach their terminal statuses. Because the
// deadlines live in the store, a missed run or a restart only delays expiry;
// the next sweep picks everything up.
type ExpirySweepJob struct {
	handler         commands.SweepExpiredCommandHandler
	cron            *cron.Cron
	intervalSeconds int
	logger          *slog.Logger
}

// NewExpirySweepJob creates a job that sweeps every intervalSeconds.
// A non-positive interval falls back to DefaultSweepIntervalSeconds.
func NewExpirySweepJob(
	handler commands.SweepExpiredCommandHandler,
	intervalSeconds int,
	logger *slog.Logger,
) *ExpirySweepJob {
	if intervalSeconds <= 0 {
		intervalSeconds = DefaultSweepIntervalSeconds
	}

	return &ExpirySweepJob{
		handler:         handler,
		cron:            cron.New(cron.WithSeconds()),
		intervalSeconds: intervalSeconds,
		logger:          logger.With("component", "expiry_sweep_job"),
	}
}

// Start begins the periodic sweep.
func (j *ExpirySweepJob) Start() error {
	spec := fmt.Sprintf("@every %ds", j.intervalSeconds)
	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewSweepExpiredCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep command construction failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep failed", "error", handleErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry sweep job started",
		slog.Int("interval_seconds", j.intervalSeconds))
	return nil
}

// Stop stops the periodic sweep.
func (j *ExpirySweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry sweep job stopped")
}
