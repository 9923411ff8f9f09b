package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shippingScheduleJob *ShippingScheduleJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes stores and the batch handler as dependencies to wire up job execution.
func NewJobManager(
	organizations ports.OrganizationStore,
	orders ports.OrderStore,
	batchHandler commands.ProcessBatchShippingCommandHandler,
	location *time.Location,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shippingScheduleJob: NewShippingScheduleJob(organizations, orders, batchHandler, location, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shippingScheduleJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipping schedule job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shippingScheduleJob.Stop()
}
