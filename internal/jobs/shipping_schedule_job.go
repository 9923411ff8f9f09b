package jobs

import (
	"context"
	"log/slog"
	"time"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultTimezone is the reference timezone for schedule checks. Every
// organization's check hour is interpreted in this one zone.
const DefaultTimezone = "America/New_York"

// batchDispatcher is the slice of the batch handler the job needs.
type batchDispatcher interface {
	Handle(ctx context.Context, cmd commands.ProcessBatchShippingCommand) (commands.BatchReport, error)
}

// ShippingScheduleJob runs at the top of every hour and dispatches a shipping
// batch for each organization whose configured check hour matches the current
// hour in the reference timezone. Firing hourly and filtering by hour keeps
// the schedule state out of the engine: there is nothing to persist and a
// missed tick costs at most one day's run for an organization.
type ShippingScheduleJob struct {
	organizations ports.OrganizationStore
	orders        ports.OrderStore
	dispatcher    batchDispatcher
	cron          *cron.Cron
	location      *time.Location
	now           func() time.Time
	logger        *slog.Logger
}

// NewShippingScheduleJob creates the hourly schedule job. A nil location
// falls back to the reference timezone.
func NewShippingScheduleJob(
	organizations ports.OrganizationStore,
	orders ports.OrderStore,
	dispatcher batchDispatcher,
	location *time.Location,
	logger *slog.Logger,
) *ShippingScheduleJob {
	if location == nil {
		location, _ = time.LoadLocation(DefaultTimezone)
	}

	return &ShippingScheduleJob{
		organizations: organizations,
		orders:        orders,
		dispatcher:    dispatcher,
		cron:          cron.New(cron.WithSeconds()),
		location:      location,
		now:           time.Now,
		logger:        logger.With("component", "shipping_schedule_job"),
	}
}

// Start begins the hourly schedule checks.
func (j *ShippingScheduleJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipping schedule job started (running hourly)")
	return nil
}

// Stop stops the schedule job.
func (j *ShippingScheduleJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipping schedule job stopped")
}

// RunOnce performs a single schedule check: every organization due at the
// current reference-timezone hour gets a batch over its eligible orders.
// One organization's failure never blocks the others.
func (j *ShippingScheduleJob) RunOnce(ctx context.Context) {
	now := j.now().In(j.location)

	organizations, err := j.organizations.ListScheduled(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list scheduled organizations", "error", err)
		return
	}

	for _, org := range organizations {
		if !org.Shipping.DueAt(now) {
			continue
		}
		j.runOrganization(ctx, org.ID)
	}
}

func (j *ShippingScheduleJob) runOrganization(ctx context.Context, organizationID kernel.UUID) {
	logger := j.logger.With("organization_id", organizationID.String())

	eligible, err := j.orders.ListEligibleForShipping(ctx, organizationID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list eligible orders", "error", err)
		return
	}

	orderIDs := make([]kernel.UUID, 0, len(eligible))
	for _, ord := range eligible {
		orderIDs = append(orderIDs, ord.ID)
	}

	cmd, err := commands.NewProcessBatchShippingCommand(organizationID, orderIDs, true)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build batch command", "error", err)
		return
	}

	report, err := j.dispatcher.Handle(ctx, cmd)
	if err != nil {
		logger.ErrorContext(ctx, "Scheduled shipping batch failed", "error", err)
		return
	}

	logger.InfoContext(ctx, "Scheduled shipping batch completed",
		"requested", report.Requested,
		"succeeded", len(report.Succeeded),
		"failed", len(report.Failed))
}
