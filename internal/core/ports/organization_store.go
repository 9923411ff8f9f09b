package ports

import (
	"context"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/organization"
)

// OrganizationStore provides per-tenant shipping settings and schedule
// configuration. The engine only reads settings; UpdateSchedule exists for the
// configuration surface and never runs inside the pipeline.
type OrganizationStore interface {
	// Get retrieves one organization with its shipping settings.
	Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error)

	// ListScheduled returns organizations with shipping enabled and a carrier
	// API key configured, i.e. candidates for the hourly automatic run.
	ListScheduled(ctx context.Context) ([]*organization.Organization, error)

	// UpdateSchedule replaces an organization's automatic-run schedule.
	UpdateSchedule(ctx context.Context, id kernel.UUID, schedule organization.Schedule) error
}
