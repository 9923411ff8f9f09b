package orgrepo

import (
	"context"
	"errors"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/organization"
	"shiplabel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrganizationRepository implements ports.OrganizationStore using GORM.
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GORM organization repository.
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// Add saves a new organization. Organizations are normally managed by the
// warehouse application; this exists for seeding and tests.
func (r *GormOrganizationRepository) Add(ctx context.Context, org *organization.Organization) error {
	dto, err := fromDomain(org)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an organization by ID.
func (r *GormOrganizationRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*organization.Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrganizationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("organization", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListScheduled returns organizations that are candidates for automatic runs:
// schedule enabled and a carrier API key configured.
func (r *GormOrganizationRepository) ListScheduled(
	ctx context.Context,
) ([]*organization.Organization, error) {
	var dtos []OrganizationDTO
	err := r.db.WithContext(ctx).
		Where("schedule_enabled = ? AND has_carrier_api_key = ?", true, true).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	organizations := make([]*organization.Organization, 0, len(dtos))
	for _, dto := range dtos {
		org, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		organizations = append(organizations, org)
	}

	return organizations, nil
}

// UpdateSchedule replaces an organization's automatic-run schedule, keeping
// the queryable schedule_enabled column in sync with the settings document.
func (r *GormOrganizationRepository) UpdateSchedule(
	ctx context.Context,
	id kernel.UUID,
	schedule organization.Schedule,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	org, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	org.Shipping.Schedule = schedule
	dto, err := fromDomain(org)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&OrganizationDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"settings":         dto.Settings,
			"schedule_enabled": dto.ScheduleEnabled,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("organization", id.String())
	}

	return nil
}
