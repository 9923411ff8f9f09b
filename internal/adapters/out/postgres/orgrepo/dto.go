// Package orgrepo persists organizations and their shipping settings.
package orgrepo

import (
	"encoding/json"
	"time"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/organization"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrganizationDTO represents the database structure for organizations.
// Shipping settings live in a JSONB document; the schedule-enabled flag and
// key presence are lifted into columns so the scheduler can select candidates
// without unpacking every row.
type OrganizationDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name             string         `gorm:"index"`
	Settings         datatypes.JSON `gorm:"type:jsonb"`
	ScheduleEnabled  bool           `gorm:"index"`
	HasCarrierAPIKey bool           `gorm:"column:has_carrier_api_key"`
	UpdatedAt        time.Time
}

// TableName specifies the database table name for organization records.
func (OrganizationDTO) TableName() string {
	return "organizations"
}

func fromDomain(org *organization.Organization) (OrganizationDTO, error) {
	settings, err := json.Marshal(org.Shipping)
	if err != nil {
		return OrganizationDTO{}, err
	}

	return OrganizationDTO{
		ID:               org.ID.Bytes(),
		Name:             org.Name,
		Settings:         datatypes.JSON(settings),
		ScheduleEnabled:  org.Shipping.Schedule.Enabled,
		HasCarrierAPIKey: org.Shipping.APIKey != "",
	}, nil
}

func toDomain(dto OrganizationDTO) (*organization.Organization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var settings organization.ShippingSettings
	if len(dto.Settings) > 0 {
		if err = json.Unmarshal(dto.Settings, &settings); err != nil {
			return nil, err
		}
	}

	return &organization.Organization{
		ID:       id,
		Name:     dto.Name,
		Shipping: settings,
	}, nil
}
