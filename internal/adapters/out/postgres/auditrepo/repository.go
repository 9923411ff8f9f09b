// Package auditrepo persists the engine's write-only audit trail.
package auditrepo

import (
	"context"
	"encoding/json"
	"time"

	"shiplabel/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditEntryDTO represents the database structure for audit entries.
// Entries are append-only; nothing in the engine reads them back.
type AuditEntryDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Action         string         `gorm:"index"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;index"`
	Details        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"index"`
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

// GormAuditLog implements ports.AuditLog using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Record appends one audit entry.
func (l *GormAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}

	dto := AuditEntryDTO{
		ID:             uuid.New(),
		Action:         entry.Action,
		OrganizationID: entry.OrganizationID.Bytes(),
		Details:        datatypes.JSON(details),
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}
