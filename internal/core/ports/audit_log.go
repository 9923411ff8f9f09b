package ports

import (
	"context"

	"shiplabel/internal/core/domain/model/kernel"
)

// Audit actions recorded by the engine.
const (
	AuditActionShippingBatch   = "shipping_batch"
	AuditActionShippingProcess = "shipping_process"
)

// AuditEntry is one write-only audit record. Details carries action-specific
// fields such as batch totals; the engine never reads entries back.
type AuditEntry struct {
	Action         string
	OrganizationID kernel.UUID
	Details        map[string]any
}

// AuditLog is the write-only sink for per-batch and per-action entries.
type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
}
