// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, pipeline execution, and persistence.
package commands

import (
	"context"

	"shiplabel/internal/core/domain/model/shipping"
)

// OrderProcessor runs the shipping pipeline for a single order. The batch
// handler depends on this interface rather than the concrete handler so the
// two can be tested independently.
type OrderProcessor interface {
	Handle(ctx context.Context, cmd ProcessOrderShippingCommand) (*shipping.ShippingResult, error)
}
