// Package ports defines the engine's collaborator contracts: the order and
// organization stores owned by the warehouse application, the external
// carrier-aggregation service, and the write-only audit log.
package ports

import (
	"context"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/shipping"
)

// OrderStore is the narrow persistence surface the engine uses for orders.
// The engine never creates or deletes orders; it reads them as opaque input
// and writes shipping results back.
type OrderStore interface {
	// Get retrieves one order by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateShippingResult overwrites the shipping result on an order record.
	// Called for every processing attempt, including failed ones.
	UpdateShippingResult(ctx context.Context, id kernel.UUID, result *shipping.ShippingResult) error

	// ListEligibleForShipping returns the organization's packed orders that
	// still need a label. The exact selection predicate is owned by the store,
	// not by the engine.
	ListEligibleForShipping(ctx context.Context, organizationID kernel.UUID) ([]*order.Order, error)
}
