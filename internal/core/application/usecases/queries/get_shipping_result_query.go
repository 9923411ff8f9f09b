package queries

import (
	"errors"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/pkg/guard"
)

var ErrGetShippingResultQueryIsNotConstructed = errors.New(
	"GetShippingResultQuery must be created via NewGetShippingResultQuery constructor",
)

// GetShippingResultQuery retrieves the persisted shipping result for one order.
// The result reflects the most recent processing attempt, whatever its outcome.
//
// Example:
//
//	query, err := NewGetShippingResultQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetShippingResultQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipping result: %w", err)
//	}
//	fmt.Printf("Order %s: %s\n", response.OrderNumber, response.Result.Status)
type GetShippingResultQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShippingResultQuery creates a query for one order's shipping result.
// Returns an error if the order id is invalid.
func NewGetShippingResultQuery(orderID kernel.UUID) (GetShippingResultQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShippingResultQuery{}, err
	}

	return GetShippingResultQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShippingResultQueryIsNotConstructed if validation fails.
func (q GetShippingResultQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingResultQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetShippingResultQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetShippingResultQueryResponse carries one order's shipping state.
// Result is nil when the order has never been processed.
type GetShippingResultQueryResponse struct {
	OrderID     kernel.UUID
	OrderNumber string
	OrderStatus string
	Result      *shipping.ShippingResult
}
