package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShippingResultQueryHandler reads an order's shipping state straight from
// the database, bypassing the domain model. Reads go through raw SQL on the
// same orders table the store writes to.
type GetShippingResultQueryHandler struct {
	db *gorm.DB
}

// NewGetShippingResultQueryHandler creates a handler for shipping result lookups.
// Requires a GORM database connection for query execution.
func NewGetShippingResultQueryHandler(db *gorm.DB) GetShippingResultQueryHandler {
	return GetShippingResultQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the order
// does not exist; an order that exists but was never processed comes back with
// a nil Result.
func (h GetShippingResultQueryHandler) Handle(
	ctx context.Context,
	query GetShippingResultQuery,
) (GetShippingResultQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShippingResultQueryResponse{}, err
	}

	var (
		id            uuid.UUID
		number        string
		status        string
		resultPayload []byte
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			shipping_result
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &number, &status, &resultPayload)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShippingResultQueryResponse{},
			errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetShippingResultQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShippingResultQueryResponse{}, err
	}

	response := GetShippingResultQueryResponse{
		OrderID:     orderID,
		OrderNumber: number,
		OrderStatus: status,
	}

	if len(resultPayload) > 0 {
		var result shipping.ShippingResult
		if err = json.Unmarshal(resultPayload, &result); err != nil {
			return GetShippingResultQueryResponse{}, err
		}
		response.Result = &result
	}

	return response, nil
}
