// Package orderrepo persists packed orders and their shipping results.
// The engine treats the order body as an opaque document owned by the warehouse
// application, so everything except the columns the engine queries on lives in
// a JSONB payload.
package orderrepo

import (
	"encoding/json"
	"time"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for packed orders. The order body
// and the shipping result are JSONB documents; id, organization, number and
// status are lifted into columns for querying.
type OrderDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;index"`
	Number         string         `gorm:"index"`
	Status         string         `gorm:"index"`
	Document       datatypes.JSON `gorm:"type:jsonb"`
	ShippingResult datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt      time.Time
}

// TableName specifies the database table name for order records.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order to its database representation. The full order
// body is serialized into the document column; the shipping result travels in
// its own column so it can be updated independently.
func fromDomain(ord *order.Order) (OrderDTO, error) {
	document, err := json.Marshal(ord)
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		ID:             ord.ID.Bytes(),
		OrganizationID: ord.OrganizationID.Bytes(),
		Number:         ord.Number,
		Status:         ord.Status,
		Document:       datatypes.JSON(document),
	}

	if ord.Shipping != nil {
		result, resultErr := json.Marshal(ord.Shipping)
		if resultErr != nil {
			return OrderDTO{}, resultErr
		}
		dto.ShippingResult = datatypes.JSON(result)
	}

	return dto, nil
}

// toDomain converts a database DTO back to an order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var ord order.Order
	if err := json.Unmarshal(dto.Document, &ord); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	ord.ID = id
	ord.OrganizationID = organizationID
	ord.Number = dto.Number
	ord.Status = dto.Status

	if len(dto.ShippingResult) > 0 {
		var result shipping.ShippingResult
		if err = json.Unmarshal(dto.ShippingResult, &result); err != nil {
			return nil, err
		}
		ord.Shipping = &result
	}

	return &ord, nil
}
