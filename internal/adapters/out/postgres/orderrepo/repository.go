package orderrepo

import (
	"context"
	"encoding/json"
	"errors"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/pkg/errs"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderStore using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database. Orders are normally created by the
// warehouse application; this exists for seeding and tests.
func (r *GormOrderRepository) Add(ctx context.Context, ord *order.Order) error {
	dto, err := fromDomain(ord)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateShippingResult overwrites the shipping result column on an order
// record. The order body itself is never touched here.
func (r *GormOrderRepository) UpdateShippingResult(
	ctx context.Context,
	id kernel.UUID,
	result *shipping.ShippingResult,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("shipping_result", datatypes.JSON(payload))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// ListEligibleForShipping returns the organization's packed orders that do not
// yet have a purchased label. Orders whose last attempt failed or errored stay
// eligible so the next run retries them.
func (r *GormOrderRepository) ListEligibleForShipping(
	ctx context.Context,
	organizationID kernel.UUID,
) ([]*order.Order, error) {
	if err := organizationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID.Bytes()).
		Where("status = ?", order.StatusPacked).
		Where("(shipping_result IS NULL OR shipping_result->>'status' != ?)",
			string(shipping.LabelStatusPurchased)).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		ord, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}

	return orders, nil
}
