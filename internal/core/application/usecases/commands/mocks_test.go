package commands_test

import (
	"context"
	"time"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/organization"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrganizationStore struct{ mock.Mock }

func (m *MockOrganizationStore) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

func (m *MockOrganizationStore) ListScheduled(ctx context.Context) ([]*organization.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Organization), args.Error(1)
}

func (m *MockOrganizationStore) UpdateSchedule(
	ctx context.Context,
	id kernel.UUID,
	schedule organization.Schedule,
) error {
	args := m.Called(ctx, id, schedule)
	return args.Error(0)
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateShippingResult(
	ctx context.Context,
	id kernel.UUID,
	result *shipping.ShippingResult,
) error {
	args := m.Called(ctx, id, result)
	return args.Error(0)
}

func (m *MockOrderStore) ListEligibleForShipping(
	ctx context.Context,
	organizationID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCarrierService struct{ mock.Mock }

func (m *MockCarrierService) ValidateAddress(
	ctx context.Context,
	apiKey string,
	addr shipping.Address,
) (shipping.Address, error) {
	args := m.Called(ctx, apiKey, addr)
	return args.Get(0).(shipping.Address), args.Error(1)
}

func (m *MockCarrierService) CreateCustomsDeclaration(
	ctx context.Context,
	apiKey string,
	decl shipping.CustomsDeclaration,
) (string, error) {
	args := m.Called(ctx, apiKey, decl)
	return args.String(0), args.Error(1)
}

func (m *MockCarrierService) CreateShipment(
	ctx context.Context,
	apiKey string,
	shipment shipping.Shipment,
) (string, []shipping.Rate, error) {
	args := m.Called(ctx, apiKey, shipment)
	var rates []shipping.Rate
	if args.Get(1) != nil {
		rates = args.Get(1).([]shipping.Rate)
	}
	return args.String(0), rates, args.Error(2)
}

func (m *MockCarrierService) PurchaseLabel(
	ctx context.Context,
	apiKey string,
	rateID string,
) (*shipping.Transaction, error) {
	args := m.Called(ctx, apiKey, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Transaction), args.Error(1)
}

func (m *MockCarrierService) ListTransactionsByRate(
	ctx context.Context,
	apiKey string,
	rateID string,
) ([]shipping.Transaction, error) {
	args := m.Called(ctx, apiKey, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Transaction), args.Error(1)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockOrderProcessor struct{ mock.Mock }

func (m *MockOrderProcessor) Handle(
	ctx context.Context,
	cmd commands.ProcessOrderShippingCommand,
) (*shipping.ShippingResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.ShippingResult), args.Error(1)
}

// recordingSleeper captures requested delays instead of waiting.
type recordingSleeper struct {
	delays []time.Duration
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}
