package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/order"
	"shiplabel/internal/core/domain/model/organization"
	"shiplabel/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrganizationStore struct{ mock.Mock }

func (m *mockOrganizationStore) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

func (m *mockOrganizationStore) ListScheduled(ctx context.Context) ([]*organization.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Organization), args.Error(1)
}

func (m *mockOrganizationStore) UpdateSchedule(
	ctx context.Context,
	id kernel.UUID,
	schedule organization.Schedule,
) error {
	args := m.Called(ctx, id, schedule)
	return args.Error(0)
}

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderStore) UpdateShippingResult(
	ctx context.Context,
	id kernel.UUID,
	result *shipping.ShippingResult,
) error {
	args := m.Called(ctx, id, result)
	return args.Error(0)
}

func (m *mockOrderStore) ListEligibleForShipping(
	ctx context.Context,
	organizationID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type mockBatchDispatcher struct{ mock.Mock }

func (m *mockBatchDispatcher) Handle(
	ctx context.Context,
	cmd commands.ProcessBatchShippingCommand,
) (commands.BatchReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.BatchReport), args.Error(1)
}

func scheduledOrganization(checkHour int) *organization.Organization {
	return &organization.Organization{
		ID:   kernel.NewUUID(),
		Name: "Acme Warehouse",
		Shipping: organization.ShippingSettings{
			APIKey: "shippo_test_key",
			Schedule: organization.Schedule{
				Enabled:   true,
				CheckHour: checkHour,
			},
		},
	}
}

func newTestJob(
	organizations *mockOrganizationStore,
	orders *mockOrderStore,
	dispatcher *mockBatchDispatcher,
	frozen time.Time,
) *ShippingScheduleJob {
	job := NewShippingScheduleJob(organizations, orders, dispatcher, time.UTC, slog.Default())
	job.now = func() time.Time { return frozen }
	return job
}

func TestShippingScheduleJob_RunOnce_DispatchesDueOrganizations(t *testing.T) {
	ctx := t.Context()
	// 15:00 UTC with a UTC reference zone.
	frozen := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	due := scheduledOrganization(15)
	notDue := scheduledOrganization(9)

	eligibleOrder := &order.Order{ID: kernel.NewUUID(), OrganizationID: due.ID, Number: "SO-1"}

	organizations := new(mockOrganizationStore)
	orders := new(mockOrderStore)
	dispatcher := new(mockBatchDispatcher)

	organizations.On("ListScheduled", ctx).
		Return([]*organization.Organization{due, notDue}, nil).Once()
	orders.On("ListEligibleForShipping", ctx, due.ID).
		Return([]*order.Order{eligibleOrder}, nil).Once()
	dispatcher.On("Handle", ctx, mock.MatchedBy(func(cmd commands.ProcessBatchShippingCommand) bool {
		return cmd.OrganizationID().IsEqual(due.ID) &&
			len(cmd.OrderIDs()) == 1 &&
			cmd.OrderIDs()[0].IsEqual(eligibleOrder.ID) &&
			cmd.AutoPurchase()
	})).Return(commands.BatchReport{Requested: 1}, nil).Once()

	job := newTestJob(organizations, orders, dispatcher, frozen)
	job.RunOnce(ctx)

	organizations.AssertExpectations(t)
	orders.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	orders.AssertNotCalled(t, "ListEligibleForShipping", ctx, notDue.ID)
}

func TestShippingScheduleJob_RunOnce_DefaultCheckHour(t *testing.T) {
	ctx := t.Context()
	frozen := time.Date(2026, 3, 10, organization.DefaultCheckHour, 0, 0, 0, time.UTC)

	// Check hour never configured: falls back to the default.
	due := scheduledOrganization(0)

	organizations := new(mockOrganizationStore)
	orders := new(mockOrderStore)
	dispatcher := new(mockBatchDispatcher)

	organizations.On("ListScheduled", ctx).
		Return([]*organization.Organization{due}, nil).Once()
	orders.On("ListEligibleForShipping", ctx, due.ID).
		Return([]*order.Order{}, nil).Once()
	dispatcher.On("Handle", ctx, mock.AnythingOfType("commands.ProcessBatchShippingCommand")).
		Return(commands.BatchReport{}, nil).Once()

	job := newTestJob(organizations, orders, dispatcher, frozen)
	job.RunOnce(ctx)

	dispatcher.AssertExpectations(t)
}

func TestShippingScheduleJob_RunOnce_ListError(t *testing.T) {
	ctx := t.Context()
	frozen := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	organizations := new(mockOrganizationStore)
	orders := new(mockOrderStore)
	dispatcher := new(mockBatchDispatcher)

	organizations.On("ListScheduled", ctx).Return(nil, errors.New("db down")).Once()

	job := newTestJob(organizations, orders, dispatcher, frozen)
	job.RunOnce(ctx)

	dispatcher.AssertNotCalled(t, "Handle")
}

func TestShippingScheduleJob_RunOnce_OrganizationFailureIsolated(t *testing.T) {
	ctx := t.Context()
	frozen := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	first := scheduledOrganization(15)
	second := scheduledOrganization(15)

	organizations := new(mockOrganizationStore)
	orders := new(mockOrderStore)
	dispatcher := new(mockBatchDispatcher)

	organizations.On("ListScheduled", ctx).
		Return([]*organization.Organization{first, second}, nil).Once()
	orders.On("ListEligibleForShipping", ctx, first.ID).
		Return(nil, errors.New("query failed")).Once()
	orders.On("ListEligibleForShipping", ctx, second.ID).
		Return([]*order.Order{}, nil).Once()
	dispatcher.On("Handle", ctx, mock.MatchedBy(func(cmd commands.ProcessBatchShippingCommand) bool {
		return cmd.OrganizationID().IsEqual(second.ID)
	})).Return(commands.BatchReport{}, nil).Once()

	job := newTestJob(organizations, orders, dispatcher, frozen)
	job.RunOnce(ctx)

	require.True(t, dispatcher.AssertExpectations(t))
}
