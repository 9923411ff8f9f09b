package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipping"
	"shiplabel/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessBatchShippingCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()
	organizationID := kernel.NewUUID()
	orderA := kernel.NewUUID()
	orderB := kernel.NewUUID()
	orderC := kernel.NewUUID()

	processor := new(MockOrderProcessor)
	audit := new(MockAuditLog)

	matchOrder := func(orderID kernel.UUID) any {
		return mock.MatchedBy(func(cmd commands.ProcessOrderShippingCommand) bool {
			return cmd.OrderID().IsEqual(orderID) && cmd.OrganizationID().IsEqual(organizationID)
		})
	}

	rate := shipping.Rate{ID: "rate-1", Carrier: "USPS", Amount: 6.20}
	mock.InOrder(
		processor.On("Handle", ctx, matchOrder(orderA)).
			Return(&shipping.ShippingResult{
				Status:         shipping.LabelStatusPurchased,
				SelectedRate:   &rate,
				TrackingNumber: "TRK-A",
			}, nil).Once(),
		processor.On("Handle", ctx, matchOrder(orderB)).
			Return(nil, errors.New("order has no destination address")).Once(),
		processor.On("Handle", ctx, matchOrder(orderC)).
			Return(&shipping.ShippingResult{Status: shipping.LabelStatusRatesReady}, nil).Once(),
		audit.On("Record", ctx, mock.MatchedBy(func(entry ports.AuditEntry) bool {
			return entry.Action == ports.AuditActionShippingBatch &&
				entry.OrganizationID.IsEqual(organizationID) &&
				entry.Details["requested"] == 3 &&
				entry.Details["succeeded"] == 2 &&
				entry.Details["failed"] == 1
		})).Return(nil).Once(),
	)

	handler := commands.NewProcessBatchShippingCommandHandler(processor, audit, slog.Default())
	cmd, err := commands.NewProcessBatchShippingCommand(
		organizationID, []kernel.UUID{orderA, orderB, orderC}, true)
	require.NoError(t, err)

	report, err := handler.Handle(ctx, cmd)

	// A failing order never stops the batch.
	require.NoError(t, err)
	assert.Equal(t, 3, report.Requested)
	require.Len(t, report.Succeeded, 2)
	require.Len(t, report.Failed, 1)
	assert.True(t, report.Succeeded[0].OrderID.IsEqual(orderA))
	assert.Equal(t, "USPS", report.Succeeded[0].Carrier)
	assert.InEpsilon(t, 6.20, report.Succeeded[0].Amount, 0.0001)
	assert.Equal(t, "TRK-A", report.Succeeded[0].TrackingNumber)
	assert.True(t, report.Succeeded[1].OrderID.IsEqual(orderC))
	assert.True(t, report.Failed[0].OrderID.IsEqual(orderB))
	assert.Equal(t, "order has no destination address", report.Failed[0].Message)
	processor.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestProcessBatchShippingCommandHandler_Handle_EmptyBatch(t *testing.T) {
	ctx := t.Context()
	organizationID := kernel.NewUUID()

	processor := new(MockOrderProcessor)
	audit := new(MockAuditLog)
	audit.On("Record", ctx, mock.MatchedBy(func(entry ports.AuditEntry) bool {
		return entry.Details["requested"] == 0
	})).Return(nil).Once()

	handler := commands.NewProcessBatchShippingCommandHandler(processor, audit, slog.Default())
	cmd, err := commands.NewProcessBatchShippingCommand(organizationID, nil, false)
	require.NoError(t, err)

	report, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Requested)
	assert.Empty(t, report.Succeeded)
	assert.Empty(t, report.Failed)
	processor.AssertNotCalled(t, "Handle")
	audit.AssertExpectations(t)
}

func TestProcessBatchShippingCommandHandler_Handle_AuditFailureDoesNotFailBatch(t *testing.T) {
	ctx := t.Context()
	organizationID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	processor := new(MockOrderProcessor)
	processor.On("Handle", ctx, mock.AnythingOfType("commands.ProcessOrderShippingCommand")).
		Return(&shipping.ShippingResult{Status: shipping.LabelStatusPurchased}, nil).Once()

	audit := new(MockAuditLog)
	audit.On("Record", ctx, mock.AnythingOfType("ports.AuditEntry")).
		Return(errors.New("audit store unavailable")).Once()

	handler := commands.NewProcessBatchShippingCommandHandler(processor, audit, slog.Default())
	cmd, err := commands.NewProcessBatchShippingCommand(organizationID, []kernel.UUID{orderID}, true)
	require.NoError(t, err)

	report, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, report.Succeeded, 1)
	audit.AssertExpectations(t)
}

func TestProcessBatchShippingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	processor := new(MockOrderProcessor)
	audit := new(MockAuditLog)

	handler := commands.NewProcessBatchShippingCommandHandler(processor, audit, slog.Default())
	_, err := handler.Handle(ctx, commands.ProcessBatchShippingCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrProcessBatchShippingCommandIsNotConstructed)
	processor.AssertNotCalled(t, "Handle")
	audit.AssertNotCalled(t, "Record")
}
