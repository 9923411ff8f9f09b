package commands_test

import (
	"testing"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessOrderShippingCommand_Success(t *testing.T) {
	organizationID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewProcessOrderShippingCommand(organizationID, orderID, "rate-7", true)

	require.NoError(t, err)
	assert.Equal(t, organizationID, cmd.OrganizationID())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "rate-7", cmd.RateID())
	assert.True(t, cmd.AutoPurchase())
	assert.NoError(t, cmd.Validate())
}

func TestNewProcessOrderShippingCommand_EmptyRateID(t *testing.T) {
	cmd, err := commands.NewProcessOrderShippingCommand(kernel.NewUUID(), kernel.NewUUID(), "", false)

	require.NoError(t, err)
	assert.Empty(t, cmd.RateID())
	assert.False(t, cmd.AutoPurchase())
}

func TestNewProcessOrderShippingCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewProcessOrderShippingCommand(kernel.UUID{}, kernel.NewUUID(), "", false)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewProcessOrderShippingCommand(kernel.NewUUID(), kernel.UUID{}, "", false)
	require.Error(t, err)
}

func TestProcessOrderShippingCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ProcessOrderShippingCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrProcessOrderShippingCommandIsNotConstructed)
}
