package queries_test

import (
	"testing"

	"shiplabel/internal/core/application/usecases/queries"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShippingResultQuery_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetShippingResultQuery(orderID)

	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.NoError(t, query.Validate())
}

func TestNewGetShippingResultQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetShippingResultQuery(kernel.UUID{})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetShippingResultQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetShippingResultQuery

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetShippingResultQueryIsNotConstructed)
}
