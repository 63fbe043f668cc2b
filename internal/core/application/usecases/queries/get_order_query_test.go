package queries_test

import (
	"testing"

	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("customer scoped", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID, "u1")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
		assert.Equal(t, "u1", query.CustomerID())
	})

	t.Run("administrative scope with empty customer", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(kernel.NewUUID(), "")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Empty(t, query.CustomerID())
	})

	t.Run("invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetOrderQuery(invalidID, "u1")

		require.Error(t, err)
	})
}

func TestGetOrderQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
