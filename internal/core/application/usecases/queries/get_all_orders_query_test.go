package queries_test

import (
	"testing"

	"orderservice/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery(t *testing.T) {
	t.Run("customer scoped", func(t *testing.T) {
		query := queries.NewGetAllOrdersQuery("u1")

		require.NoError(t, query.Validate())
		assert.Equal(t, "u1", query.CustomerID())
	})

	t.Run("administrative scope with empty customer", func(t *testing.T) {
		query := queries.NewGetAllOrdersQuery("")

		require.NoError(t, query.Validate())
		assert.Empty(t, query.CustomerID())
	})
}

func TestGetAllOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetAllOrdersQuery{}

	require.ErrorIs(t, query.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetPendingOrderCountQuery(t *testing.T) {
	query := queries.NewGetPendingOrderCountQuery()

	require.NoError(t, query.Validate())
}

func TestGetPendingOrderCountQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetPendingOrderCountQuery{}

	require.ErrorIs(t, query.Validate(), queries.ErrGetPendingOrderCountQueryIsNotConstructed)
}
