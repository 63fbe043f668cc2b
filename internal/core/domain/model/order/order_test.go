package order_test

import (
	"testing"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemLine struct {
	sku string
	qty int
}

func mustItems(t *testing.T, lines ...itemLine) []*order.Item {
	t.Helper()

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(line.sku, line.qty)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func twoItems(t *testing.T) []*order.Item {
	t.Helper()
	return mustItems(t, itemLine{"A1", 2}, itemLine{"B2", 1})
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		items := twoItems(t)

		o, err := order.NewOrder(validID, "u1", items)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "u1", o.CustomerID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "A1", o.Items()[0].SKU())
		assert.Equal(t, 2, o.Items()[0].Qty())
		assert.Equal(t, "B2", o.Items()[1].SKU())
		assert.Equal(t, 1, o.Items()[1].Qty())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Nil(t, o.UpdatedAt())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "u1", twoItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty customer identity", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", twoItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		o, err := order.NewOrder(validID, "u1", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with non-constructed item", func(t *testing.T) {
		o, err := order.NewOrder(validID, "u1", []*order.Item{{}})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "Item must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerID")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create valid item with generated id", func(t *testing.T) {
		item, err := order.NewItem("SKU-1", 3)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		require.NoError(t, item.ID().Validate())
		assert.Equal(t, "SKU-1", item.SKU())
		assert.Equal(t, 3, item.Qty())
	})

	t.Run("should generate distinct ids", func(t *testing.T) {
		first, err := order.NewItem("SKU-1", 1)
		require.NoError(t, err)
		second, err := order.NewItem("SKU-1", 1)
		require.NoError(t, err)

		assert.False(t, first.ID().IsEqual(second.ID()))
	})

	t.Run("should fail with empty sku", func(t *testing.T) {
		item, err := order.NewItem("", 1)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero qty", func(t *testing.T) {
		item, err := order.NewItem("SKU-1", 0)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative qty", func(t *testing.T) {
		item, err := order.NewItem("SKU-1", -5)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "-5 is not greater than 0")
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now().UTC().Add(-time.Hour)
	updatedAt := time.Now().UTC()

	t.Run("should restore order with terminal status and timestamps", func(t *testing.T) {
		item, err := order.RestoreItem(kernel.NewUUID(), "A1", 2)
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, "u1", order.Cancelled, createdAt, &updatedAt, []*order.Item{item})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.UpdatedAt())
		assert.Equal(t, updatedAt, *o.UpdatedAt())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "u1", order.Unknown, createdAt, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty customer identity", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "", order.Pending, createdAt, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	first, err := order.NewOrder(id, "u1", twoItems(t))
	require.NoError(t, err)
	second, err := order.RestoreOrder(id, "u2", order.Pending, time.Now().UTC(), nil, nil)
	require.NoError(t, err)
	third, err := order.NewOrder(kernel.NewUUID(), "u1", twoItems(t))
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}
