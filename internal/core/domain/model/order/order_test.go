package order_test

import (
	"testing"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewItem(t *testing.T, menuItemID int64, quantity int, price float64) *order.Item {
	t.Helper()
	item, err := order.NewItem(menuItemID, quantity, price)
	require.NoError(t, err)
	return item
}

func addressID(id int64) *int64 {
	return &id
}

func TestNewItem(t *testing.T) {
	t.Run("creates a valid item", func(t *testing.T) {
		item, err := order.NewItem(10, 2, 5.0)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.NoError(t, item.ID().Validate())
		assert.Equal(t, int64(10), item.MenuItemID())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 5.0, item.Price(), 0.0001)
		assert.InDelta(t, 10.0, item.Subtotal(), 0.0001)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		testCases := []struct {
			name       string
			menuItemID int64
			quantity   int
			price      float64
		}{
			{"zero item id", 0, 1, 1.0},
			{"negative quantity", 10, -1, 1.0},
			{"zero quantity", 10, 0, 1.0},
			{"negative price", 10, 1, -0.5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewItem(tc.menuItemID, tc.quantity, tc.price)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("keeps the stored id", func(t *testing.T) {
		id := kernel.NewUUID()
		item, err := order.RestoreItem(id, 11, 1, 3.0)

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.UUID{}, 11, 1, 3.0)
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order pending payment with computed total", func(t *testing.T) {
		items := []*order.Item{
			mustNewItem(t, 10, 2, 5.0),
			mustNewItem(t, 11, 1, 3.0),
		}

		o, err := order.NewOrder(1, 5, addressID(100), items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.NoError(t, o.ID().Validate())
		assert.Equal(t, order.PendingPayment, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.InDelta(t, 13.0, o.Total(), 0.0001)
		assert.Equal(t, int64(1), o.CustomerID())
		assert.Equal(t, int64(5), o.RestaurantID())
		require.NotNil(t, o.AddressID())
		assert.Equal(t, int64(100), *o.AddressID())
		assert.Len(t, o.Items(), 2)
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("allows missing address", func(t *testing.T) {
		o, err := order.NewOrder(1, 5, nil, []*order.Item{mustNewItem(t, 10, 1, 2.0)})

		require.NoError(t, err)
		assert.Nil(t, o.AddressID())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder(1, 5, nil, nil)
		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("rejects invalid references", func(t *testing.T) {
		items := []*order.Item{mustNewItem(t, 10, 1, 2.0)}

		_, err := order.NewOrder(0, 5, nil, items)
		require.Error(t, err)

		_, err = order.NewOrder(1, 0, nil, items)
		require.Error(t, err)

		_, err = order.NewOrder(1, 5, addressID(-1), items)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_PaymentTransitions(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(1, 5, nil, []*order.Item{mustNewItem(t, 10, 2, 5.0)})
		require.NoError(t, err)
		return o
	}

	t.Run("confirm payment", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ConfirmPayment())
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, order.PaymentSuccess, o.PaymentStatus())
	})

	t.Run("fail payment is terminal", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.FailPayment())
		assert.Equal(t, order.PaymentFailed, o.Status())
		assert.Equal(t, order.PaymentFailure, o.PaymentStatus())

		require.Error(t, o.ConfirmPayment())
		require.Error(t, o.StartDelivery())
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ConfirmPayment())
		require.Error(t, o.ConfirmPayment())
	})

	t.Run("delivery only after confirmation", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.StartDelivery())

		require.NoError(t, o.ConfirmPayment())
		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, order.PaymentSuccess, o.PaymentStatus())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a confirmed order", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		items := []*order.Item{mustNewItem(t, 10, 2, 5.0)}

		o, err := order.RestoreOrder(id, 1, 5, addressID(100), order.Confirmed, order.PaymentSuccess, 10.0, createdAt, items)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, order.PaymentSuccess, o.PaymentStatus())
		assert.InDelta(t, 10.0, o.Total(), 0.0001)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects invalid statuses", func(t *testing.T) {
		items := []*order.Item{mustNewItem(t, 10, 1, 1.0)}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), 1, 5, nil,
			order.StatusUnknown, order.PaymentPending, 1.0, time.Now().UTC(), items,
		)
		require.Error(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), 1, 5, nil,
			order.PendingPayment, order.PaymentStatusUnknown, 1.0, time.Now().UTC(), items,
		)
		require.Error(t, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	items := func() []*order.Item { return []*order.Item{mustNewItem(t, 10, 1, 1.0)} }

	o1, err := order.NewOrder(1, 5, nil, items())
	require.NoError(t, err)
	o2, err := order.NewOrder(1, 5, nil, items())
	require.NoError(t, err)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}
