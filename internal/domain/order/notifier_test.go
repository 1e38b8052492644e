// internal/domain/order/notifier_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/customer"
)

func TestBuildSnapshot(t *testing.T) {
	placedAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	o := &Order{
		ID:        7,
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+15551234567",
		Comment:   "leave at the door",
		CreatedAt: placedAt,
		ShippingAddress: customer.ShippingAddress{
			Region:  "West",
			City:    "Springfield",
			Address: "742 Evergreen Terrace",
			Zipcode: "49007",
		},
	}

	c := &cart.Cart{
		ID:            3,
		TotalProducts: 3,
		FinalPrice:    20000,
		LineItems: []cart.LineItem{
			{
				ProductID:  1,
				Quantity:   1,
				FinalPrice: 10000,
				Product:    catalog.Product{ID: 1, Title: "Phone Alpha"},
			},
			{
				ProductID:  2,
				Quantity:   2,
				FinalPrice: 10000,
				Product:    catalog.Product{ID: 2, Title: "Phone Beta"},
			},
		},
	}

	snapshot := BuildSnapshot(o, c)

	assert.Equal(t, uint(7), snapshot.OrderID)
	assert.Equal(t, placedAt, snapshot.PlacedAt)
	assert.Equal(t, "Jane", snapshot.FirstName)
	assert.Equal(t, "Doe", snapshot.LastName)
	assert.Equal(t, "+15551234567", snapshot.Phone)
	assert.Equal(t, "leave at the door", snapshot.Comment)
	assert.Equal(t, "West", snapshot.Region)
	assert.Equal(t, "Springfield", snapshot.City)
	assert.Equal(t, "742 Evergreen Terrace", snapshot.Address)
	assert.Equal(t, "49007", snapshot.Zipcode)
	assert.Equal(t, int64(20000), snapshot.FinalPrice)

	require.Len(t, snapshot.Lines, 2)
	assert.Equal(t, "Phone Alpha", snapshot.Lines[0].ProductTitle)
	assert.Equal(t, 1, snapshot.Lines[0].Quantity)
	assert.Equal(t, int64(10000), snapshot.Lines[0].FinalPrice)
	assert.Equal(t, "Phone Beta", snapshot.Lines[1].ProductTitle)
	assert.Equal(t, 2, snapshot.Lines[1].Quantity)
}

func TestBuildSnapshotEmptyCart(t *testing.T) {
	snapshot := BuildSnapshot(&Order{ID: 1}, &cart.Cart{ID: 1})
	assert.Empty(t, snapshot.Lines)
	assert.Equal(t, int64(0), snapshot.FinalPrice)
}
