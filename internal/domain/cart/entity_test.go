// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func TestLineTotal(t *testing.T) {
	regular := catalog.Product{ID: 1, Price: 10000}
	assert.Equal(t, int64(10000), LineTotal(1, &regular))
	assert.Equal(t, int64(30000), LineTotal(3, &regular))

	discount := int64(5000)
	discounted := catalog.Product{ID: 2, Price: 10000, DiscountPrice: &discount}
	assert.Equal(t, int64(5000), LineTotal(1, &discounted))
	assert.Equal(t, int64(10000), LineTotal(2, &discounted))
}

func TestSumLineItems(t *testing.T) {
	t.Run("empty cart yields zero aggregates", func(t *testing.T) {
		totalProducts, finalPrice := SumLineItems(nil)
		assert.Equal(t, 0, totalProducts)
		assert.Equal(t, int64(0), finalPrice)
	})

	t.Run("aggregates sum quantities and line totals", func(t *testing.T) {
		discount := int64(5000)
		productA := catalog.Product{ID: 1, Price: 10000}
		productB := catalog.Product{ID: 2, Price: 8000, DiscountPrice: &discount}

		items := []LineItem{
			{ProductID: 1, Quantity: 1, FinalPrice: LineTotal(1, &productA)},
			{ProductID: 2, Quantity: 2, FinalPrice: LineTotal(2, &productB)},
		}

		totalProducts, finalPrice := SumLineItems(items)
		assert.Equal(t, 3, totalProducts)
		assert.Equal(t, int64(20000), finalPrice)
	})
}
