// internal/domain/catalog/entity_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductEffectivePrice(t *testing.T) {
	product := Product{Price: 10000}
	assert.Equal(t, int64(10000), product.EffectivePrice())
	assert.False(t, product.HasDiscount())

	discount := int64(7500)
	product.DiscountPrice = &discount
	assert.Equal(t, int64(7500), product.EffectivePrice())
	assert.True(t, product.HasDiscount())

	// A discount equal to or above the regular price still wins
	high := int64(12000)
	product.DiscountPrice = &high
	assert.Equal(t, int64(12000), product.EffectivePrice())
}

func TestProductGetFormattedPrice(t *testing.T) {
	discount := int64(7550)
	product := Product{Price: 10000, DiscountPrice: &discount}
	assert.Equal(t, 75.50, product.GetFormattedPrice())
}

func TestProductMainImage(t *testing.T) {
	product := Product{}
	assert.Nil(t, product.MainImage())

	product.Images = []ProductImage{
		{ID: 1, SortOrder: 2},
		{ID: 2, SortOrder: 0},
		{ID: 3, SortOrder: 1},
	}
	main := product.MainImage()
	assert.NotNil(t, main)
	assert.Equal(t, uint(2), main.ID)
}
