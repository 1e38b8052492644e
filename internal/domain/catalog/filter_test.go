// internal/domain/catalog/filter_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrUint(v uint) *uint    { return &v }
func ptrInt64(v int64) *int64 { return &v }

func testProducts() []Product {
	return []Product{
		{
			ID:      1,
			Title:   "Phone Alpha",
			Price:   50000,
			BrandID: ptrUint(1),
			AttributeValues: []AttributeValue{
				{ID: 10, AttributeID: 100, ProductID: 1, Name: "red"},
				{ID: 11, AttributeID: 101, ProductID: 1, Name: "128gb"},
			},
		},
		{
			ID:      2,
			Title:   "Phone Beta",
			Price:   90000,
			BrandID: ptrUint(2),
			AttributeValues: []AttributeValue{
				{ID: 12, AttributeID: 100, ProductID: 2, Name: "blue"},
			},
		},
		{
			ID:    3,
			Title: "Phone Gamma",
			Price: 30000,
			// No brand, no attribute values
		},
	}
}

func TestFilterCriteriaIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		empty    bool
	}{
		{"zero value", FilterCriteria{}, true},
		{"brands selected", FilterCriteria{BrandIDs: []uint{1}}, false},
		{"only min price", FilterCriteria{PriceMin: ptrInt64(1000)}, true},
		{"only max price", FilterCriteria{PriceMax: ptrInt64(1000)}, true},
		{"both price bounds", FilterCriteria{PriceMin: ptrInt64(1000), PriceMax: ptrInt64(2000)}, false},
		{"attribute map with empty slices", FilterCriteria{AttributeValues: map[uint][]uint{100: {}}}, true},
		{"attribute values selected", FilterCriteria{AttributeValues: map[uint][]uint{100: {10}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.criteria.IsEmpty())
		})
	}
}

func TestApplyFilters(t *testing.T) {
	products := testProducts()

	t.Run("empty criteria return the full set", func(t *testing.T) {
		result := ApplyFilters(products, FilterCriteria{})
		assert.Len(t, result, 3)
	})

	t.Run("brand filter keeps only selected brands", func(t *testing.T) {
		result := ApplyFilters(products, FilterCriteria{BrandIDs: []uint{1}})
		assert.Len(t, result, 1)
		assert.Equal(t, uint(1), result[0].ID)
	})

	t.Run("brand filter excludes products without a brand", func(t *testing.T) {
		result := ApplyFilters(products, FilterCriteria{BrandIDs: []uint{1, 2}})
		assert.Len(t, result, 2)
		for _, p := range result {
			assert.NotEqual(t, uint(3), p.ID)
		}
	})

	t.Run("price range is inclusive on both bounds", func(t *testing.T) {
		result := ApplyFilters(products, FilterCriteria{
			PriceMin: ptrInt64(30000),
			PriceMax: ptrInt64(50000),
		})
		assert.Len(t, result, 2)
		assert.Equal(t, uint(1), result[0].ID)
		assert.Equal(t, uint(3), result[1].ID)
	})

	t.Run("single price bound is ignored", func(t *testing.T) {
		result := ApplyFilters(products, FilterCriteria{PriceMin: ptrInt64(80000), BrandIDs: []uint{1, 2}})
		assert.Len(t, result, 2)
	})

	t.Run("attribute selections combine with OR across attributes", func(t *testing.T) {
		// Values from two different attributes; a product owning either passes
		result := ApplyFilters(products, FilterCriteria{
			AttributeValues: map[uint][]uint{
				100: {12}, // color blue, product 2
				101: {11}, // storage 128gb, product 1
			},
		})
		assert.Len(t, result, 2)
		assert.Equal(t, uint(1), result[0].ID)
		assert.Equal(t, uint(2), result[1].ID)
	})

	t.Run("attribute filter excludes products without values", func(t *testing.T) {
		result := ApplyFilters(products, FilterCriteria{
			AttributeValues: map[uint][]uint{100: {10, 12}},
		})
		assert.Len(t, result, 2)
		for _, p := range result {
			assert.NotEqual(t, uint(3), p.ID)
		}
	})

	t.Run("all criteria combine with AND between groups", func(t *testing.T) {
		result := ApplyFilters(products, FilterCriteria{
			BrandIDs: []uint{1, 2},
			PriceMin: ptrInt64(40000),
			PriceMax: ptrInt64(100000),
			AttributeValues: map[uint][]uint{
				100: {10},
			},
		})
		assert.Len(t, result, 1)
		assert.Equal(t, uint(1), result[0].ID)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := len(products)
		_ = ApplyFilters(products, FilterCriteria{BrandIDs: []uint{999}})
		assert.Len(t, products, before)
	})
}
