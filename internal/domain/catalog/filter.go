// internal/domain/catalog/filter.go
package catalog

// FilterCriteria is the set of user-chosen restrictions applied to one
// category's products: selected brands, an optional price range, and
// per-attribute selections of attribute values.
type FilterCriteria struct {
	BrandIDs []uint `json:"brand_ids"`
	PriceMin *int64 `json:"price_min"`
	PriceMax *int64 `json:"price_max"`

	// AttributeValues maps attribute ID to the selected value IDs for
	// that attribute. Selections across different attributes combine
	// with OR against the product set: a product owning any selected
	// value passes. This mirrors the storefront's historical behavior
	// and is intentionally not per-attribute AND.
	AttributeValues map[uint][]uint `json:"attribute_values"`
}

// IsEmpty reports whether no restriction was supplied at all. The price
// range only counts when both bounds are present.
func (c *FilterCriteria) IsEmpty() bool {
	if len(c.BrandIDs) > 0 {
		return false
	}
	if c.PriceMin != nil && c.PriceMax != nil {
		return false
	}
	for _, values := range c.AttributeValues {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// selectedValueSet flattens the per-attribute selections into one lookup set
func (c *FilterCriteria) selectedValueSet() map[uint]struct{} {
	selected := make(map[uint]struct{})
	for _, values := range c.AttributeValues {
		for _, id := range values {
			selected[id] = struct{}{}
		}
	}
	return selected
}

// ApplyFilters narrows products to those satisfying every supplied
// criterion. Empty criteria return the input unchanged. The input slice
// is never mutated; the result is always a subset of it.
func ApplyFilters(products []Product, criteria FilterCriteria) []Product {
	if criteria.IsEmpty() {
		return products
	}

	brandSet := make(map[uint]struct{}, len(criteria.BrandIDs))
	for _, id := range criteria.BrandIDs {
		brandSet[id] = struct{}{}
	}
	valueSet := criteria.selectedValueSet()

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if len(brandSet) > 0 {
			if p.BrandID == nil {
				continue
			}
			if _, ok := brandSet[*p.BrandID]; !ok {
				continue
			}
		}

		// Range bounds are inclusive and only apply when both are set
		if criteria.PriceMin != nil && criteria.PriceMax != nil {
			if p.Price < *criteria.PriceMin || p.Price > *criteria.PriceMax {
				continue
			}
		}

		if len(valueSet) > 0 && !ownsAnyValue(&p, valueSet) {
			continue
		}

		filtered = append(filtered, p)
	}
	return filtered
}

func ownsAnyValue(p *Product, selected map[uint]struct{}) bool {
	for _, av := range p.AttributeValues {
		if _, ok := selected[av.ID]; ok {
			return true
		}
	}
	return false
}
