// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Cart holds a shopper's line items together with denormalized
// aggregates. TotalProducts and FinalPrice are always re-derived from
// the line items by Recompute, never patched incrementally; any drift
// between them and the lines is a bug.
type Cart struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OwnerID          *uint     `gorm:"index" json:"owner_id"` // Customer; nil for anonymous carts
	SessionKey       *string   `gorm:"size:255;index" json:"session_key,omitempty"`
	ForAnonymousUser bool      `gorm:"default:false" json:"for_anonymous_user"`
	TotalProducts    int       `gorm:"default:0" json:"total_products"` // Sum of line quantities
	FinalPrice       int64     `gorm:"default:0" json:"final_price"`    // Sum of line totals, in cents
	InOrder          bool      `gorm:"default:false" json:"in_order"`   // Locked once bound to an order
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	LineItems []LineItem `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"line_items,omitempty"`
}

// LineItem is one (product, quantity, computed price) entry in a cart.
// The unique index on (cart_id, product_id) serializes concurrent
// find-or-create for the same product, e.g. a double-clicked add-to-cart.
type LineItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CartID     uint      `gorm:"not null;uniqueIndex:idx_cart_line_items_cart_product" json:"cart_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_line_items_cart_product" json:"product_id"`
	CustomerID *uint     `gorm:"index" json:"customer_id,omitempty"`
	SessionKey *string   `gorm:"size:255" json:"session_key,omitempty"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	FinalPrice int64     `gorm:"not null" json:"final_price"` // Quantity x effective product price
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Product catalog.Product `gorm:"foreignKey:ProductID" json:"product"`
}

// TableName overrides
func (Cart) TableName() string     { return "carts" }
func (LineItem) TableName() string { return "cart_line_items" }

// LineTotal computes a line's final price from a quantity and the
// product's effective price
func LineTotal(quantity int, product *catalog.Product) int64 {
	return int64(quantity) * product.EffectivePrice()
}

// SumLineItems derives both cart aggregates from a set of line items.
// An empty set yields zero for both, so recomputation never fails.
func SumLineItems(items []LineItem) (totalProducts int, finalPrice int64) {
	for _, item := range items {
		totalProducts += item.Quantity
		finalPrice += item.FinalPrice
	}
	return totalProducts, finalPrice
}
