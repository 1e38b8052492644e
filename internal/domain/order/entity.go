// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"gorm.io/gorm"
)

// Status represents the order status. It is a closed set of labels;
// transitions are made by staff tooling and carry no logic here.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusReady      Status = "ready"
	StatusComplete   Status = "complete"
)

// ValidStatus reports whether s is one of the known order statuses
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusReady, StatusComplete:
		return true
	}
	return false
}

// Order binds one consumed cart to a shipping address and the shopper's
// contact details. The cart is locked (in_order = true) in the same
// transaction that creates the order and is immutable afterwards.
type Order struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CustomerID        *uint          `gorm:"index" json:"customer_id"` // Nil for orders placed from anonymous carts
	FirstName         string         `gorm:"not null;size:255" json:"first_name"`
	LastName          string         `gorm:"not null;size:255" json:"last_name"`
	Phone             string         `gorm:"not null;size:20" json:"phone"`
	Comment           string         `gorm:"type:text" json:"comment"`
	CartID            uint           `gorm:"uniqueIndex;not null" json:"cart_id"`
	ShippingAddressID uint           `gorm:"not null;index" json:"shipping_address_id"`
	Status            Status         `gorm:"not null;default:'new';size:128" json:"status"`
	DeliveryDate      *time.Time     `json:"delivery_date"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer        *customer.Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Cart            cart.Cart                `gorm:"foreignKey:CartID" json:"cart"`
	ShippingAddress customer.ShippingAddress `gorm:"foreignKey:ShippingAddressID" json:"shipping_address"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
