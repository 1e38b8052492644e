// internal/domain/customer/entity.go
package customer

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a shopper tied to a user account. Anonymous
// shoppers have no Customer row; their carts are keyed by session.
type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Phone     string         `gorm:"size:20" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	ShippingAddresses []ShippingAddress `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"shipping_addresses,omitempty"`
}

// ShippingAddress is a delivery address saved for a customer. Addresses
// are deduplicated on (customer, region, city, address); zipcode is not
// part of the match key.
type ShippingAddress struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Region     string    `gorm:"not null;size:255" json:"region"`
	City       string    `gorm:"not null;size:255" json:"city"`
	Address    string    `gorm:"not null;size:255" json:"address"`
	Zipcode    string    `gorm:"size:255" json:"zipcode"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides
func (Customer) TableName() string        { return "customers" }
func (ShippingAddress) TableName() string { return "shipping_addresses" }
