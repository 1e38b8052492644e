// internal/domain/customer/service.go
package customer

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Service handles customer profile lookups
type Service struct {
	db *gorm.DB
}

// NewService creates a new customer service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetOrCreateByUserID returns the customer profile for a user account,
// creating it when the account predates the profile table.
func (s *Service) GetOrCreateByUserID(userID uint) (*Customer, error) {
	var c Customer
	err := s.db.Where("user_id = ?", userID).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	c = Customer{UserID: userID}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &c, nil
}

// GetShippingAddresses returns a customer's saved addresses, newest first
func (s *Service) GetShippingAddresses(customerID uint) ([]ShippingAddress, error) {
	var addresses []ShippingAddress
	err := s.db.
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shipping addresses: %w", err)
	}
	return addresses, nil
}
