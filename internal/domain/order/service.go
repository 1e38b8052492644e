// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Service handles shipping addresses and order placement
type Service struct {
	db       *gorm.DB
	config   *config.Config
	notifier Notifier
	logger   *logrus.Logger
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, notifier Notifier, logger *logrus.Logger) *Service {
	return &Service{
		db:       db,
		config:   cfg,
		notifier: notifier,
		logger:   logger,
	}
}

// ContactInfo is the contact form submitted at checkout
type ContactInfo struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Comment   string `json:"comment"`
}

// ShippingAddressRequest is the address form submitted at checkout
type ShippingAddressRequest struct {
	Region  string `json:"region" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address" binding:"required"`
	Zipcode string `json:"zipcode"`
}

// OrderListRequest represents order list query parameters
type OrderListRequest struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// UpdateStatusRequest represents a staff status change
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// ValidateContact checks the checkout contact form. Comment is the only
// optional field; everything else must be present and non-blank.
func ValidateContact(contact ContactInfo) error {
	fields := map[string]string{}
	if strings.TrimSpace(contact.FirstName) == "" {
		fields["first_name"] = "required"
	}
	if strings.TrimSpace(contact.LastName) == "" {
		fields["last_name"] = "required"
	}
	if strings.TrimSpace(contact.Phone) == "" {
		fields["phone"] = "required"
	}
	if len(fields) > 0 {
		return apperrors.ValidationFields("missing required contact fields", fields)
	}
	return nil
}

// CreateShippingAddress returns the customer's existing address matching
// (region, city, address), or creates a new one. Zipcode is not part of
// the match key, so two submissions differing only in zipcode share one
// address row.
func (s *Service) CreateShippingAddress(customerID uint, req *ShippingAddressRequest) (*customer.ShippingAddress, error) {
	var existing customer.ShippingAddress
	err := s.db.
		Where("customer_id = ? AND region = ? AND city = ? AND address = ?",
			customerID, req.Region, req.City, req.Address).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up shipping address: %w", err)
	}

	address := customer.ShippingAddress{
		CustomerID: customerID,
		Region:     req.Region,
		City:       req.City,
		Address:    req.Address,
		Zipcode:    req.Zipcode,
	}
	if err := s.db.Create(&address).Error; err != nil {
		return nil, fmt.Errorf("failed to create shipping address: %w", err)
	}
	return &address, nil
}

// PlaceOrder converts a finalized cart into an immutable order. Order
// creation and cart locking happen in one transaction; a cart already
// bound to an order is rejected with a conflict before any write. Staff
// notification runs after commit and is best-effort: its failure is
// logged, never propagated.
func (s *Service) PlaceOrder(ctx context.Context, customerID uint, cartID uint, addressID uint, contact ContactInfo) (*Order, error) {
	if err := ValidateContact(contact); err != nil {
		return nil, err
	}

	var c cart.Cart
	err := s.db.
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("LineItems.Product").
		First(&c, cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart", strconv.FormatUint(uint64(cartID), 10))
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if c.InOrder {
		return nil, apperrors.Conflict("cart is already bound to an order")
	}
	if len(c.LineItems) == 0 {
		return nil, apperrors.Validation("cart is empty")
	}

	var address customer.ShippingAddress
	if err := s.db.First(&address, addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("shipping address", strconv.FormatUint(uint64(addressID), 10))
		}
		return nil, fmt.Errorf("failed to load shipping address: %w", err)
	}

	newOrder := Order{
		FirstName:         contact.FirstName,
		LastName:          contact.LastName,
		Phone:             contact.Phone,
		Comment:           contact.Comment,
		CartID:            c.ID,
		ShippingAddressID: address.ID,
		Status:            StatusNew,
	}
	// Orders placed from anonymous carts carry no customer reference
	if !c.ForAnonymousUser {
		newOrder.CustomerID = &customerID
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&newOrder).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := tx.Model(&cart.Cart{}).Where("id = ?", c.ID).Update("in_order", true).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	c.InOrder = true

	newOrder.Cart = c
	newOrder.ShippingAddress = address
	s.notifyStaff(ctx, &newOrder, &c)

	return &newOrder, nil
}

// GetOrder retrieves a single order by ID
func (s *Service) GetOrder(id uint) (*Order, error) {
	var o Order
	err := s.db.
		Preload("Cart").
		Preload("Cart.LineItems").
		Preload("Cart.LineItems.Product").
		Preload("ShippingAddress").
		First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order", strconv.FormatUint(uint64(id), 10))
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &o, nil
}

// GetCustomerOrders retrieves a customer's order history, newest first
func (s *Service) GetCustomerOrders(customerID uint, req *OrderListRequest) ([]Order, error) {
	var orders []Order
	offset := (req.Page - 1) * req.Limit
	err := s.db.
		Preload("Cart").
		Preload("ShippingAddress").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Offset(offset).Limit(req.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customer orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets an order's status to another label from the closed
// set. Staff tooling drives this; there is no transition graph.
func (s *Service) UpdateStatus(orderID uint, status Status) (*Order, error) {
	if !ValidStatus(status) {
		return nil, apperrors.Validation(fmt.Sprintf("unknown order status: %s", status))
	}

	o, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(o).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	o.Status = status
	return o, nil
}

// Private helper methods

func (s *Service) notifyStaff(ctx context.Context, o *Order, c *cart.Cart) {
	recipients, err := s.staffRecipients()
	if err != nil {
		s.logger.WithError(err).WithField("order_id", o.ID).
			Warn("Failed to resolve staff recipients for order notification")
		return
	}
	if len(recipients) == 0 {
		s.logger.WithField("order_id", o.ID).
			Warn("No staff recipients configured; skipping order notification")
		return
	}

	s.deliverNotification(ctx, o, c, recipients)
}

// deliverNotification hands the snapshot to the notifier. Failures are
// logged and swallowed; the order is already committed at this point.
func (s *Service) deliverNotification(ctx context.Context, o *Order, c *cart.Cart, recipients []string) {
	snapshot := BuildSnapshot(o, c)
	if err := s.notifier.NotifyNewOrder(ctx, snapshot, recipients); err != nil {
		notifErr := &apperrors.ErrNotification{OrderID: o.ID, Cause: err}
		s.logger.WithError(notifErr).WithField("order_id", o.ID).
			Error("Order notification failed; order remains committed")
	}
}

func (s *Service) staffRecipients() ([]string, error) {
	var emails []string
	err := s.db.Model(&user.User{}).
		Where("is_admin = ? AND is_active = ?", true, true).
		Pluck("email", &emails).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query staff emails: %w", err)
	}
	if len(emails) == 0 {
		emails = s.config.Email.StaffEmails
	}
	return emails, nil
}
