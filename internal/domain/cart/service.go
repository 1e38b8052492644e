// internal/domain/cart/service.go
package cart

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Service handles cart business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// AddLineRequest represents add to cart request
type AddLineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// SetQuantityRequest represents a line quantity change
type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ResolveCart returns the single open cart for the identity, creating
// an empty one when none exists. For authenticated identities a missing
// Customer row is created as well, so a first-time shopper always ends
// up with exactly one open cart.
func (s *Service) ResolveCart(identity Identity) (*Cart, error) {
	if sessionKey, ok := identity.SessionKey(); ok {
		var c Cart
		err := s.db.
			Where("for_anonymous_user = ? AND session_key = ? AND in_order = ?", true, sessionKey, false).
			First(&c).Error
		if err == nil {
			return &c, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve anonymous cart: %w", err)
		}

		c = Cart{ForAnonymousUser: true, SessionKey: &sessionKey}
		if err := s.db.Create(&c).Error; err != nil {
			// Two first requests for one session can race here; the
			// partial unique index on open session carts turns the loser
			// into an insert error, so re-read before giving up.
			var existing Cart
			if readErr := s.db.
				Where("for_anonymous_user = ? AND session_key = ? AND in_order = ?", true, sessionKey, false).
				First(&existing).Error; readErr == nil {
				return &existing, nil
			}
			return nil, fmt.Errorf("failed to create anonymous cart: %w", err)
		}
		return &c, nil
	}

	userID, _ := identity.UserID()
	cust, err := s.resolveCustomer(userID)
	if err != nil {
		return nil, err
	}

	var c Cart
	err = s.db.Where("owner_id = ? AND in_order = ?", cust.ID, false).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve customer cart: %w", err)
	}

	c = Cart{OwnerID: &cust.ID}
	if err := s.db.Create(&c).Error; err != nil {
		var existing Cart
		if readErr := s.db.
			Where("owner_id = ? AND in_order = ?", cust.ID, false).
			First(&existing).Error; readErr == nil {
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create customer cart: %w", err)
	}
	return &c, nil
}

// GetCart returns the identity's open cart with its line items and
// product details loaded
func (s *Service) GetCart(identity Identity) (*Cart, error) {
	resolved, err := s.ResolveCart(identity)
	if err != nil {
		return nil, err
	}
	return s.loadCart(resolved.ID)
}

// AddLine ensures a line item exists for (cart, product). A new line
// starts at quantity 1; adding an already-present product is a no-op
// apart from aggregate recomputation.
func (s *Service) AddLine(identity Identity, productID uint) (*Cart, error) {
	c, err := s.ResolveCart(identity)
	if err != nil {
		return nil, err
	}

	product, err := s.findActiveProduct(productID)
	if err != nil {
		return nil, err
	}

	if _, err := s.findOrCreateLine(c, product, identity); err != nil {
		return nil, err
	}

	if err := s.Recompute(c); err != nil {
		return nil, err
	}
	return s.loadCart(c.ID)
}

// RemoveLine deletes the line item for (cart, product)
func (s *Service) RemoveLine(identity Identity, productID uint) (*Cart, error) {
	c, err := s.ResolveCart(identity)
	if err != nil {
		return nil, err
	}

	var line LineItem
	err = s.db.Where("cart_id = ? AND product_id = ?", c.ID, productID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart line item", strconv.FormatUint(uint64(productID), 10))
		}
		return nil, fmt.Errorf("failed to find cart line item: %w", err)
	}

	if err := s.db.Delete(&line).Error; err != nil {
		return nil, fmt.Errorf("failed to delete cart line item: %w", err)
	}

	if err := s.Recompute(c); err != nil {
		return nil, err
	}
	return s.loadCart(c.ID)
}

// SetQuantity sets the line quantity and recomputes the line's final
// price from the product's current effective price. Quantities below 1
// are rejected before any state changes.
func (s *Service) SetQuantity(identity Identity, productID uint, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.Validation("quantity must be a positive integer")
	}

	c, err := s.ResolveCart(identity)
	if err != nil {
		return nil, err
	}

	product, err := s.findActiveProduct(productID)
	if err != nil {
		return nil, err
	}

	var line LineItem
	err = s.db.Where("cart_id = ? AND product_id = ?", c.ID, productID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart line item", strconv.FormatUint(uint64(productID), 10))
		}
		return nil, fmt.Errorf("failed to find cart line item: %w", err)
	}

	line.Quantity = quantity
	line.FinalPrice = LineTotal(quantity, product)
	if err := s.db.Save(&line).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart line item: %w", err)
	}

	if err := s.Recompute(c); err != nil {
		return nil, err
	}
	return s.loadCart(c.ID)
}

// Recompute re-derives both cart aggregates from the current line items
// and persists them. It is the only writer of the aggregates, is invoked
// after every mutation, and running it twice yields the same result.
func (s *Service) Recompute(c *Cart) error {
	var items []LineItem
	if err := s.db.Where("cart_id = ?", c.ID).Find(&items).Error; err != nil {
		return fmt.Errorf("failed to load line items for recompute: %w", err)
	}

	totalProducts, finalPrice := SumLineItems(items)
	c.TotalProducts = totalProducts
	c.FinalPrice = finalPrice

	err := s.db.Model(c).Updates(map[string]interface{}{
		"total_products": totalProducts,
		"final_price":    finalPrice,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to persist cart aggregates: %w", err)
	}
	return nil
}

// Private helper methods

func (s *Service) resolveCustomer(userID uint) (*customer.Customer, error) {
	var cust customer.Customer
	err := s.db.Where("user_id = ?", userID).First(&cust).Error
	if err == nil {
		return &cust, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	cust = customer.Customer{UserID: userID}
	if err := s.db.Create(&cust).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &cust, nil
}

func (s *Service) findActiveProduct(productID uint) (*catalog.Product, error) {
	var product catalog.Product
	err := s.db.Where("id = ? AND is_active = ?", productID, true).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product", strconv.FormatUint(uint64(productID), 10))
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &product, nil
}

func (s *Service) findOrCreateLine(c *Cart, product *catalog.Product, identity Identity) (*LineItem, error) {
	var line LineItem
	err := s.db.Where("cart_id = ? AND product_id = ?", c.ID, product.ID).First(&line).Error
	if err == nil {
		return &line, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find cart line item: %w", err)
	}

	line = LineItem{
		CartID:     c.ID,
		ProductID:  product.ID,
		Quantity:   1,
		FinalPrice: LineTotal(1, product),
	}
	if sessionKey, ok := identity.SessionKey(); ok {
		line.SessionKey = &sessionKey
	} else {
		line.CustomerID = c.OwnerID
	}

	if err := s.db.Create(&line).Error; err != nil {
		// A concurrent request may have created the same line first;
		// the (cart_id, product_id) unique index turns that race into
		// an insert error, so re-read before giving up.
		var existing LineItem
		if readErr := s.db.Where("cart_id = ? AND product_id = ?", c.ID, product.ID).First(&existing).Error; readErr == nil {
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create cart line item: %w", err)
	}
	return &line, nil
}

func (s *Service) loadCart(cartID uint) (*Cart, error) {
	var c Cart
	err := s.db.
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("LineItems.Product").
		Preload("LineItems.Product.Category").
		Preload("LineItems.Product.Brand").
		First(&c, cartID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &c, nil
}
