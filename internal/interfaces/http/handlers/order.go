// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// OrderHandler handles checkout and order endpoints
type OrderHandler struct {
	orderService    *order.Service
	cartService     *cart.Service
	customerService *customer.Service
	config          *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, cfg *config.Config, notifier order.Notifier, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orderService:    order.NewService(db, cfg, notifier, logger),
		cartService:     cart.NewService(db, cfg),
		customerService: customer.NewService(db),
		config:          cfg,
	}
}

// PlaceOrderRequest is the checkout form: contact fields plus the
// shipping address to deliver to.
type PlaceOrderRequest struct {
	order.ContactInfo
	ShippingAddress order.ShippingAddressRequest `json:"shipping_address" binding:"required"`
}

// PlaceOrder handles POST /checkout
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cust, err := h.customerService.GetOrCreateByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	openCart, err := h.cartService.ResolveCart(cart.Authenticated(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	address, err := h.orderService.CreateShippingAddress(cust.ID, &req.ShippingAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	placed, err := h.orderService.PlaceOrder(c.Request.Context(), cust.ID, openCart.ID, address.ID, req.ContactInfo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req order.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	cust, err := h.customerService.GetOrCreateByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := h.orderService.GetCustomerOrders(cust.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	cust, err := h.customerService.GetOrCreateByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	o, err := h.orderService.GetOrder(uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}

	// Customers only see their own orders; hide existence of others
	if o.CustomerID == nil || *o.CustomerID != cust.ID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// GetShippingAddresses handles GET /users/addresses
func (h *OrderHandler) GetShippingAddresses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	cust, err := h.customerService.GetOrCreateByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	addresses, err := h.customerService.GetShippingAddresses(cust.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Addresses retrieved successfully",
		"data":    addresses,
	})
}

// AdminUpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) AdminUpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.orderService.UpdateStatus(uint(orderID), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    updated,
	})
}
