// internal/domain/order/service_db_test.go
package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type orderFixture struct {
	svc      *Service
	db       *gorm.DB
	notifier *mockNotifier
	customer customer.Customer
	cart     cart.Cart
	address  customer.ShippingAddress
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&customer.Customer{},
		&customer.ShippingAddress{},
		&catalog.Category{},
		&catalog.Brand{},
		&catalog.Product{},
		&cart.Cart{},
		&cart.LineItem{},
		&Order{},
	))

	cat := catalog.Category{Name: "Phones", Slug: "phones"}
	require.NoError(t, db.Create(&cat).Error)
	product := catalog.Product{CategoryID: cat.ID, Title: "Phone Alpha", Slug: "phone-alpha", Price: 10000, IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	cust := customer.Customer{UserID: 1}
	require.NoError(t, db.Create(&cust).Error)

	c := cart.Cart{OwnerID: &cust.ID, TotalProducts: 2, FinalPrice: 20000}
	require.NoError(t, db.Create(&c).Error)
	line := cart.LineItem{CartID: c.ID, ProductID: product.ID, CustomerID: &cust.ID, Quantity: 2, FinalPrice: 20000}
	require.NoError(t, db.Create(&line).Error)

	address := customer.ShippingAddress{CustomerID: cust.ID, Region: "West", City: "Springfield", Address: "742 Evergreen Terrace"}
	require.NoError(t, db.Create(&address).Error)

	notifier := new(mockNotifier)
	cfg := &config.Config{
		Email: config.EmailConfig{StaffEmails: []string{"staff@example.com"}},
	}

	return &orderFixture{
		svc:      NewService(db, cfg, notifier, quietLogger()),
		db:       db,
		notifier: notifier,
		customer: cust,
		cart:     c,
		address:  address,
	}
}

func validContact() ContactInfo {
	return ContactInfo{FirstName: "Jane", LastName: "Doe", Phone: "+15551234567"}
}

func TestPlaceOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.notifier.On("NotifyNewOrder", mock.Anything, mock.MatchedBy(func(s Snapshot) bool {
		return s.FinalPrice == 20000 && len(s.Lines) == 1
	}), []string{"staff@example.com"}).Return(nil).Once()

	o, err := f.svc.PlaceOrder(context.Background(), f.customer.ID, f.cart.ID, f.address.ID, validContact())
	require.NoError(t, err)

	assert.Equal(t, StatusNew, o.Status)
	require.NotNil(t, o.CustomerID)
	assert.Equal(t, f.customer.ID, *o.CustomerID)
	assert.Equal(t, f.cart.ID, o.CartID)

	var locked cart.Cart
	require.NoError(t, f.db.First(&locked, f.cart.ID).Error)
	assert.True(t, locked.InOrder)

	f.notifier.AssertExpectations(t)
}

func TestPlaceOrderCartAlreadyBound(t *testing.T) {
	f := newOrderFixture(t)
	require.NoError(t, f.db.Model(&cart.Cart{}).Where("id = ?", f.cart.ID).Update("in_order", true).Error)

	_, err := f.svc.PlaceOrder(context.Background(), f.customer.ID, f.cart.ID, f.address.ID, validContact())

	var conflict *apperrors.ErrConflict
	require.ErrorAs(t, err, &conflict)

	var count int64
	require.NoError(t, f.db.Model(&Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	f.notifier.AssertNotCalled(t, "NotifyNewOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrderTwiceConflicts(t *testing.T) {
	f := newOrderFixture(t)
	f.notifier.On("NotifyNewOrder", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.svc.PlaceOrder(context.Background(), f.customer.ID, f.cart.ID, f.address.ID, validContact())
	require.NoError(t, err)

	_, err = f.svc.PlaceOrder(context.Background(), f.customer.ID, f.cart.ID, f.address.ID, validContact())

	var conflict *apperrors.ErrConflict
	require.ErrorAs(t, err, &conflict)

	var count int64
	require.NoError(t, f.db.Model(&Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t)
	require.NoError(t, f.db.Where("cart_id = ?", f.cart.ID).Delete(&cart.LineItem{}).Error)

	_, err := f.svc.PlaceOrder(context.Background(), f.customer.ID, f.cart.ID, f.address.ID, validContact())

	var verr *apperrors.ErrValidation
	assert.ErrorAs(t, err, &verr)
}

func TestCreateShippingAddressDedup(t *testing.T) {
	f := newOrderFixture(t)
	req := &ShippingAddressRequest{Region: "East", City: "Shelbyville", Address: "12 Main St", Zipcode: "10001"}

	first, err := f.svc.CreateShippingAddress(f.customer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "10001", first.Zipcode)

	// Zipcode is not part of the match key
	req.Zipcode = "99999"
	second, err := f.svc.CreateShippingAddress(f.customer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "10001", second.Zipcode)

	var count int64
	require.NoError(t, f.db.Model(&customer.ShippingAddress{}).
		Where("region = ? AND city = ?", "East", "Shelbyville").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateShippingAddressDistinctPerCustomer(t *testing.T) {
	f := newOrderFixture(t)
	other := customer.Customer{UserID: 2}
	require.NoError(t, f.db.Create(&other).Error)

	req := &ShippingAddressRequest{Region: "East", City: "Shelbyville", Address: "12 Main St"}

	mine, err := f.svc.CreateShippingAddress(f.customer.ID, req)
	require.NoError(t, err)
	theirs, err := f.svc.CreateShippingAddress(other.ID, req)
	require.NoError(t, err)

	assert.NotEqual(t, mine.ID, theirs.ID)
}
