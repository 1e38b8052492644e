// internal/domain/cart/service_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&customer.Customer{},
		&catalog.Category{},
		&catalog.Brand{},
		&catalog.Product{},
		&Cart{},
		&LineItem{},
	))

	return NewService(db, &config.Config{}), db
}

func seedProducts(t *testing.T, db *gorm.DB) (catalog.Product, catalog.Product) {
	t.Helper()

	cat := catalog.Category{Name: "Phones", Slug: "phones"}
	require.NoError(t, db.Create(&cat).Error)

	alpha := catalog.Product{
		CategoryID: cat.ID,
		Title:      "Phone Alpha",
		Slug:       "phone-alpha",
		Price:      10000,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&alpha).Error)

	discount := int64(5000)
	beta := catalog.Product{
		CategoryID:    cat.ID,
		Title:         "Phone Beta",
		Slug:          "phone-beta",
		Price:         8000,
		DiscountPrice: &discount,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&beta).Error)

	return alpha, beta
}

func TestCartMutatorSequence(t *testing.T) {
	svc, db := newTestService(t)
	alpha, beta := seedProducts(t, db)
	identity := Anonymous("sess-1")

	c, err := svc.AddLine(identity, alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalProducts)
	assert.Equal(t, int64(10000), c.FinalPrice)

	// Discounted product prices at its discount price
	c, err = svc.AddLine(identity, beta.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalProducts)
	assert.Equal(t, int64(15000), c.FinalPrice)

	c, err = svc.SetQuantity(identity, beta.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, c.TotalProducts)
	assert.Equal(t, int64(20000), c.FinalPrice)

	c, err = svc.RemoveLine(identity, alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalProducts)
	assert.Equal(t, int64(10000), c.FinalPrice)
	require.Len(t, c.LineItems, 1)
	assert.Equal(t, beta.ID, c.LineItems[0].ProductID)
}

func TestAddLineExistingProductKeepsQuantity(t *testing.T) {
	svc, db := newTestService(t)
	alpha, _ := seedProducts(t, db)
	identity := Anonymous("sess-1")

	_, err := svc.AddLine(identity, alpha.ID)
	require.NoError(t, err)
	_, err = svc.SetQuantity(identity, alpha.ID, 3)
	require.NoError(t, err)

	c, err := svc.AddLine(identity, alpha.ID)
	require.NoError(t, err)
	require.Len(t, c.LineItems, 1)
	assert.Equal(t, 3, c.LineItems[0].Quantity)
	assert.Equal(t, 3, c.TotalProducts)
}

func TestAddLineInactiveProduct(t *testing.T) {
	svc, db := newTestService(t)
	alpha, _ := seedProducts(t, db)
	require.NoError(t, db.Model(&catalog.Product{}).Where("id = ?", alpha.ID).Update("is_active", false).Error)

	_, err := svc.AddLine(Anonymous("sess-1"), alpha.ID)

	var nf *apperrors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestRemoveLineMissing(t *testing.T) {
	svc, db := newTestService(t)
	alpha, _ := seedProducts(t, db)

	_, err := svc.RemoveLine(Anonymous("sess-1"), alpha.ID)

	var nf *apperrors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestSetQuantityRejectsNonPositive(t *testing.T) {
	// The guard runs before any storage access, so no database is needed
	svc := &Service{}

	for _, qty := range []int{0, -1} {
		c, err := svc.SetQuantity(Anonymous("sess-1"), 1, qty)
		assert.Nil(t, c)

		var verr *apperrors.ErrValidation
		assert.ErrorAs(t, err, &verr)
	}
}

func TestResolveCartSingleOpenCart(t *testing.T) {
	svc, db := newTestService(t)
	identity := Anonymous("sess-1")

	first, err := svc.ResolveCart(identity)
	require.NoError(t, err)
	second, err := svc.ResolveCart(identity)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Same partial unique index the migrations create in production
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX idx_carts_session_open ON carts(session_key) WHERE in_order = false AND session_key IS NOT NULL",
	).Error)

	sessionKey := "sess-1"
	dup := Cart{ForAnonymousUser: true, SessionKey: &sessionKey}
	assert.Error(t, db.Create(&dup).Error)

	again, err := svc.ResolveCart(identity)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestResolveCartCreatesCustomer(t *testing.T) {
	svc, db := newTestService(t)
	identity := Authenticated(7)

	c, err := svc.ResolveCart(identity)
	require.NoError(t, err)
	require.NotNil(t, c.OwnerID)

	var cust customer.Customer
	require.NoError(t, db.Where("user_id = ?", 7).First(&cust).Error)
	assert.Equal(t, cust.ID, *c.OwnerID)

	again, err := svc.ResolveCart(identity)
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID)
}
