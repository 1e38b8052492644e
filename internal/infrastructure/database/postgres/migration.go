// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront-backend/internal/domain/blog"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		// Accounts
		&user.User{},
		&customer.Customer{},
		&customer.ShippingAddress{},

		// Catalog
		&catalog.Category{},
		&catalog.Brand{},
		&catalog.Product{},
		&catalog.ProductImage{},
		&catalog.Attribute{},
		&catalog.AttributeValue{},

		// Cart
		&cart.Cart{},
		&cart.LineItem{},

		// Orders
		&order.Order{},

		// Content
		&blog.Post{},
		&blog.Faq{},
		&blog.MainPost{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_users_staff ON users(is_admin, is_active)",

		// Catalog indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug)",
		"CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_discount ON products(discount_price) WHERE discount_price IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_attribute_values_product ON attribute_values(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_attribute_values_attribute ON attribute_values(attribute_id)",

		// Cart indexes. The partial unique indexes serialize concurrent
		// cart creation so each identity keeps exactly one open cart.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_owner_open ON carts(owner_id) WHERE in_order = false AND owner_id IS NOT NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_session_open ON carts(session_key) WHERE in_order = false AND session_key IS NOT NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_line_items_cart_product ON cart_line_items(cart_id, product_id)",

		// Shipping address dedup lookups
		"CREATE INDEX IF NOT EXISTS idx_shipping_addresses_dedup ON shipping_addresses(customer_id, region, city, address)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_customer_created ON orders(customer_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_cart ON orders(cart_id)",

		// Content indexes
		"CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_main_posts_active_order ON main_posts(is_active, show_order DESC)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates default catalog categories
func (m *Migration) seedCategories() error {
	log.Println("🏷️ Seeding categories...")

	categories := []catalog.Category{
		{
			Name:     "Electronics",
			Slug:     "electronics",
			Keywords: "electronics, gadgets, devices",
		},
		{
			Name:     "Appliances",
			Slug:     "appliances",
			Keywords: "appliances, kitchen, home",
		},
		{
			Name:     "Furniture",
			Slug:     "furniture",
			Keywords: "furniture, tables, chairs",
		},
	}

	for _, category := range categories {
		var existing catalog.Category
		result := m.db.Where("slug = ?", category.Slug).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&category).Error; err != nil {
				return err
			}
			log.Printf("✅ Created category: %s", category.Name)
		} else {
			log.Printf("⏭️ Category already exists: %s", category.Name)
		}
	}

	return nil
}

// seedAdminUser creates the default staff account that receives new
// order notifications.
func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	var existing user.User
	result := m.db.Where("email = ?", "admin@example.com").First(&existing)
	if result.Error == nil {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	adminUser := user.User{
		Email:     "admin@example.com",
		Password:  string(hashedPassword),
		FirstName: "Admin",
		LastName:  "User",
		IsActive:  true,
		IsAdmin:   true,
	}

	if err := m.db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := m.db.Create(&customer.Customer{UserID: adminUser.ID}).Error; err != nil {
		return fmt.Errorf("failed to create admin customer profile: %w", err)
	}

	log.Println("✅ Created admin user: admin@example.com (password: admin123)")
	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"main_posts",
		"faqs",
		"posts",
		"orders",
		"cart_line_items",
		"carts",
		"attribute_values",
		"attributes",
		"product_images",
		"products",
		"brands",
		"categories",
		"shipping_addresses",
		"customers",
		"users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
