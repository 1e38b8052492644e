// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Category represents a sellable product category
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Keywords  string         `gorm:"size:128" json:"keywords"` // Comma-separated, used by the internal search
	Image     string         `gorm:"size:500" json:"image"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products   []Product   `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	Attributes []Attribute `gorm:"foreignKey:CategoryID" json:"attributes,omitempty"`
}

// Attribute is a named characteristic template scoped to a category,
// e.g. "color" for the "phones" category. UseInFilter gates whether the
// attribute participates in product filtering.
type Attribute struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CategoryID  uint           `gorm:"not null;uniqueIndex:idx_attributes_category_name" json:"category_id"`
	Name        string         `gorm:"not null;size:255;uniqueIndex:idx_attributes_category_name" json:"name"`
	Slug        string         `gorm:"not null;size:255" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Unit        string         `gorm:"size:50" json:"unit"`
	UseInFilter bool           `gorm:"default:false" json:"use_in_filter"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Values []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"values,omitempty"`
}

// AttributeValue is one concrete attribute value attached to a specific
// product, e.g. "color = red" for product 42. The attribute must belong
// to the same category as the product.
type AttributeValue struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AttributeID uint      `gorm:"not null;index" json:"attribute_id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Brand represents a product manufacturer
type Brand struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:BrandID" json:"products,omitempty"`
}

// Product represents a sellable product
type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	BrandID       *uint          `gorm:"index" json:"brand_id"`
	Title         string         `gorm:"not null;size:255" json:"title"`
	Slug          string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description   string         `gorm:"type:text" json:"description"`
	Price         int64          `gorm:"not null" json:"price"` // Price in cents
	DiscountPrice *int64         `json:"discount_price"`        // Supersedes Price for all pricing when set
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	Keywords      string         `gorm:"size:128" json:"keywords"`
	ExpiredAt     *time.Time     `json:"expired_at"` // Limited offer deadline
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category        Category         `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Brand           *Brand           `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"brand,omitempty"`
	Images          []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
	AttributeValues []AttributeValue `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"attribute_values,omitempty"`
}

// ProductImage represents product images
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	URL       string    `gorm:"not null;size:500" json:"url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Category) TableName() string       { return "categories" }
func (Attribute) TableName() string      { return "attributes" }
func (AttributeValue) TableName() string { return "attribute_values" }
func (Brand) TableName() string          { return "brands" }
func (Product) TableName() string        { return "products" }
func (ProductImage) TableName() string   { return "product_images" }

// Business methods for Product

// EffectivePrice returns the discount price when one is set, otherwise
// the regular price. All cart pricing goes through this.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// HasDiscount reports whether the product currently carries a discount price
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil
}

// GetFormattedPrice returns the effective price as a float
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.EffectivePrice()) / 100
}

// MainImage returns the first image by sort order, or nil when the
// product has no images loaded
func (p *Product) MainImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	main := &p.Images[0]
	for i := range p.Images {
		if p.Images[i].SortOrder < main.SortOrder {
			main = &p.Images[i]
		}
	}
	return main
}
