// internal/domain/blog/entity.go
package blog

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Post represents a blog entry
type Post struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"not null;size:255"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	PreviewContent string    `json:"preview_content" gorm:"type:text"`
	PreviewImage   string    `json:"preview_image" gorm:"size:500"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Faq is a question/answer pair shown on the FAQ page
type Faq struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Question  string    `json:"question" gorm:"not null;size:255"`
	Answer    string    `json:"answer" gorm:"not null;size:2048"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MainPost is a landing page banner promoting a single product
type MainPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	BannerImg string    `json:"banner_img" gorm:"not null;size:500"`
	ShowOrder int       `json:"show_order" gorm:"not null;default:1"`
	IsActive  bool      `json:"is_active" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product catalog.Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName overrides
func (Post) TableName() string {
	return "posts"
}

func (Faq) TableName() string {
	return "faqs"
}

func (MainPost) TableName() string {
	return "main_posts"
}
