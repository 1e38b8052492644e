// internal/domain/blog/service.go
package blog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Service handles blog, FAQ, and landing page content
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new blog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// PostListRequest represents blog list query parameters
type PostListRequest struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// GetPosts retrieves blog posts, newest first
func (s *Service) GetPosts(req *PostListRequest) ([]Post, int64, error) {
	var posts []Post
	var total int64

	if err := s.db.Model(&Post{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	err := s.db.
		Order("created_at DESC").
		Offset(offset).Limit(req.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	return posts, total, nil
}

// GetPost retrieves a single blog post by ID
func (s *Service) GetPost(id uint) (*Post, error) {
	var post Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("post", strconv.FormatUint(uint64(id), 10))
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return &post, nil
}

// GetFaqs retrieves all FAQ entries
func (s *Service) GetFaqs() ([]Faq, error) {
	var faqs []Faq
	if err := s.db.Order("id ASC").Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve faqs: %w", err)
	}
	return faqs, nil
}

// GetMainPosts retrieves active landing page banners in display order
func (s *Service) GetMainPosts() ([]MainPost, error) {
	var mainPosts []MainPost
	err := s.db.
		Preload("Product").
		Preload("Product.Images").
		Where("is_active = ?", true).
		Order("show_order DESC").
		Find(&mainPosts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve main posts: %w", err)
	}
	return mainPosts, nil
}
