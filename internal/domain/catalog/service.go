// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

const popularProductsCacheKey = "catalog:popular_products"

// Service handles catalog reads: categories, products, filtering metadata
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// ProductListResponse represents a page of products
type ProductListResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// FilterOptions describes the filter controls available for a category:
// the brands present among its products and the filterable attributes
// with their values. The storefront builds its filter form from this.
type FilterOptions struct {
	Brands     []Brand     `json:"brands"`
	Attributes []Attribute `json:"attributes"`
}

// GetCategories retrieves all categories
func (s *Service) GetCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// GetCategoryBySlug retrieves a single category by its slug
func (s *Service) GetCategoryBySlug(slug string) (*Category, error) {
	var category Category
	result := s.db.Where("slug = ?", slug).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category", slug)
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", result.Error)
	}
	return &category, nil
}

// GetCategoryProducts retrieves one page of a category's products
func (s *Service) GetCategoryProducts(categorySlug string, req *ProductListRequest) (*ProductListResponse, error) {
	category, err := s.GetCategoryBySlug(categorySlug)
	if err != nil {
		return nil, err
	}

	var total int64
	query := s.db.Model(&Product{}).Where("category_id = ?", category.ID)
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []Product
	offset := (req.Page - 1) * req.Limit
	err = query.
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("created_at DESC").
		Offset(offset).Limit(req.Limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return &ProductListResponse{
		Products:   products,
		Pagination: buildPagination(req.Page, req.Limit, total),
	}, nil
}

// FilterCategoryProducts loads a category's full product set and narrows
// it with the supplied criteria. The catalog itself is never mutated.
func (s *Service) FilterCategoryProducts(categorySlug string, criteria FilterCriteria) ([]Product, error) {
	category, err := s.GetCategoryBySlug(categorySlug)
	if err != nil {
		return nil, err
	}

	var products []Product
	err = s.db.
		Preload("Brand").
		Preload("AttributeValues").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("category_id = ?", category.ID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return ApplyFilters(products, criteria), nil
}

// GetFilterOptions returns the filter controls for a category: brands of
// its products plus attributes flagged use_in_filter with their values
func (s *Service) GetFilterOptions(categorySlug string) (*FilterOptions, error) {
	category, err := s.GetCategoryBySlug(categorySlug)
	if err != nil {
		return nil, err
	}

	var brands []Brand
	err = s.db.
		Where("id IN (?)", s.db.Model(&Product{}).
			Select("brand_id").
			Where("category_id = ? AND brand_id IS NOT NULL", category.ID)).
		Order("name ASC").
		Find(&brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve brands: %w", err)
	}

	var attributes []Attribute
	err = s.db.
		Preload("Values").
		Where("category_id = ? AND use_in_filter = ?", category.ID, true).
		Order("name ASC").
		Find(&attributes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve attributes: %w", err)
	}

	return &FilterOptions{Brands: brands, Attributes: attributes}, nil
}

// GetProduct retrieves a single product by category and product slug
func (s *Service) GetProduct(categorySlug, productSlug string) (*Product, error) {
	var product Product
	result := s.db.
		Preload("Category").
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("AttributeValues").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.slug = ? AND products.slug = ?", categorySlug, productSlug).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product", productSlug)
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// SearchProducts searches by product title and category name, newest first
func (s *Service) SearchProducts(query string, req *ProductListRequest) (*ProductListResponse, error) {
	pattern := "%" + query + "%"

	base := s.db.Model(&Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.title ILIKE ? OR categories.name ILIKE ?", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	var products []Product
	offset := (req.Page - 1) * req.Limit
	err := base.
		Preload("Category").
		Preload("Brand").
		Order("products.created_at DESC").
		Offset(offset).Limit(req.Limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return &ProductListResponse{
		Products:   products,
		Pagination: buildPagination(req.Page, req.Limit, total),
	}, nil
}

// GetDiscountedProducts retrieves products carrying a discount price
func (s *Service) GetDiscountedProducts(req *ProductListRequest) (*ProductListResponse, error) {
	query := s.db.Model(&Product{}).Where("discount_price IS NOT NULL")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count discounted products: %w", err)
	}

	var products []Product
	offset := (req.Page - 1) * req.Limit
	err := query.
		Preload("Category").
		Preload("Brand").
		Order("created_at DESC").
		Offset(offset).Limit(req.Limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve discounted products: %w", err)
	}

	return &ProductListResponse{
		Products:   products,
		Pagination: buildPagination(req.Page, req.Limit, total),
	}, nil
}

// GetMostPopular returns the products most often added to carts. The ID
// list is cached in Redis for a few minutes since it backs the landing
// page and the underlying aggregate is moderately expensive.
func (s *Service) GetMostPopular(ctx context.Context, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 5
	}

	ids, err := s.popularProductIDs(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Product{}, nil
	}

	var products []Product
	err = s.db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve popular products: %w", err)
	}
	return products, nil
}

func (s *Service) popularProductIDs(ctx context.Context, limit int) ([]uint, error) {
	cacheKey := fmt.Sprintf("%s:%d", popularProductsCacheKey, limit)

	if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var ids []uint
		if err := json.Unmarshal([]byte(cached), &ids); err == nil {
			return ids, nil
		}
	}

	var ids []uint
	err := s.db.
		Table("cart_line_items").
		Select("product_id").
		Group("product_id").
		Order("SUM(quantity) DESC").
		Limit(limit).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate popular products: %w", err)
	}

	if payload, err := json.Marshal(ids); err == nil {
		// Cache failures are not worth surfacing to the landing page
		s.redisClient.Set(ctx, cacheKey, payload, 10*time.Minute)
	}
	return ids, nil
}

func buildPagination(page, limit int, total int64) Pagination {
	if limit <= 0 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
