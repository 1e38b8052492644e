// internal/interfaces/http/handlers/blog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/blog"
	"gorm.io/gorm"
)

// BlogHandler handles blog, FAQ, and landing page content endpoints
type BlogHandler struct {
	blogService *blog.Service
	config      *config.Config
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(db *gorm.DB, cfg *config.Config) *BlogHandler {
	return &BlogHandler{
		blogService: blog.NewService(db, cfg),
		config:      cfg,
	}
}

// GetPosts handles GET /blog/posts
func (h *BlogHandler) GetPosts(c *gin.Context) {
	var req blog.PostListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	posts, total, err := h.blogService.GetPosts(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posts retrieved successfully",
		"data": gin.H{
			"posts": posts,
			"total": total,
		},
	})
}

// GetPost handles GET /blog/posts/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid post ID",
		})
		return
	}

	post, err := h.blogService.GetPost(uint(postID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post retrieved successfully",
		"data":    post,
	})
}

// GetFaqs handles GET /faq
func (h *BlogHandler) GetFaqs(c *gin.Context) {
	faqs, err := h.blogService.GetFaqs()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "FAQ retrieved successfully",
		"data":    faqs,
	})
}

// GetMainPosts handles GET /main-posts
func (h *BlogHandler) GetMainPosts(c *gin.Context) {
	mainPosts, err := h.blogService.GetMainPosts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Main posts retrieved successfully",
		"data":    mainPosts,
	})
}
