// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every route group onto the API router
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier order.Notifier, logger *logrus.Logger) {
	SetupAuthRoutes(rg, db, cfg)
	SetupCatalogRoutes(rg, db, redisClient, cfg)
	SetupCartRoutes(rg, db, cfg)
	SetupOrderRoutes(rg, db, cfg, notifier, logger)
	SetupContentRoutes(rg, db, cfg)
	SetupAdminRoutes(rg, db, cfg, notifier, logger)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/validate", authHandler.ValidateToken)
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
			protected.PUT("/password", authHandler.ChangePassword)
		}
	}
}

// SetupCatalogRoutes sets up catalog browsing routes
func SetupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, redisClient, cfg)

	categories := rg.Group("/categories")
	{
		categories.GET("", catalogHandler.GetCategories)
		categories.GET("/:slug", catalogHandler.GetCategory)
		categories.GET("/:slug/products", catalogHandler.GetCategoryProducts)
		categories.GET("/:slug/products/:product_slug", catalogHandler.GetProduct)
		categories.GET("/:slug/filters", catalogHandler.GetFilterOptions)
		categories.POST("/:slug/filter", catalogHandler.FilterCategoryProducts)
	}

	products := rg.Group("/products")
	{
		products.GET("/search", catalogHandler.SearchProducts)
		products.GET("/discounted", catalogHandler.GetDiscountedProducts)
		products.GET("/popular", catalogHandler.GetMostPopular)
	}
}

// SetupCartRoutes sets up cart routes; guests get a session cookie
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddLine)
		cart.PUT("/items/:product_id", cartHandler.SetQuantity)
		cart.DELETE("/items/:product_id", cartHandler.RemoveLine)
	}
}

// SetupOrderRoutes sets up checkout and order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, notifier order.Notifier, logger *logrus.Logger) {
	orderHandler := handlers.NewOrderHandler(db, cfg, notifier, logger)

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(cfg))
	{
		checkout.POST("", orderHandler.PlaceOrder)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}

	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg))
	{
		users.GET("/addresses", orderHandler.GetShippingAddresses)
	}
}

// SetupContentRoutes sets up blog, FAQ, and landing page routes
func SetupContentRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	blogHandler := handlers.NewBlogHandler(db, cfg)

	blog := rg.Group("/blog")
	{
		blog.GET("/posts", blogHandler.GetPosts)
		blog.GET("/posts/:id", blogHandler.GetPost)
	}

	rg.GET("/faq", blogHandler.GetFaqs)
	rg.GET("/main-posts", blogHandler.GetMainPosts)
}

// SetupAdminRoutes sets up staff routes
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, notifier order.Notifier, logger *logrus.Logger) {
	orderHandler := handlers.NewOrderHandler(db, cfg, notifier, logger)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		orders := admin.Group("/orders")
		{
			orders.PUT("/:id/status", orderHandler.AdminUpdateOrderStatus)
		}
	}
}
