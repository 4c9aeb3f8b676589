// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/handlers"
	"github.com/rmagrichem/agrichem-backend/internal/middleware"
	"github.com/rmagrichem/agrichem-backend/internal/models"
	"github.com/rmagrichem/agrichem-backend/internal/services"
	"github.com/rmagrichem/agrichem-backend/internal/store"
	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

func Initialize(st *store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	notificationService := services.NewNotificationService(cfg)

	authService := services.NewAuthService(cfg, st.Session)
	productService := services.NewProductService(st.Catalog)
	cartService := services.NewCartService(st.Catalog, st.Carts, cfg)
	contactService := services.NewContactService(st.Enquiries, notificationService, cfg)
	adviceService := services.NewAdviceService(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	contactHandler := handlers.NewContactHandler(contactService)
	adviceHandler := handlers.NewAdviceHandler(adviceService)
	adminHandler := handlers.NewAdminHandler(st, contactService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Transient image handles (in-memory storage mode)
	r.GET("/uploads/products/:key", productHandler.ServeLocalUpload)

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/:id", productHandler.GetProduct)

			// Administrative routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.POST("/upload-image", middleware.UploadRateLimit(), productHandler.UploadProductImage)
			}
		}

		// Cart routes (anonymous, keyed by session id)
		cart := v1.Group("/cart")
		cart.Use(middleware.SessionID())
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productId", cartHandler.SetQuantity)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
			cart.GET("/enquiry-link", cartHandler.GetEnquiryLink)
		}

		// Contact form
		v1.POST("/contact", contactHandler.Submit)

		// AI agronomist
		v1.POST("/advice", middleware.ChatRateLimit(), adviceHandler.GetAdvice)

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", getCategoriesHandler)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/stats", adminHandler.GetDashboardStats)
			admin.GET("/enquiries", adminHandler.GetEnquiries)
		}
	}

	return r
}

// Helper handlers for simple endpoints
func getCategoriesHandler(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": models.Categories(),
	})
}
