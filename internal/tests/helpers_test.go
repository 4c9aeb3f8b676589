// internal/tests/helpers_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/handlers"
	"github.com/rmagrichem/agrichem-backend/internal/middleware"
	"github.com/rmagrichem/agrichem-backend/internal/services"
	"github.com/rmagrichem/agrichem-backend/internal/store"
	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
		Admin: config.AdminConfig{
			Email:    "admin@rmagrichem.com",
			Password: "admin",
		},
		Company: config.CompanyConfig{
			Name:           "RM Agrichem",
			WhatsAppNumber: "919876543210",
		},
		AI: config.AIConfig{
			Model:   "gemini-2.5-flash-latest",
			Timeout: 5,
		},
	}
}

// buildRouter wires the full API surface against a fresh in-memory
// store. Rate limiting and request logging stay out so suites can fire
// requests back to back.
func buildRouter(st *store.Store, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	storageService, _ := services.NewStorageService(cfg)
	notificationService := services.NewNotificationService(cfg)

	authService := services.NewAuthService(cfg, st.Session)
	productService := services.NewProductService(st.Catalog)
	cartService := services.NewCartService(st.Catalog, st.Carts, cfg)
	contactService := services.NewContactService(st.Enquiries, notificationService, cfg)
	adviceService := services.NewAdviceService(cfg)

	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	contactHandler := handlers.NewContactHandler(contactService)
	adviceHandler := handlers.NewAdviceHandler(adviceService)
	adminHandler := handlers.NewAdminHandler(st, contactService)

	r := gin.New()
	r.Use(middleware.I18nMiddleware())

	r.GET("/uploads/products/:key", productHandler.ServeLocalUpload)

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/:id", productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.POST("/upload-image", productHandler.UploadProductImage)
			}
		}

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

		v1.POST("/contact", contactHandler.Submit)
		v1.POST("/advice", adviceHandler.GetAdvice)

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/stats", adminHandler.GetDashboardStats)
			admin.GET("/enquiries", adminHandler.GetEnquiries)
		}
	}

	return r
}

// adminToken logs in through the service layer and returns a bearer
// token for protected routes.
func adminToken(t *testing.T, cfg *config.Config, st *store.Store) string {
	t.Helper()

	authService := services.NewAuthService(cfg, st.Session)
	auth, err := authService.Login(&services.LoginRequest{
		Email:    cfg.Admin.Email,
		Password: "admin",
	})
	require.NoError(t, err)
	return auth.AccessToken
}

func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, _ := json.Marshal(body)
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
