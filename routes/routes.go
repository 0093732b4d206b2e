package routes

import (
	"net/http"
	"time"

	"ecoscan/handlers"
	"ecoscan/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public signup/login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterHistoryRoutes registers the citizen ledger endpoints.
func RegisterHistoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/history")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.GET("", hb.GetHistoryHandler)
		api.POST("", hb.CreateHistoryHandler)
	}
}

// RegisterClassifyRoutes registers the classification endpoint.
func RegisterClassifyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/classify")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.POST("", hb.ClassifyWasteHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
// Known boundary: the group requires a valid bearer token but performs no
// role check, so any registered account can read all reports. Hardening this
// needs an explicit role model, which the account schema does not carry.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.BearerAuthMiddleware())
		adminGroup.GET("/reports", hb.ListReportsHandler)
	}
}

// RegisterCategoryRoutes registers the public taxonomy endpoint.
func RegisterCategoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/categories", hb.ListCategoriesHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm EcoScan"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterHistoryRoutes(r, hb)
	RegisterClassifyRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterCategoryRoutes(r, hb)
	RegisterHealthRoute(r)
}
