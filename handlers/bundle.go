package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Auth endpoints.
	SignupHandler gin.HandlerFunc
	LoginHandler  gin.HandlerFunc

	// History endpoints.
	GetHistoryHandler    gin.HandlerFunc
	CreateHistoryHandler gin.HandlerFunc

	// Classification endpoint.
	ClassifyWasteHandler gin.HandlerFunc

	// Admin endpoints.
	ListReportsHandler gin.HandlerFunc

	// Taxonomy endpoint.
	ListCategoriesHandler gin.HandlerFunc
}
