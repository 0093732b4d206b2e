package handlers

import (
	"errors"
	"net/http"

	"ecoscan/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes signup and login endpoints.
type AuthHandler struct {
	Service account.AccountService
}

// NewAuthHandler creates an AuthHandler backed by the given service.
func NewAuthHandler(svc account.AccountService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

type credentialsRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

// SignupHandler handles account registration.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(req.Email, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, account.ErrAccountExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Signup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LoginHandler handles account authentication. Unknown email and wrong
// secret produce the same response body and status.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Login(req.Email, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, account.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			logger.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
