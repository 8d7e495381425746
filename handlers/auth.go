package handlers

import (
	"net/http"

	"salonapi/middleware"
	"salonapi/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes customer registration and profile endpoints. Token
// verification itself happens in middleware; these handlers only consume the
// verified principal.
type AuthHandler struct {
	Svc    account.AccountService
	Logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc account.AccountService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Register creates a customer account with the identity provider and stores
// the profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration request", "details": err.Error()})
		return
	}

	uid, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "uid": uid})
}

// Login validates the already-verified token and returns the caller's
// profile. Authentication itself happens client-side against the provider.
func (h *AuthHandler) Login(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	customer, err := h.Svc.GetCustomer(c.Request.Context(), principal.UID)
	if err != nil {
		h.Logger.Error("failed to fetch customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"uid":       customer.ID,
		"email":     customer.Email,
		"firstName": customer.FirstName,
		"lastName":  customer.LastName,
		"phone":     customer.Phone,
	})
}

// GetUserDetails returns a customer profile. Only the profile owner or an
// admin principal may read it.
func (h *AuthHandler) GetUserDetails(c *gin.Context) {
	uid := c.Param("uid")

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if principal.UID != uid && !principal.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
		return
	}

	customer, err := h.Svc.GetCustomer(c.Request.Context(), uid)
	if err != nil {
		h.Logger.Error("failed to fetch customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}
