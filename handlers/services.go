package handlers

import (
	"net/http"

	"salonapi/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServicesHandler exposes the public service catalog.
type ServicesHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

// NewServicesHandler creates a ServicesHandler.
func NewServicesHandler(svc catalog.CatalogService, logger *zap.Logger) *ServicesHandler {
	return &ServicesHandler{Svc: svc, Logger: logger}
}

// GetCategories lists all catalog categories.
func (h *ServicesHandler) GetCategories(c *gin.Context) {
	categories, err := h.Svc.GetCategories(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID returns one category.
func (h *ServicesHandler) GetCategoryByID(c *gin.Context) {
	category, err := h.Svc.GetCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		h.Logger.Error("failed to fetch category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetServiceByID returns a service within a category.
func (h *ServicesHandler) GetServiceByID(c *gin.Context) {
	service, err := h.Svc.GetCategoryService(c.Request.Context(), c.Param("categoryId"), c.Param("serviceId"))
	if err != nil {
		h.Logger.Error("failed to fetch service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if service == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, service)
}

// GetSalonServices lists every service a salon offers.
func (h *ServicesHandler) GetSalonServices(c *gin.Context) {
	services, err := h.Svc.GetSalonServices(c.Request.Context(), c.Param("salonId"))
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, services)
}
