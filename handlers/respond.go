package handlers

import (
	"errors"
	"net/http"

	"salonapi/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondSchedulingError translates the scheduling error taxonomy to HTTP:
// validation 400, not-found 404, conflict 409, anything else 500. Store
// failures are logged with their cause and surfaced opaquely.
func respondSchedulingError(c *gin.Context, logger *zap.Logger, err error) {
	var vErr *scheduling.ValidationError
	var nfErr *scheduling.NotFoundError
	var cfErr *scheduling.ConflictError
	var stErr *scheduling.StoreError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
	case errors.As(err, &cfErr):
		c.JSON(http.StatusConflict, gin.H{"error": cfErr.Message})
	case errors.As(err, &stErr):
		logger.Error("store failure", zap.Error(stErr.Err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		logger.Error("unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
