package handlers

import (
	"net/http"

	"salonapi/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeaveHandler exposes the staff leave endpoints.
type LeaveHandler struct {
	Svc    scheduling.LeaveService
	Logger *zap.Logger
}

// NewLeaveHandler creates a LeaveHandler.
func NewLeaveHandler(svc scheduling.LeaveService, logger *zap.Logger) *LeaveHandler {
	return &LeaveHandler{Svc: svc, Logger: logger}
}

// GetStaffLeaves returns all leaves for a staff member, earliest start first.
func (h *LeaveHandler) GetStaffLeaves(c *gin.Context) {
	leaves, err := h.Svc.ListStaffLeaves(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		respondSchedulingError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, leaves)
}

// CreateLeave creates a new pending leave request.
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	var req scheduling.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	leave, err := h.Svc.CreateLeave(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, leave)
}

// UpdateLeaveStatus transitions a leave's status.
func (h *LeaveHandler) UpdateLeaveStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	err := h.Svc.UpdateLeaveStatus(c.Request.Context(), c.Param("staffId"), c.Param("leaveId"), req.Status)
	if err != nil {
		respondSchedulingError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Leave status updated successfully"})
}
