package handlers

import (
	"net/http"

	"salonapi/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Svc    scheduling.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc scheduling.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// GetStaffBookings returns all bookings for a staff member, oldest date
// first. No bookings is an empty array, not an error.
func (h *BookingHandler) GetStaffBookings(c *gin.Context) {
	bookings, err := h.Svc.ListStaffBookings(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		respondSchedulingError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking creates a new booking after the conflict checks pass.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req scheduling.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateBookingStatus transitions a booking's status on both stored copies.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	err := h.Svc.UpdateBookingStatus(c.Request.Context(), c.Param("staffId"), c.Param("bookingId"), req.Status)
	if err != nil {
		respondSchedulingError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully"})
}
