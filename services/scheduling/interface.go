package scheduling

import (
	"context"

	"salonapi/models"
)

// CreateBookingRequest carries the caller-supplied fields for a new booking.
type CreateBookingRequest struct {
	StaffID    string `json:"staffId"`
	CustomerID string `json:"customerId"`
	ServiceID  string `json:"serviceId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Notes      string `json:"notes"`
}

// CreateLeaveRequest carries the caller-supplied fields for a new leave.
type CreateLeaveRequest struct {
	StaffID   string `json:"staffId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// BookingService manages booking creation, listing, and status transitions.
type BookingService interface {
	ListStaffBookings(ctx context.Context, staffID string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, staffID, bookingID, status string) error
}

// LeaveService manages leave creation, listing, and status transitions.
type LeaveService interface {
	ListStaffLeaves(ctx context.Context, staffID string) ([]models.Leave, error)
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (*models.Leave, error)
	UpdateLeaveStatus(ctx context.Context, staffID, leaveID, status string) error
}
