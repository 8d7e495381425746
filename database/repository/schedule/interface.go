package scheduleRepo

import (
	"context"
	"errors"

	"salonapi/models"
)

// ErrNoDocument is returned by update operations that matched nothing.
var ErrNoDocument = errors.New("document not found")

// BookingRepository provides access to the two booking collections. The
// staff-scoped collection is authoritative; the customer-scoped collection is
// a denormalized mirror carrying the staff name. Both copies of a booking
// share the same ID. There is no cross-collection transaction: callers own
// the ordering of the two writes.
type BookingRepository interface {
	// ListByStaff returns a staff member's bookings in ascending date order.
	ListByStaff(ctx context.Context, staffID string) ([]models.Booking, error)
	// ListByStaffDate returns a staff member's bookings on one calendar date.
	ListByStaffDate(ctx context.Context, staffID, date string) ([]models.Booking, error)
	// GetStaffBooking returns (nil, nil) when the booking does not exist.
	GetStaffBooking(ctx context.Context, staffID, bookingID string) (*models.Booking, error)
	GetCustomerBooking(ctx context.Context, customerID, bookingID string) (*models.Booking, error)

	CreateStaffBooking(ctx context.Context, booking *models.Booking) error
	CreateCustomerBooking(ctx context.Context, booking *models.Booking) error

	UpdateStaffBookingStatus(ctx context.Context, staffID, bookingID, status string) error
	UpdateCustomerBookingStatus(ctx context.Context, customerID, bookingID, status string) error

	// ListAllStaffBookings enumerates the authoritative collection; used by
	// the mirror reconciliation sweep.
	ListAllStaffBookings(ctx context.Context) ([]models.Booking, error)
}

// LeaveRepository provides access to the staff-scoped leaves collection.
// Leaves are stored once; there is no mirror.
type LeaveRepository interface {
	// ListByStaff returns a staff member's leaves in ascending start-date order.
	ListByStaff(ctx context.Context, staffID string) ([]models.Leave, error)
	// GetByID returns (nil, nil) when the leave does not exist.
	GetByID(ctx context.Context, staffID, leaveID string) (*models.Leave, error)
	Create(ctx context.Context, leave *models.Leave) error
	UpdateStatus(ctx context.Context, staffID, leaveID, status string) error
}
