package scheduling

import (
	"context"
	"errors"
	"time"

	partyRepo "salonapi/database/repository/party"
	scheduleRepo "salonapi/database/repository/schedule"
	"salonapi/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Leave statuses that block a new booking on an overlapping date. Rejected
// leave does not make a staff member unavailable.
var bookingBlockingLeaveStatuses = []string{models.LeaveStatusPending, models.LeaveStatusApproved}

// DefaultBookingService implements BookingService. Booking creation holds the
// staff member's lock across the conflict check and both writes; the staff
// copy is authoritative and the customer mirror is written second, so a crash
// between the two leaves the mirror stale until the reconciliation sweep
// repairs it.
type DefaultBookingService struct {
	Repo    scheduleRepo.BookingRepository
	Parties partyRepo.PartyRepository
	Ledger  *AvailabilityLedger
	Locks   *StaffLocks
	Logger  *zap.Logger
}

// ListStaffBookings returns a staff member's bookings ordered by date. An
// empty result is a valid response, not an error.
func (s *DefaultBookingService) ListStaffBookings(ctx context.Context, staffID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// CreateBooking validates the request, resolves both parties, checks the
// availability ledger, and writes the booking to the staff and customer
// collections under the same generated id.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	switch {
	case req.StaffID == "":
		return nil, NewValidationError("staff ID is required")
	case req.CustomerID == "":
		return nil, NewValidationError("customer ID is required")
	case req.ServiceID == "":
		return nil, NewValidationError("service ID is required")
	case req.Date == "":
		return nil, NewValidationError("date is required")
	case req.StartTime == "":
		return nil, NewValidationError("start time is required")
	case req.EndTime == "":
		return nil, NewValidationError("end time is required")
	}

	staff, err := s.Parties.GetStaffByID(ctx, req.StaffID)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if staff == nil {
		return nil, &NotFoundError{Entity: "staff member"}
	}

	customer, err := s.Parties.GetCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "customer"}
	}

	s.Locks.Lock(req.StaffID)
	defer s.Locks.Unlock(req.StaffID)

	conflict, err := s.Ledger.HasBookingConflict(ctx, req.StaffID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if conflict {
		return nil, &ConflictError{Message: "booking time conflicts with an existing booking"}
	}

	onLeave, err := s.Ledger.HasLeaveOverlap(ctx, req.StaffID, req.Date, req.Date, bookingBlockingLeaveStatuses)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if onLeave {
		return nil, &ConflictError{Message: "booking date falls within a scheduled leave period"}
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		StaffID:      req.StaffID,
		CustomerID:   req.CustomerID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       models.BookingStatusConfirmed,
		Notes:        req.Notes,
		CustomerName: customer.DisplayName(),
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.CreateStaffBooking(ctx, booking); err != nil {
		return nil, &StoreError{Err: err}
	}

	mirror := *booking
	mirror.StaffName = staff.DisplayName()
	if err := s.Repo.CreateCustomerBooking(ctx, &mirror); err != nil {
		s.Logger.Error("customer booking mirror write failed; sweep will repair",
			zap.String("bookingId", booking.ID),
			zap.String("staffId", booking.StaffID),
			zap.String("customerId", booking.CustomerID),
			zap.Error(err))
		return nil, &StoreError{Err: err}
	}

	return booking, nil
}

// UpdateBookingStatus moves a booking to any of the accepted statuses. There
// is no transition graph: any status may move to any other. The staff copy is
// updated first, then the mirror located via the booking's customer id.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, staffID, bookingID, status string) error {
	if !models.ValidBookingStatus(status) {
		return NewValidationError("invalid status: must be confirmed, cancelled, or completed")
	}

	booking, err := s.Repo.GetStaffBooking(ctx, staffID, bookingID)
	if err != nil {
		return &StoreError{Err: err}
	}
	if booking == nil {
		return &NotFoundError{Entity: "booking"}
	}

	if err := s.Repo.UpdateStaffBookingStatus(ctx, staffID, bookingID, status); err != nil {
		if errors.Is(err, scheduleRepo.ErrNoDocument) {
			return &NotFoundError{Entity: "booking"}
		}
		return &StoreError{Err: err}
	}

	if err := s.Repo.UpdateCustomerBookingStatus(ctx, booking.CustomerID, bookingID, status); err != nil {
		s.Logger.Error("customer booking mirror status update failed; sweep will repair",
			zap.String("bookingId", bookingID),
			zap.String("customerId", booking.CustomerID),
			zap.String("status", status),
			zap.Error(err))
		return &StoreError{Err: err}
	}
	return nil
}
