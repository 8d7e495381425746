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

// DefaultLeaveService implements LeaveService. Leave records live only under
// the staff member, so there is no mirror to keep in agreement.
type DefaultLeaveService struct {
	Repo    scheduleRepo.LeaveRepository
	Parties partyRepo.PartyRepository
	Ledger  *AvailabilityLedger
	Locks   *StaffLocks
	Logger  *zap.Logger
}

// ListStaffLeaves returns a staff member's leaves ordered by start date.
func (s *DefaultLeaveService) ListStaffLeaves(ctx context.Context, staffID string) ([]models.Leave, error) {
	leaves, err := s.Repo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if leaves == nil {
		leaves = []models.Leave{}
	}
	return leaves, nil
}

// CreateLeave validates the request, requires the party to carry the staff
// role, checks the ledger for overlapping leave of any status, and persists
// the record as pending. Overlap checking ignores leave status here: even a
// rejected leave blocks a new request for the same window.
func (s *DefaultLeaveService) CreateLeave(ctx context.Context, req CreateLeaveRequest) (*models.Leave, error) {
	switch {
	case req.StaffID == "":
		return nil, NewValidationError("staff ID is required")
	case req.StartDate == "":
		return nil, NewValidationError("start date is required")
	case req.EndDate == "":
		return nil, NewValidationError("end date is required")
	}

	staff, err := s.Parties.GetStaffByID(ctx, req.StaffID)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if staff == nil {
		return nil, &NotFoundError{Entity: "staff member"}
	}
	if staff.Role != models.RoleStaff {
		return nil, NewValidationError("user is not a staff member")
	}

	s.Locks.Lock(req.StaffID)
	defer s.Locks.Unlock(req.StaffID)

	overlap, err := s.Ledger.HasLeaveOverlap(ctx, req.StaffID, req.StartDate, req.EndDate, nil)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if overlap {
		return nil, &ConflictError{Message: "leave period overlaps with an existing leave"}
	}

	leave := &models.Leave{
		ID:        uuid.New().String(),
		StaffID:   req.StaffID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    models.LeaveStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, leave); err != nil {
		return nil, &StoreError{Err: err}
	}
	return leave, nil
}

// UpdateLeaveStatus moves a leave to any of the accepted statuses.
func (s *DefaultLeaveService) UpdateLeaveStatus(ctx context.Context, staffID, leaveID, status string) error {
	if !models.ValidLeaveStatus(status) {
		return NewValidationError("invalid status: must be pending, approved, or rejected")
	}

	leave, err := s.Repo.GetByID(ctx, staffID, leaveID)
	if err != nil {
		return &StoreError{Err: err}
	}
	if leave == nil {
		return &NotFoundError{Entity: "leave"}
	}

	if err := s.Repo.UpdateStatus(ctx, staffID, leaveID, status); err != nil {
		if errors.Is(err, scheduleRepo.ErrNoDocument) {
			return &NotFoundError{Entity: "leave"}
		}
		s.Logger.Error("leave status update failed",
			zap.String("leaveId", leaveID),
			zap.String("staffId", staffID),
			zap.Error(err))
		return &StoreError{Err: err}
	}
	return nil
}
