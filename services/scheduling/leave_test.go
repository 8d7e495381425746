package scheduling

import (
	"context"
	"testing"

	"salonapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLeaveService(leaves *fakeLeaveRepo, parties *fakePartyRepo) *DefaultLeaveService {
	return &DefaultLeaveService{
		Repo:    leaves,
		Parties: parties,
		Ledger:  newLedger(&fakeBookingRepo{}, leaves),
		Locks:   NewStaffLocks(),
		Logger:  zap.NewNop(),
	}
}

func leaveParties() *fakePartyRepo {
	return &fakePartyRepo{
		staff: map[string]models.Staff{
			"s1": {ID: "s1", FirstName: "Amina", LastName: "Hassan", Role: models.RoleStaff},
			"r1": {ID: "r1", FirstName: "Joy", LastName: "Otieno", Role: models.RoleOther},
		},
		customers: map[string]models.Customer{},
	}
}

func TestCreateLeaveSuccess(t *testing.T) {
	leaves := &fakeLeaveRepo{}
	svc := newLeaveService(leaves, leaveParties())

	leave, err := svc.CreateLeave(context.Background(), CreateLeaveRequest{
		StaffID: "s1", StartDate: "2025-05-01", EndDate: "2025-05-03", Reason: "vacation",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, leave.ID)
	assert.Equal(t, models.LeaveStatusPending, leave.Status)
	assert.False(t, leave.CreatedAt.IsZero())
	assert.Len(t, leaves.leaves, 1)
}

func TestCreateLeaveValidation(t *testing.T) {
	svc := newLeaveService(&fakeLeaveRepo{}, leaveParties())
	ctx := context.Background()

	for _, req := range []CreateLeaveRequest{
		{StartDate: "2025-05-01", EndDate: "2025-05-03"},
		{StaffID: "s1", EndDate: "2025-05-03"},
		{StaffID: "s1", StartDate: "2025-05-01"},
	} {
		_, err := svc.CreateLeave(ctx, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestCreateLeaveNonStaffRole(t *testing.T) {
	leaves := &fakeLeaveRepo{}
	svc := newLeaveService(leaves, leaveParties())

	_, err := svc.CreateLeave(context.Background(), CreateLeaveRequest{
		StaffID: "r1", StartDate: "2025-05-01", EndDate: "2025-05-03",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, leaves.leaves, "no record written")
}

func TestCreateLeaveUnknownStaff(t *testing.T) {
	svc := newLeaveService(&fakeLeaveRepo{}, leaveParties())

	_, err := svc.CreateLeave(context.Background(), CreateLeaveRequest{
		StaffID: "ghost", StartDate: "2025-05-01", EndDate: "2025-05-03",
	})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "staff member", nfErr.Entity)
}

func TestCreateLeaveOverlapConflict(t *testing.T) {
	// A rejected leave on the same window still blocks: overlap checking for
	// leave creation ignores status.
	leaves := &fakeLeaveRepo{leaves: []models.Leave{{
		ID: "l1", StaffID: "s1", StartDate: "2025-05-02", EndDate: "2025-05-04",
		Status: models.LeaveStatusRejected,
	}}}
	svc := newLeaveService(leaves, leaveParties())

	_, err := svc.CreateLeave(context.Background(), CreateLeaveRequest{
		StaffID: "s1", StartDate: "2025-05-01", EndDate: "2025-05-02",
	})
	var cfErr *ConflictError
	assert.ErrorAs(t, err, &cfErr)
	assert.Len(t, leaves.leaves, 1)
}

func TestListStaffLeavesOrdered(t *testing.T) {
	leaves := &fakeLeaveRepo{leaves: []models.Leave{
		{ID: "l2", StaffID: "s1", StartDate: "2025-06-01", EndDate: "2025-06-02"},
		{ID: "l1", StaffID: "s1", StartDate: "2025-05-01", EndDate: "2025-05-03"},
	}}
	svc := newLeaveService(leaves, leaveParties())

	got, err := svc.ListStaffLeaves(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "l1", got[0].ID)
	assert.Equal(t, "l2", got[1].ID)
}

func TestUpdateLeaveStatus(t *testing.T) {
	leaves := &fakeLeaveRepo{leaves: []models.Leave{{
		ID: "l1", StaffID: "s1", StartDate: "2025-05-01", EndDate: "2025-05-03",
		Status: models.LeaveStatusPending,
	}}}
	svc := newLeaveService(leaves, leaveParties())
	ctx := context.Background()

	require.NoError(t, svc.UpdateLeaveStatus(ctx, "s1", "l1", models.LeaveStatusApproved))
	assert.Equal(t, models.LeaveStatusApproved, leaves.leaves[0].Status)

	err := svc.UpdateLeaveStatus(ctx, "s1", "l1", "archived")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, models.LeaveStatusApproved, leaves.leaves[0].Status)

	err = svc.UpdateLeaveStatus(ctx, "s1", "ghost", models.LeaveStatusRejected)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "leave", nfErr.Entity)
}
