package scheduling

import (
	"context"
	"errors"
	"testing"

	"salonapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingService(bookings *fakeBookingRepo, leaves *fakeLeaveRepo, parties *fakePartyRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:    bookings,
		Parties: parties,
		Ledger:  newLedger(bookings, leaves),
		Locks:   NewStaffLocks(),
		Logger:  zap.NewNop(),
	}
}

func testParties() *fakePartyRepo {
	return &fakePartyRepo{
		staff: map[string]models.Staff{
			"s1": {ID: "s1", FirstName: "Amina", LastName: "Hassan", Role: models.RoleStaff, SalonID: "salon1"},
		},
		customers: map[string]models.Customer{
			"c1": {ID: "c1", FirstName: "Grace", LastName: "Wanjiru"},
		},
	}
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		StaffID: "s1", CustomerID: "c1", ServiceID: "svc1",
		Date: "2025-04-15", StartTime: "14:00", EndTime: "15:00",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newBookingService(bookings, &fakeLeaveRepo{}, testParties())

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "Grace Wanjiru", booking.CustomerName)
	assert.False(t, booking.CreatedAt.IsZero())

	// Both copies written under the same id; mirror carries the staff name.
	require.Len(t, bookings.staffSide, 1)
	require.Len(t, bookings.customerSide, 1)
	assert.Equal(t, bookings.staffSide[0].ID, bookings.customerSide[0].ID)
	assert.Equal(t, "Amina Hassan", bookings.customerSide[0].StaffName)
	assert.Equal(t, bookings.staffSide[0].Status, bookings.customerSide[0].Status)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newBookingService(&fakeBookingRepo{}, &fakeLeaveRepo{}, testParties())
	ctx := context.Background()

	mutations := []func(*CreateBookingRequest){
		func(r *CreateBookingRequest) { r.StaffID = "" },
		func(r *CreateBookingRequest) { r.CustomerID = "" },
		func(r *CreateBookingRequest) { r.ServiceID = "" },
		func(r *CreateBookingRequest) { r.Date = "" },
		func(r *CreateBookingRequest) { r.StartTime = "" },
		func(r *CreateBookingRequest) { r.EndTime = "" },
	}
	for _, mutate := range mutations {
		req := validRequest()
		mutate(&req)
		_, err := svc.CreateBooking(ctx, req)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestCreateBookingUnknownParties(t *testing.T) {
	svc := newBookingService(&fakeBookingRepo{}, &fakeLeaveRepo{}, testParties())
	ctx := context.Background()

	req := validRequest()
	req.StaffID = "ghost"
	_, err := svc.CreateBooking(ctx, req)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "staff member", nfErr.Entity)

	req = validRequest()
	req.CustomerID = "ghost"
	_, err = svc.CreateBooking(ctx, req)
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "customer", nfErr.Entity)
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	// Existing confirmed booking 14:00-15:00; candidate 14:30-15:30 overlaps.
	bookings := &fakeBookingRepo{staffSide: []models.Booking{{
		ID: "b1", StaffID: "s1", CustomerID: "c1", Date: "2025-04-15",
		StartTime: "14:00", EndTime: "15:00", Status: models.BookingStatusConfirmed,
	}}}
	svc := newBookingService(bookings, &fakeLeaveRepo{}, testParties())

	req := validRequest()
	req.StartTime, req.EndTime = "14:30", "15:30"
	_, err := svc.CreateBooking(context.Background(), req)
	var cfErr *ConflictError
	assert.ErrorAs(t, err, &cfErr)
	assert.Len(t, bookings.staffSide, 1, "no write on conflict")
}

func TestCreateBookingBackToBack(t *testing.T) {
	// Existing 14:00-15:00; candidate 15:00-16:00 shares a boundary only.
	bookings := &fakeBookingRepo{staffSide: []models.Booking{{
		ID: "b1", StaffID: "s1", CustomerID: "c1", Date: "2025-04-15",
		StartTime: "14:00", EndTime: "15:00", Status: models.BookingStatusConfirmed,
	}}}
	svc := newBookingService(bookings, &fakeLeaveRepo{}, testParties())

	req := validRequest()
	req.StartTime, req.EndTime = "15:00", "16:00"
	_, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, bookings.staffSide, 2)
}

func TestCreateBookingDuringLeave(t *testing.T) {
	leaves := &fakeLeaveRepo{leaves: []models.Leave{{
		ID: "l1", StaffID: "s1", StartDate: "2025-04-20", EndDate: "2025-04-22",
		Status: models.LeaveStatusApproved,
	}}}
	svc := newBookingService(&fakeBookingRepo{}, leaves, testParties())

	req := validRequest()
	req.Date = "2025-04-21"
	_, err := svc.CreateBooking(context.Background(), req)
	var cfErr *ConflictError
	assert.ErrorAs(t, err, &cfErr)
}

func TestCreateBookingRejectedLeaveDoesNotBlock(t *testing.T) {
	leaves := &fakeLeaveRepo{leaves: []models.Leave{{
		ID: "l1", StaffID: "s1", StartDate: "2025-04-20", EndDate: "2025-04-22",
		Status: models.LeaveStatusRejected,
	}}}
	svc := newBookingService(&fakeBookingRepo{}, leaves, testParties())

	req := validRequest()
	req.Date = "2025-04-21"
	_, err := svc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBookingStoreFailure(t *testing.T) {
	boom := errors.New("store down")
	svc := newBookingService(&fakeBookingRepo{failWith: boom}, &fakeLeaveRepo{}, testParties())

	_, err := svc.CreateBooking(context.Background(), validRequest())
	var stErr *StoreError
	require.ErrorAs(t, err, &stErr)
	assert.ErrorIs(t, err, boom)
}

func TestListStaffBookings(t *testing.T) {
	bookings := &fakeBookingRepo{staffSide: []models.Booking{
		{ID: "b2", StaffID: "s1", Date: "2025-04-20", StartTime: "10:00", EndTime: "11:00"},
		{ID: "b1", StaffID: "s1", Date: "2025-04-15", StartTime: "14:00", EndTime: "15:00"},
		{ID: "b3", StaffID: "other", Date: "2025-04-10", StartTime: "09:00", EndTime: "10:00"},
	}}
	svc := newBookingService(bookings, &fakeLeaveRepo{}, testParties())
	ctx := context.Background()

	got, err := svc.ListStaffBookings(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b2", got[1].ID)

	// Re-listing without mutation returns the identical sequence.
	again, err := svc.ListStaffBookings(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestListStaffBookingsEmpty(t *testing.T) {
	svc := newBookingService(&fakeBookingRepo{}, &fakeLeaveRepo{}, testParties())

	got, err := svc.ListStaffBookings(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdateBookingStatus(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newBookingService(bookings, &fakeLeaveRepo{}, testParties())
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateBookingStatus(ctx, "s1", created.ID, models.BookingStatusCancelled))

	// Dual-write agreement: both copies carry the new status.
	assert.Equal(t, models.BookingStatusCancelled, bookings.staffSide[0].Status)
	assert.Equal(t, models.BookingStatusCancelled, bookings.customerSide[0].Status)

	// Permissive lifecycle: cancelled may move back to confirmed.
	require.NoError(t, svc.UpdateBookingStatus(ctx, "s1", created.ID, models.BookingStatusConfirmed))
	assert.Equal(t, models.BookingStatusConfirmed, bookings.staffSide[0].Status)
}

func TestUpdateBookingStatusInvalid(t *testing.T) {
	bookings := &fakeBookingRepo{staffSide: []models.Booking{{
		ID: "b1", StaffID: "s1", CustomerID: "c1", Status: models.BookingStatusConfirmed,
	}}}
	svc := newBookingService(bookings, &fakeLeaveRepo{}, testParties())

	err := svc.UpdateBookingStatus(context.Background(), "s1", "b1", "archived")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, models.BookingStatusConfirmed, bookings.staffSide[0].Status, "no state change")
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	svc := newBookingService(&fakeBookingRepo{}, &fakeLeaveRepo{}, testParties())

	err := svc.UpdateBookingStatus(context.Background(), "s1", "ghost", models.BookingStatusCancelled)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "booking", nfErr.Entity)
}
