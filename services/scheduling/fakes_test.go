package scheduling

import (
	"context"
	"sort"

	scheduleRepo "salonapi/database/repository/schedule"
	"salonapi/models"
)

// fakeBookingRepo is an in-memory BookingRepository holding the staff-side
// and customer-side collections separately, like the real store.
type fakeBookingRepo struct {
	staffSide    []models.Booking
	customerSide []models.Booking
	failWith     error
}

func (f *fakeBookingRepo) ListByStaff(_ context.Context, staffID string) ([]models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Booking
	for _, b := range f.staffSide {
		if b.StaffID == staffID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeBookingRepo) ListByStaffDate(_ context.Context, staffID, date string) ([]models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Booking
	for _, b := range f.staffSide {
		if b.StaffID == staffID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetStaffBooking(_ context.Context, staffID, bookingID string) (*models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.staffSide {
		if f.staffSide[i].StaffID == staffID && f.staffSide[i].ID == bookingID {
			b := f.staffSide[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetCustomerBooking(_ context.Context, customerID, bookingID string) (*models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.customerSide {
		if f.customerSide[i].CustomerID == customerID && f.customerSide[i].ID == bookingID {
			b := f.customerSide[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) CreateStaffBooking(_ context.Context, booking *models.Booking) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.staffSide = append(f.staffSide, *booking)
	return nil
}

func (f *fakeBookingRepo) CreateCustomerBooking(_ context.Context, booking *models.Booking) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.customerSide = append(f.customerSide, *booking)
	return nil
}

func (f *fakeBookingRepo) UpdateStaffBookingStatus(_ context.Context, staffID, bookingID, status string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.staffSide {
		if f.staffSide[i].StaffID == staffID && f.staffSide[i].ID == bookingID {
			f.staffSide[i].Status = status
			return nil
		}
	}
	return scheduleRepo.ErrNoDocument
}

func (f *fakeBookingRepo) UpdateCustomerBookingStatus(_ context.Context, customerID, bookingID, status string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.customerSide {
		if f.customerSide[i].CustomerID == customerID && f.customerSide[i].ID == bookingID {
			f.customerSide[i].Status = status
			return nil
		}
	}
	return scheduleRepo.ErrNoDocument
}

func (f *fakeBookingRepo) ListAllStaffBookings(_ context.Context) ([]models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]models.Booking(nil), f.staffSide...), nil
}

// fakeLeaveRepo is an in-memory LeaveRepository.
type fakeLeaveRepo struct {
	leaves   []models.Leave
	failWith error
}

func (f *fakeLeaveRepo) ListByStaff(_ context.Context, staffID string) ([]models.Leave, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Leave
	for _, l := range f.leaves {
		if l.StaffID == staffID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, staffID, leaveID string) (*models.Leave, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.leaves {
		if f.leaves[i].StaffID == staffID && f.leaves[i].ID == leaveID {
			l := f.leaves[i]
			return &l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveRepo) Create(_ context.Context, leave *models.Leave) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.leaves = append(f.leaves, *leave)
	return nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, staffID, leaveID, status string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.leaves {
		if f.leaves[i].StaffID == staffID && f.leaves[i].ID == leaveID {
			f.leaves[i].Status = status
			return nil
		}
	}
	return scheduleRepo.ErrNoDocument
}

// fakePartyRepo is an in-memory PartyRepository.
type fakePartyRepo struct {
	staff     map[string]models.Staff
	customers map[string]models.Customer
	failWith  error
}

func (f *fakePartyRepo) GetStaffByID(_ context.Context, id string) (*models.Staff, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if s, ok := f.staff[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakePartyRepo) ListStaffBySalon(_ context.Context, salonID string) ([]models.Staff, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Staff
	for _, s := range f.staff {
		if s.SalonID == salonID && s.Role == models.RoleStaff {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakePartyRepo) GetCustomerByID(_ context.Context, id string) (*models.Customer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if c, ok := f.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakePartyRepo) CreateCustomer(_ context.Context, customer *models.Customer) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.customers[customer.ID] = *customer
	return nil
}
