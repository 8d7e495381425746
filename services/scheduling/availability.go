package scheduling

import (
	"context"

	scheduleRepo "salonapi/database/repository/schedule"
)

// AvailabilityLedger answers whether a candidate time window may be booked
// for a staff member. It is read-only; store errors propagate to the caller.
type AvailabilityLedger struct {
	Bookings scheduleRepo.BookingRepository
	Leaves   scheduleRepo.LeaveRepository
}

// HasBookingConflict reports whether any existing booking for the staff
// member on the exact calendar date overlaps the candidate window. Intervals
// are open: a booking ending at the candidate's start (or starting at its
// end) is back-to-back, not a conflict. Times compare lexicographically, so
// callers must supply zero-padded 24-hour "HH:MM" values. Bookings on other
// dates never conflict; cross-midnight windows are not supported.
func (l *AvailabilityLedger) HasBookingConflict(ctx context.Context, staffID, date, startTime, endTime string) (bool, error) {
	bookings, err := l.Bookings.ListByStaffDate(ctx, staffID, date)
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if b.Overlaps(date, startTime, endTime) {
			return true, nil
		}
	}
	return false, nil
}

// HasLeaveOverlap reports whether any existing leave for the staff member
// intersects the candidate date range. Date ranges are closed intervals, so
// a single shared day counts as overlapping. When statuses is nil every leave
// blocks regardless of status, which matches the historical behavior of leave
// creation; pass an explicit set to restrict which statuses count.
func (l *AvailabilityLedger) HasLeaveOverlap(ctx context.Context, staffID, startDate, endDate string, statuses []string) (bool, error) {
	leaves, err := l.Leaves.ListByStaff(ctx, staffID)
	if err != nil {
		return false, err
	}

	var blocking map[string]bool
	if statuses != nil {
		blocking = make(map[string]bool, len(statuses))
		for _, s := range statuses {
			blocking[s] = true
		}
	}

	for _, leave := range leaves {
		if blocking != nil && !blocking[leave.Status] {
			continue
		}
		if leave.Overlaps(startDate, endDate) {
			return true, nil
		}
	}
	return false, nil
}
