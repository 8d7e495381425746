package models

import "time"

// Booking statuses. Any status may transition to any other; there is no
// enforced lifecycle graph.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ValidBookingStatus reports whether s is one of the accepted booking statuses.
func ValidBookingStatus(s string) bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled || s == BookingStatusCompleted
}

// Booking represents a scheduled appointment between a customer and a staff
// member. The authoritative copy lives in the staff-scoped bookings collection;
// a denormalized mirror with StaffName filled in is written under the customer.
// Date is "YYYY-MM-DD"; StartTime/EndTime are zero-padded 24-hour "HH:MM" so
// that lexicographic comparison matches temporal order.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	StaffID      string    `bson:"staff_id" json:"staffId"`
	CustomerID   string    `bson:"customer_id" json:"customerId"`
	ServiceID    string    `bson:"service_id" json:"serviceId"`
	Date         string    `bson:"date" json:"date"`
	StartTime    string    `bson:"start_time" json:"startTime"`
	EndTime      string    `bson:"end_time" json:"endTime"`
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes" json:"notes"`
	CustomerName string    `bson:"customer_name" json:"customerName"`
	StaffName    string    `bson:"staff_name,omitempty" json:"staffName,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// Overlaps reports whether the booking overlaps the candidate window on the
// same calendar date. Intervals are open: a booking ending exactly when the
// candidate starts (or vice versa) does not overlap.
func (b Booking) Overlaps(date, startTime, endTime string) bool {
	if b.Date != date {
		return false
	}
	return b.StartTime < endTime && b.EndTime > startTime
}
