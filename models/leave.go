package models

import "time"

// Leave statuses.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// ValidLeaveStatus reports whether s is one of the accepted leave statuses.
func ValidLeaveStatus(s string) bool {
	return s == LeaveStatusPending || s == LeaveStatusApproved || s == LeaveStatusRejected
}

// Leave represents a staff member's unavailability window. StartDate and
// EndDate are inclusive "YYYY-MM-DD" calendar dates. Leaves are stored once,
// under the staff member only.
type Leave struct {
	ID        string    `bson:"id" json:"id"`
	StaffID   string    `bson:"staff_id" json:"staffId"`
	StartDate string    `bson:"start_date" json:"startDate"`
	EndDate   string    `bson:"end_date" json:"endDate"`
	Reason    string    `bson:"reason" json:"reason"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Overlaps reports whether the leave intersects the candidate date range.
// Date ranges are closed intervals, so a shared boundary day counts.
func (l Leave) Overlaps(startDate, endDate string) bool {
	return l.StartDate <= endDate && l.EndDate >= startDate
}
