package models

import "time"

// Staff roles stored on documents in the users collection.
const (
	RoleStaff = "staff"
	RoleOther = "other"
)

// Staff represents a salon employee document from the users collection.
type Staff struct {
	ID             string    `bson:"id" json:"id"`
	FirstName      string    `bson:"first_name" json:"firstName"`
	LastName       string    `bson:"last_name" json:"lastName"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	Role           string    `bson:"role" json:"role,omitempty"`
	SalonID        string    `bson:"salon_id" json:"salonId,omitempty"`
	Specialization string    `bson:"specialization" json:"specialization"`
	Bio            string    `bson:"bio" json:"bio"`
	ImageURL       string    `bson:"image_url" json:"imageUrl"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt,omitempty"`
}

// PublicProfile strips fields that must not leave the API (role, timestamps).
func (s Staff) PublicProfile() StaffProfile {
	return StaffProfile{
		ID:             s.ID,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Email:          s.Email,
		Phone:          s.Phone,
		Specialization: s.Specialization,
		Bio:            s.Bio,
		ImageURL:       s.ImageURL,
		SalonID:        s.SalonID,
	}
}

// DisplayName is the denormalized name captured onto bookings at creation time.
func (s Staff) DisplayName() string {
	return s.FirstName + " " + s.LastName
}

// StaffProfile is the client-facing view of a staff member.
type StaffProfile struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	ImageURL       string `json:"imageUrl"`
	SalonID        string `json:"salonId,omitempty"`
}

// Customer represents a document from the customers collection.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"first_name" json:"firstName"`
	LastName  string    `bson:"last_name" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

func (c Customer) DisplayName() string {
	return c.FirstName + " " + c.LastName
}
