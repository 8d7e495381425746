package partyRepo

import (
	"context"

	"salonapi/models"
)

// PartyRepository provides access to the two party collections: staff profiles
// in "users" and customer profiles in "customers". Lookups return (nil, nil)
// when the document does not exist so callers can distinguish absence from
// store failure.
type PartyRepository interface {
	GetStaffByID(ctx context.Context, id string) (*models.Staff, error)
	ListStaffBySalon(ctx context.Context, salonID string) ([]models.Staff, error)

	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
}
