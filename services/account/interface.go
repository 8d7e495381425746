package account

import (
	"context"

	"salonapi/models"

	"firebase.google.com/go/v4/auth"
)

// IdentityClient is the slice of the Firebase Auth client the account service
// uses. The provider owns credentials and verification; this service never
// sees a password after registration.
type IdentityClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}

// RegisterRequest carries a new customer registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// AccountService registers customers against the identity provider and reads
// their profiles back.
type AccountService interface {
	// Register creates the identity-provider user, then writes the customer
	// profile document under the returned subject id.
	Register(ctx context.Context, req RegisterRequest) (string, error)
	// GetCustomer returns (nil, nil) when no profile exists for the uid.
	GetCustomer(ctx context.Context, uid string) (*models.Customer, error)
}
