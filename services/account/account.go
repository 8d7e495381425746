package account

import (
	"context"
	"fmt"

	partyRepo "salonapi/database/repository/party"
	"salonapi/models"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// DefaultAccountService implements AccountService.
type DefaultAccountService struct {
	Identity IdentityClient
	Parties  partyRepo.PartyRepository
	Logger   *zap.Logger
}

// Register creates the Firebase Auth user and the customer profile document.
// The two writes are not atomic; an auth user without a profile simply reads
// back as "customer not found" until registration is retried.
func (s *DefaultAccountService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.FirstName + " " + req.LastName)

	record, err := s.Identity.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create identity user: %w", err)
	}

	customer := &models.Customer{
		ID:        record.UID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.Parties.CreateCustomer(ctx, customer); err != nil {
		s.Logger.Error("customer profile write failed after identity creation",
			zap.String("uid", record.UID), zap.Error(err))
		return "", err
	}
	return record.UID, nil
}

// GetCustomer reads a customer profile by subject id.
func (s *DefaultAccountService) GetCustomer(ctx context.Context, uid string) (*models.Customer, error) {
	return s.Parties.GetCustomerByID(ctx, uid)
}
