package partyRepo

import (
	"context"
	"fmt"
	"time"

	"salonapi/database"
	"salonapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPartyRepo implements PartyRepository using MongoDB.
type MongoPartyRepo struct {
	staff     *mongo.Collection
	customers *mongo.Collection
}

// NewMongoPartyRepo creates a new PartyRepository backed by MongoDB.
func NewMongoPartyRepo() PartyRepository {
	db := database.DB()
	repo := &MongoPartyRepo{
		staff:     db.Collection("users"),
		customers: db.Collection("customers"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create party indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoPartyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.staff.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "role", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = r.customers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("customers indexes: %w", err)
	}
	return nil
}

// GetStaffByID retrieves a staff document by its unique ID.
func (r *MongoPartyRepo) GetStaffByID(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.staff.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &staff, nil
}

// ListStaffBySalon retrieves all staff-role members of a salon.
func (r *MongoPartyRepo) ListStaffBySalon(ctx context.Context, salonID string) ([]models.Staff, error) {
	filter := bson.M{"salon_id": salonID, "role": models.RoleStaff}
	cursor, err := r.staff.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff for salon %s: %w", salonID, err)
	}
	return staff, nil
}

// GetCustomerByID retrieves a customer document by its unique ID.
func (r *MongoPartyRepo) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.customers.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &customer, nil
}

// CreateCustomer inserts a new customer document.
func (r *MongoPartyRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.CreatedAt = time.Now()
	if _, err := r.customers.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}
