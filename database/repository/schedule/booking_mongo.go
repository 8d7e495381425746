package scheduleRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB. The staff and
// customer views are separate collections keyed by the owning party id, which
// mirrors the sub-collection layout of the document store.
type MongoBookingRepo struct {
	staffBookings    *mongo.Collection
	customerBookings *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		staffBookings:    db.Collection("staff_bookings"),
		customerBookings: db.Collection("customer_bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.staffBookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "date", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("staff_bookings indexes: %w", err)
	}

	_, err = r.customerBookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("customer_bookings indexes: %w", err)
	}
	return nil
}

// ListByStaff returns all bookings for a staff member ordered by date ascending.
func (r *MongoBookingRepo) ListByStaff(ctx context.Context, staffID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.staffBookings.Find(ctx, bson.M{"staff_id": staffID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for staff %s: %w", staffID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for staff %s: %w", staffID, err)
	}
	return bookings, nil
}

// ListByStaffDate returns a staff member's bookings on the given calendar date.
func (r *MongoBookingRepo) ListByStaffDate(ctx context.Context, staffID, date string) ([]models.Booking, error) {
	cursor, err := r.staffBookings.Find(ctx, bson.M{"staff_id": staffID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for staff %s on %s: %w", staffID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for staff %s on %s: %w", staffID, date, err)
	}
	return bookings, nil
}

// GetStaffBooking retrieves the authoritative copy of a booking.
func (r *MongoBookingRepo) GetStaffBooking(ctx context.Context, staffID, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	filter := bson.M{"staff_id": staffID, "id": bookingID}
	if err := r.staffBookings.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s for staff %s: %w", bookingID, staffID, err)
	}
	return &booking, nil
}

// GetCustomerBooking retrieves the denormalized mirror copy of a booking.
func (r *MongoBookingRepo) GetCustomerBooking(ctx context.Context, customerID, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	filter := bson.M{"customer_id": customerID, "id": bookingID}
	if err := r.customerBookings.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s for customer %s: %w", bookingID, customerID, err)
	}
	return &booking, nil
}

// CreateStaffBooking inserts the authoritative booking copy.
func (r *MongoBookingRepo) CreateStaffBooking(ctx context.Context, booking *models.Booking) error {
	if _, err := r.staffBookings.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create staff booking %s: %w", booking.ID, err)
	}
	return nil
}

// CreateCustomerBooking inserts the denormalized mirror copy.
func (r *MongoBookingRepo) CreateCustomerBooking(ctx context.Context, booking *models.Booking) error {
	if _, err := r.customerBookings.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create customer booking %s: %w", booking.ID, err)
	}
	return nil
}

// UpdateStaffBookingStatus sets the status on the authoritative copy.
func (r *MongoBookingRepo) UpdateStaffBookingStatus(ctx context.Context, staffID, bookingID, status string) error {
	filter := bson.M{"staff_id": staffID, "id": bookingID}
	return r.updateStatus(ctx, r.staffBookings, filter, status)
}

// UpdateCustomerBookingStatus sets the status on the mirror copy.
func (r *MongoBookingRepo) UpdateCustomerBookingStatus(ctx context.Context, customerID, bookingID, status string) error {
	filter := bson.M{"customer_id": customerID, "id": bookingID}
	return r.updateStatus(ctx, r.customerBookings, filter, status)
}

func (r *MongoBookingRepo) updateStatus(ctx context.Context, coll *mongo.Collection, filter bson.M, status string) error {
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

// ListAllStaffBookings enumerates every authoritative booking document.
func (r *MongoBookingRepo) ListAllStaffBookings(ctx context.Context) ([]models.Booking, error) {
	cursor, err := r.staffBookings.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode staff bookings: %w", err)
	}
	return bookings, nil
}
