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

// MongoLeaveRepo implements LeaveRepository using MongoDB.
type MongoLeaveRepo struct {
	leaves *mongo.Collection
}

// NewMongoLeaveRepo creates a new LeaveRepository backed by MongoDB.
func NewMongoLeaveRepo() LeaveRepository {
	repo := &MongoLeaveRepo{leaves: database.DB().Collection("leaves")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create leave indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLeaveRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.leaves.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "start_date", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("leaves indexes: %w", err)
	}
	return nil
}

// ListByStaff returns all leaves for a staff member ordered by start date ascending.
func (r *MongoLeaveRepo) ListByStaff(ctx context.Context, staffID string) ([]models.Leave, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cursor, err := r.leaves.Find(ctx, bson.M{"staff_id": staffID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves for staff %s: %w", staffID, err)
	}
	defer cursor.Close(ctx)

	var leaves []models.Leave
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("failed to decode leaves for staff %s: %w", staffID, err)
	}
	return leaves, nil
}

// GetByID retrieves a single leave record.
func (r *MongoLeaveRepo) GetByID(ctx context.Context, staffID, leaveID string) (*models.Leave, error) {
	var leave models.Leave
	filter := bson.M{"staff_id": staffID, "id": leaveID}
	if err := r.leaves.FindOne(ctx, filter).Decode(&leave); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch leave %s for staff %s: %w", leaveID, staffID, err)
	}
	return &leave, nil
}

// Create inserts a new leave document.
func (r *MongoLeaveRepo) Create(ctx context.Context, leave *models.Leave) error {
	if _, err := r.leaves.InsertOne(ctx, leave); err != nil {
		return fmt.Errorf("failed to create leave %s: %w", leave.ID, err)
	}
	return nil
}

// UpdateStatus sets the status on a leave record.
func (r *MongoLeaveRepo) UpdateStatus(ctx context.Context, staffID, leaveID, status string) error {
	filter := bson.M{"staff_id": staffID, "id": leaveID}
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.leaves.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update leave %s status: %w", leaveID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
