package catalogRepo

import (
	"context"
	"fmt"

	"salonapi/database"
	"salonapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB. Per-category
// services live in category_services keyed by category_id, mirroring the
// sub-collection layout of the document store.
type MongoCatalogRepo struct {
	categories       *mongo.Collection
	categoryServices *mongo.Collection
	services         *mongo.Collection
}

// NewMongoCatalogRepo creates a new CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &MongoCatalogRepo{
		categories:       db.Collection("category"),
		categoryServices: db.Collection("category_services"),
		services:         db.Collection("services"),
	}
}

// ListCategories returns every catalog category.
func (r *MongoCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID retrieves one category.
func (r *MongoCatalogRepo) GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := r.categories.FindOne(ctx, bson.M{"id": categoryID}).Decode(&category); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category %s: %w", categoryID, err)
	}
	return &category, nil
}

// GetCategoryService retrieves a service within a category.
func (r *MongoCatalogRepo) GetCategoryService(ctx context.Context, categoryID, serviceID string) (*models.Service, error) {
	var service models.Service
	filter := bson.M{"category_id": categoryID, "id": serviceID}
	if err := r.categoryServices.FindOne(ctx, filter).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %s in category %s: %w", serviceID, categoryID, err)
	}
	return &service, nil
}

// ListServicesBySalon returns every service offered by a salon.
func (r *MongoCatalogRepo) ListServicesBySalon(ctx context.Context, salonID string) ([]models.Service, error) {
	cursor, err := r.services.Find(ctx, bson.M{"salon_id": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to list services for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services for salon %s: %w", salonID, err)
	}
	return services, nil
}
