package catalogRepo

import (
	"context"

	"salonapi/models"
)

// CatalogRepository provides read access to the service catalog: the category
// collection, the per-category services, and the flat per-salon service list.
// Lookups return (nil, nil) when the document does not exist.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error)
	GetCategoryService(ctx context.Context, categoryID, serviceID string) (*models.Service, error)
	ListServicesBySalon(ctx context.Context, salonID string) ([]models.Service, error)
}
