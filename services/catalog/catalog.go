package catalog

import (
	"context"
	"encoding/json"
	"time"

	catalogRepo "salonapi/database/repository/catalog"
	"salonapi/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const categoriesCacheKey = "catalog:categories"

// CatalogService exposes the read-only service catalog.
type CatalogService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*models.Category, error)
	GetCategoryService(ctx context.Context, categoryID, serviceID string) (*models.Service, error)
	GetSalonServices(ctx context.Context, salonID string) ([]models.Service, error)
}

// DefaultCatalogService implements CatalogService with a Redis cache in front
// of the category listing. Cache misses and cache failures both fall through
// to the store.
type DefaultCatalogService struct {
	Repo     catalogRepo.CatalogRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// GetCategories lists catalog categories, serving from cache when possible.
func (s *DefaultCatalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, categoriesCacheKey).Result(); err == nil {
			var categories []models.Category
			if err := json.Unmarshal([]byte(data), &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(categories); err == nil {
			if err := s.Cache.Set(ctx, categoriesCacheKey, data, s.CacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache categories", zap.Error(err))
			}
		}
	}
	return categories, nil
}

// GetCategory fetches one category.
func (s *DefaultCatalogService) GetCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	return s.Repo.GetCategoryByID(ctx, categoryID)
}

// GetCategoryService fetches a service within a category.
func (s *DefaultCatalogService) GetCategoryService(ctx context.Context, categoryID, serviceID string) (*models.Service, error) {
	return s.Repo.GetCategoryService(ctx, categoryID, serviceID)
}

// GetSalonServices lists every service a salon offers.
func (s *DefaultCatalogService) GetSalonServices(ctx context.Context, salonID string) ([]models.Service, error) {
	services, err := s.Repo.ListServicesBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}
