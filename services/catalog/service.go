package catalog

import (
	"context"
	"encoding/json"
	"time"

	catalogRepo "swiftmove/database/repository/catalog"
	"swiftmove/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKey = "priceItems"
const cacheTTL = 5 * time.Minute

// CatalogService serves the priced furniture/appliance catalog.
type CatalogService interface {
	ListItems(ctx context.Context) ([]models.PriceItem, error)
	UpsertItem(ctx context.Context, item *models.PriceItem) error
	DeleteItem(ctx context.Context, id string) error
}

// DefaultCatalogService implements CatalogService with a short Redis cache
// in front of Mongo. Cache failures degrade to a direct read.
type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

// ListItems returns the catalog, from cache when possible.
func (s *DefaultCatalogService) ListItems(ctx context.Context) ([]models.PriceItem, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var items []models.PriceItem
			if err := json.Unmarshal([]byte(data), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				s.Logger.Debug("failed to cache catalog", zap.Error(err))
			}
		}
	}
	return items, nil
}

// UpsertItem writes a catalog item and invalidates the cache.
func (s *DefaultCatalogService) UpsertItem(ctx context.Context, item *models.PriceItem) error {
	if err := s.Repo.Upsert(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteItem removes a catalog item and invalidates the cache.
func (s *DefaultCatalogService) DeleteItem(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultCatalogService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cacheKey).Err(); err != nil {
		s.Logger.Debug("failed to invalidate catalog cache", zap.Error(err))
	}
}
