package catalogRepo

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

const servicesCacheKey = "catalog:services"

// CachedServiceRepo is a read-through cache over a ServiceRepository. Only
// the ListActive catalog listing is cached (it backs the public catalog
// endpoint and changes rarely); GetByIDs always hits the inner store so
// bookings never price against stale data. Cache failures fall through to
// the inner store.
type CachedServiceRepo struct {
	Inner ServiceRepository
	Cache utils.StringCache
	TTL   time.Duration
}

// NewCachedServiceRepo wraps inner with a listing cache of the given TTL.
func NewCachedServiceRepo(inner ServiceRepository, cache utils.StringCache, ttl time.Duration) *CachedServiceRepo {
	return &CachedServiceRepo{Inner: inner, Cache: cache, TTL: ttl}
}

func (repo *CachedServiceRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	return repo.Inner.GetByIDs(ctx, ids)
}

func (repo *CachedServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	if raw, err := repo.Cache.GetString(ctx, servicesCacheKey); err == nil {
		var services []models.Service
		if err := json.Unmarshal([]byte(raw), &services); err == nil {
			return services, nil
		}
	}

	services, err := repo.Inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(services); err == nil {
		if err := repo.Cache.SetString(ctx, servicesCacheKey, string(raw), repo.TTL); err != nil {
			utils.GetLogger().Warn("failed to cache service listing", zap.Error(err))
		}
	}
	return services, nil
}
