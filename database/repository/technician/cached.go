package technicianRepo

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

const techniciansCacheKey = "catalog:technicians"

// CachedTechnicianRepo is a read-through cache over a TechnicianRepository,
// mirroring the catalog one: the directory listing is cached, GetByID always
// hits the inner store so availability checks at booking time stay fresh.
type CachedTechnicianRepo struct {
	Inner TechnicianRepository
	Cache utils.StringCache
	TTL   time.Duration
}

// NewCachedTechnicianRepo wraps inner with a listing cache of the given TTL.
func NewCachedTechnicianRepo(inner TechnicianRepository, cache utils.StringCache, ttl time.Duration) *CachedTechnicianRepo {
	return &CachedTechnicianRepo{Inner: inner, Cache: cache, TTL: ttl}
}

func (repo *CachedTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	return repo.Inner.GetByID(ctx, id)
}

func (repo *CachedTechnicianRepo) ListAvailable(ctx context.Context) ([]models.Technician, error) {
	if raw, err := repo.Cache.GetString(ctx, techniciansCacheKey); err == nil {
		var techs []models.Technician
		if err := json.Unmarshal([]byte(raw), &techs); err == nil {
			return techs, nil
		}
	}

	techs, err := repo.Inner.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(techs); err == nil {
		if err := repo.Cache.SetString(ctx, techniciansCacheKey, string(raw), repo.TTL); err != nil {
			utils.GetLogger().Warn("failed to cache technician listing", zap.Error(err))
		}
	}
	return techs, nil
}
