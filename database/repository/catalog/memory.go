package catalogRepo

import (
	"context"
	"sort"
	"sync"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// MemoryServiceRepo is an in-process ServiceRepository for tests and
// database-less runs.
type MemoryServiceRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Service
}

// NewMemoryServiceRepo constructs the catalog with the given services.
func NewMemoryServiceRepo(services ...models.Service) *MemoryServiceRepo {
	repo := &MemoryServiceRepo{byID: make(map[string]models.Service)}
	for _, s := range services {
		repo.byID[s.ID] = s
	}
	return repo
}

func (repo *MemoryServiceRepo) GetByIDs(_ context.Context, ids []string) ([]models.Service, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var services []models.Service
	for _, id := range ids {
		s, ok := repo.byID[id]
		if !ok {
			return nil, ErrNotFound
		}
		services = append(services, s)
	}
	return services, nil
}

func (repo *MemoryServiceRepo) ListActive(_ context.Context) ([]models.Service, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var services []models.Service
	for _, s := range repo.byID {
		if s.Active {
			services = append(services, s)
		}
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}
