package technicianRepo

import (
	"context"
	"sort"
	"sync"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// MemoryTechnicianRepo is an in-process TechnicianRepository for tests and
// database-less runs.
type MemoryTechnicianRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Technician
}

// NewMemoryTechnicianRepo constructs the store with the given technicians.
func NewMemoryTechnicianRepo(techs ...models.Technician) *MemoryTechnicianRepo {
	repo := &MemoryTechnicianRepo{byID: make(map[string]models.Technician)}
	for _, t := range techs {
		repo.byID[t.ID] = t
	}
	return repo
}

func (repo *MemoryTechnicianRepo) GetByID(_ context.Context, id string) (*models.Technician, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	t, ok := repo.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (repo *MemoryTechnicianRepo) ListAvailable(_ context.Context) ([]models.Technician, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var techs []models.Technician
	for _, t := range repo.byID {
		if t.IsAvailable {
			techs = append(techs, t)
		}
	}
	sort.Slice(techs, func(i, j int) bool { return techs[i].Name < techs[j].Name })
	return techs, nil
}
