package catalogRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

type mapCache struct {
	entries map[string]string
	broken  bool
}

func (c *mapCache) GetString(_ context.Context, key string) (string, error) {
	if c.broken {
		return "", errors.New("cache unreachable")
	}
	v, ok := c.entries[key]
	if !ok {
		return "", utils.ErrCacheMiss
	}
	return v, nil
}

func (c *mapCache) SetString(_ context.Context, key, value string, _ time.Duration) error {
	if c.broken {
		return errors.New("cache unreachable")
	}
	c.entries[key] = value
	return nil
}

type countingServiceRepo struct {
	*MemoryServiceRepo
	listCalls int
}

func (r *countingServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	r.listCalls++
	return r.MemoryServiceRepo.ListActive(ctx)
}

func TestCachedListActive(t *testing.T) {
	inner := &countingServiceRepo{MemoryServiceRepo: NewMemoryServiceRepo(
		models.Service{ID: "svc-cut", Name: "Haircut", Price: 45, Active: true},
	)}
	cache := &mapCache{entries: make(map[string]string)}
	repo := NewCachedServiceRepo(inner, cache, time.Minute)
	ctx := context.Background()

	first, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(first) != 1 || first[0].ID != "svc-cut" {
		t.Fatalf("unexpected listing: %+v", first)
	}
	if inner.listCalls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.listCalls)
	}

	// Second read is served from the cache.
	second, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("cached ListActive failed: %v", err)
	}
	if len(second) != 1 || second[0].Name != "Haircut" {
		t.Fatalf("unexpected cached listing: %+v", second)
	}
	if inner.listCalls != 1 {
		t.Fatalf("cached read hit the inner store: %d calls", inner.listCalls)
	}
}

func TestCachedListActiveFallsThroughOnCacheFailure(t *testing.T) {
	inner := &countingServiceRepo{MemoryServiceRepo: NewMemoryServiceRepo(
		models.Service{ID: "svc-cut", Name: "Haircut", Price: 45, Active: true},
	)}
	repo := NewCachedServiceRepo(inner, &mapCache{broken: true}, time.Minute)

	services, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(services))
	}
	if inner.listCalls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.listCalls)
	}
}

func TestCachedGetByIDsBypassesCache(t *testing.T) {
	inner := NewMemoryServiceRepo(
		models.Service{ID: "svc-cut", Name: "Haircut", Price: 45, Active: true},
	)
	repo := NewCachedServiceRepo(inner, &mapCache{broken: true}, time.Minute)

	services, err := repo.GetByIDs(context.Background(), []string{"svc-cut"})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(services) != 1 || services[0].Price != 45 {
		t.Fatalf("unexpected services: %+v", services)
	}
	if _, err := repo.GetByIDs(context.Background(), []string{"svc-ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id error = %v, want ErrNotFound", err)
	}
}
