package catalogRepo

import (
	"context"
	"errors"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// ErrNotFound is returned when a service id is not in the catalog.
var ErrNotFound = errors.New("service not found")

// ServiceRepository is the salon service catalog.
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]models.Service, error)
	ListActive(ctx context.Context) ([]models.Service, error)
}
