package technicianRepo

import (
	"context"
	"errors"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// ErrNotFound is returned when no technician matches the given id.
var ErrNotFound = errors.New("technician not found")

// TechnicianRepository is the staff directory consumed by the booking core.
type TechnicianRepository interface {
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	// ListAvailable returns only technicians offered for new bookings.
	ListAvailable(ctx context.Context) ([]models.Technician, error)
}
