package appointmentRepo

import (
	"context"
	"errors"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// ErrSlotTaken is returned when an insert or slot update would violate the
// one-active-appointment-per-slot constraint.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// Filter narrows appointment queries. Zero fields are ignored.
type Filter struct {
	TechnicianID string
	DateFrom     string // inclusive, "2006-01-02"
	DateTo       string // inclusive
	Statuses     []string
	ExcludeID    string
}

// AppointmentRepository is the persisted appointment store. Implementations
// must enforce atomically that at most one appointment with an active status
// (scheduled or confirmed) exists per (technician, date, time) tuple, and
// report violations as ErrSlotTaken.
type AppointmentRepository interface {
	Query(ctx context.Context, f Filter) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Insert(ctx context.Context, appt *models.Appointment) error
	// UpdateSlot moves an appointment to a new (technician, date, time) in
	// place, keeping its identity. The slot constraint applies with the
	// appointment itself excluded.
	UpdateSlot(ctx context.Context, id, technicianID, date, timeOfDay string) (*models.Appointment, error)
	// UpdateStatus moves the appointment from the expected current status to
	// the new one. A stale expectation (the status changed since the caller
	// read it) is reported as ErrNotFound; a write that would put a second
	// active appointment on an occupied slot is reported as ErrSlotTaken.
	UpdateStatus(ctx context.Context, id, from, to string) (*models.Appointment, error)
	Count(ctx context.Context) (int64, error)
}
