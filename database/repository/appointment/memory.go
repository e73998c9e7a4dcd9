package appointmentRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// MemoryAppointmentRepo is an in-process AppointmentRepository. It enforces
// the same one-active-appointment-per-slot invariant as the Mongo store,
// atomically under a single mutex, which makes it suitable for tests and for
// running the service without a database.
type MemoryAppointmentRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Appointment
}

// NewMemoryAppointmentRepo constructs an empty in-memory store.
func NewMemoryAppointmentRepo() *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{byID: make(map[string]*models.Appointment)}
}

func (f Filter) matches(a *models.Appointment) bool {
	if f.TechnicianID != "" && a.TechnicianID != f.TechnicianID {
		return false
	}
	if f.DateFrom != "" && a.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && a.Date > f.DateTo {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if a.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.ExcludeID != "" && a.ID == f.ExcludeID {
		return false
	}
	return true
}

// slotHolder returns the active appointment occupying the given slot, if any.
// Caller must hold the mutex.
func (repo *MemoryAppointmentRepo) slotHolder(technicianID, date, timeOfDay string) *models.Appointment {
	for _, a := range repo.byID {
		if a.IsActive() && a.TechnicianID == technicianID && a.Date == date && a.Time == timeOfDay {
			return a
		}
	}
	return nil
}

func (repo *MemoryAppointmentRepo) Query(_ context.Context, f Filter) ([]models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var out []models.Appointment
	for _, a := range repo.byID {
		if f.matches(a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (repo *MemoryAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	a, ok := repo.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (repo *MemoryAppointmentRepo) Insert(_ context.Context, appt *models.Appointment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if appt.IsActive() {
		if holder := repo.slotHolder(appt.TechnicianID, appt.Date, appt.Time); holder != nil {
			return ErrSlotTaken
		}
	}
	cp := *appt
	repo.byID[appt.ID] = &cp
	return nil
}

func (repo *MemoryAppointmentRepo) UpdateSlot(_ context.Context, id, technicianID, date, timeOfDay string) (*models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	a, ok := repo.byID[id]
	if !ok || !a.IsActive() {
		return nil, ErrNotFound
	}
	// An appointment never conflicts with itself.
	if holder := repo.slotHolder(technicianID, date, timeOfDay); holder != nil && holder.ID != id {
		return nil, ErrSlotTaken
	}
	a.TechnicianID = technicianID
	a.Date = date
	a.Time = timeOfDay
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (repo *MemoryAppointmentRepo) UpdateStatus(_ context.Context, id, from, to string) (*models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	a, ok := repo.byID[id]
	if !ok || a.Status != from {
		return nil, ErrNotFound
	}
	// A write that would re-activate the appointment must not land on a slot
	// someone else booked in the meantime.
	if models.IsActiveStatus(to) && !a.IsActive() {
		if holder := repo.slotHolder(a.TechnicianID, a.Date, a.Time); holder != nil && holder.ID != id {
			return nil, ErrSlotTaken
		}
	}
	a.Status = to
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (repo *MemoryAppointmentRepo) Count(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return int64(len(repo.byID)), nil
}
