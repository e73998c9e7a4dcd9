package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

func newAppt(id, technicianID, date, timeOfDay, status string) *models.Appointment {
	return &models.Appointment{
		ID:           id,
		TechnicianID: technicianID,
		Date:         date,
		Time:         timeOfDay,
		Status:       status,
		CustomerID:   "cust-1",
	}
}

func TestMemoryInsertRejectsHeldSlot(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, newAppt("a1", "tech-1", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	err := repo.Insert(ctx, newAppt("a2", "tech-1", "2025-05-12", "10:00", models.StatusScheduled))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("second insert error = %v, want ErrSlotTaken", err)
	}

	// Same time but different technician or date is fine.
	if err := repo.Insert(ctx, newAppt("a3", "tech-2", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Errorf("different technician insert failed: %v", err)
	}
	if err := repo.Insert(ctx, newAppt("a4", "tech-1", "2025-05-13", "10:00", models.StatusScheduled)); err != nil {
		t.Errorf("different date insert failed: %v", err)
	}
}

func TestMemoryInsertIgnoresTerminalHolders(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, newAppt("a1", "tech-1", "2025-05-12", "10:00", models.StatusCancelled)); err != nil {
		t.Fatalf("terminal insert failed: %v", err)
	}
	if err := repo.Insert(ctx, newAppt("a2", "tech-1", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Fatalf("insert over cancelled holder failed: %v", err)
	}
}

func TestMemoryConcurrentInsertSingleWinner(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a := newAppt(fmt.Sprintf("a%d", i), "tech-1", "2025-05-12", "10:00", models.StatusScheduled)
			errs[i] = repo.Insert(ctx, a)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotTaken):
		default:
			t.Fatalf("unexpected insert error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning insert, got %d", wins)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", count)
	}
}

func TestMemoryUpdateSlotExcludesSelf(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, newAppt("a1", "tech-1", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// Moving onto its own slot must not conflict with itself.
	updated, err := repo.UpdateSlot(ctx, "a1", "tech-1", "2025-05-12", "10:00")
	if err != nil {
		t.Fatalf("self-move failed: %v", err)
	}
	if updated.Time != "10:00" {
		t.Errorf("updated time = %q, want 10:00", updated.Time)
	}

	if err := repo.Insert(ctx, newAppt("a2", "tech-1", "2025-05-12", "11:00", models.StatusScheduled)); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := repo.UpdateSlot(ctx, "a1", "tech-1", "2025-05-12", "11:00"); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("move onto held slot error = %v, want ErrSlotTaken", err)
	}
}

func TestMemoryUpdateSlotInactiveOrMissing(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	if _, err := repo.UpdateSlot(ctx, "ghost", "tech-1", "2025-05-12", "10:00"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id error = %v, want ErrNotFound", err)
	}

	if err := repo.Insert(ctx, newAppt("a1", "tech-1", "2025-05-12", "10:00", models.StatusCancelled)); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := repo.UpdateSlot(ctx, "a1", "tech-1", "2025-05-12", "11:00"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive appointment error = %v, want ErrNotFound", err)
	}
}

func TestMemoryQueryFilter(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	seed := []*models.Appointment{
		newAppt("a1", "tech-1", "2025-05-12", "10:00", models.StatusScheduled),
		newAppt("a2", "tech-1", "2025-05-12", "11:00", models.StatusCancelled),
		newAppt("a3", "tech-1", "2025-05-13", "09:00", models.StatusConfirmed),
		newAppt("a4", "tech-2", "2025-05-12", "10:00", models.StatusScheduled),
	}
	for _, a := range seed {
		if err := repo.Insert(ctx, a); err != nil {
			t.Fatalf("seed insert %s failed: %v", a.ID, err)
		}
	}

	got, err := repo.Query(ctx, Filter{
		TechnicianID: "tech-1",
		DateFrom:     "2025-05-12",
		DateTo:       "2025-05-13",
		Statuses:     models.ActiveStatuses,
	})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 active tech-1 appointments, got %d", len(got))
	}
	// Sorted by date then time.
	if got[0].ID != "a1" || got[1].ID != "a3" {
		t.Errorf("unexpected query order: %s, %s", got[0].ID, got[1].ID)
	}

	excluded, err := repo.Query(ctx, Filter{TechnicianID: "tech-1", ExcludeID: "a1"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	for _, a := range excluded {
		if a.ID == "a1" {
			t.Fatal("ExcludeID did not exclude a1")
		}
	}
}

func TestMemoryUpdateStatusFreesSlot(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, newAppt("a1", "tech-1", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "a1", models.StatusScheduled, models.StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if err := repo.Insert(ctx, newAppt("a2", "tech-1", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Fatalf("insert after cancellation failed: %v", err)
	}
}

func TestMemoryUpdateStatusStaleExpectation(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, newAppt("a1", "tech-1", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "a1", models.StatusScheduled, models.StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	// A writer still holding the pre-cancellation read loses the swap.
	if _, err := repo.UpdateStatus(ctx, "a1", models.StatusScheduled, models.StatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stale status write error = %v, want ErrNotFound", err)
	}
	if _, err := repo.UpdateStatus(ctx, "ghost", models.StatusScheduled, models.StatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id error = %v, want ErrNotFound", err)
	}
}

func TestMemoryUpdateStatusCannotReactivateOntoHeldSlot(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, newAppt("a1", "tech-1", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "a1", models.StatusScheduled, models.StatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := repo.Insert(ctx, newAppt("a2", "tech-1", "2025-05-12", "10:00", models.StatusScheduled)); err != nil {
		t.Fatalf("rebook failed: %v", err)
	}

	// Flipping the cancelled appointment back to an active status would put
	// two active appointments on the slot; the store must refuse.
	if _, err := repo.UpdateStatus(ctx, "a1", models.StatusCancelled, models.StatusConfirmed); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("reactivation onto held slot error = %v, want ErrSlotTaken", err)
	}

	active, err := repo.Query(ctx, Filter{TechnicianID: "tech-1", Statuses: models.ActiveStatuses})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected a single active holder for the slot, got %d", len(active))
	}
}
