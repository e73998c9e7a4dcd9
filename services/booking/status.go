package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appointmentRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/appointment"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// Cancel moves a customer's active appointment to cancelled. Cancelled is
// terminal and frees the slot immediately for new bookings.
func (s *DefaultBookingService) Cancel(ctx context.Context, customerID, appointmentID string) (*models.Appointment, error) {
	if customerID == "" {
		return nil, ErrAuthenticationRequired
	}

	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "fetch appointment", Err: err}
	}
	if appt.CustomerID != customerID {
		return nil, appointmentRepo.ErrNotFound
	}

	return s.transition(ctx, appt, models.StatusCancelled)
}

// UpdateStatus applies a staff-driven status change (confirm, complete,
// pay). Illegal transitions, including any out of a terminal status, are
// rejected before the store is touched.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "fetch appointment", Err: err}
	}
	return s.transition(ctx, appt, status)
}

func (s *DefaultBookingService) transition(ctx context.Context, appt *models.Appointment, to string) (*models.Appointment, error) {
	if !models.CanTransition(appt.Status, to) {
		return nil, newValidationError("status", "cannot change a "+appt.Status+" appointment to "+to)
	}

	// The write is conditioned on the status the legality check saw; a
	// concurrent transition in between fails it rather than being clobbered.
	updated, err := s.Repo.UpdateStatus(ctx, appt.ID, appt.Status, to)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, err
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			return nil, &SlotUnavailableError{TechnicianID: appt.TechnicianID, Date: appt.Date, Time: appt.Time}
		default:
			return nil, &PersistenceError{Op: "update appointment status", Err: err}
		}
	}

	utils.GetLogger().Info("appointment status changed",
		zap.String("appointmentID", updated.ID),
		zap.String("from", appt.Status), zap.String("to", to))
	return updated, nil
}
