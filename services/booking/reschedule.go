package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appointmentRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/appointment"
	technicianRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/technician"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// Reschedule moves an existing appointment to a new slot and/or technician
// in place, preserving its identity. The conflict check excludes the
// appointment being moved, so rescheduling onto its own current slot always
// succeeds. The same two-phase discipline as CreateAppointment applies:
// advisory re-check, then the store constraint as final authority.
func (s *DefaultBookingService) Reschedule(ctx context.Context, customerID, appointmentID, newTechnicianID, newDate, newTime string) (*models.Appointment, error) {
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
	if !appt.IsActive() {
		return nil, newValidationError("status", "appointment can no longer be modified")
	}

	fields := make(map[string]string)
	s.validateSlot(newDate, newTime, fields)
	if newTechnicianID == "" {
		fields["technician_id"] = "required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	tech, err := s.Technicians.GetByID(ctx, newTechnicianID)
	if err != nil {
		if errors.Is(err, technicianRepo.ErrNotFound) {
			return nil, newValidationError("technician_id", "unknown technician")
		}
		return nil, &PersistenceError{Op: "fetch technician", Err: err}
	}
	if !tech.IsAvailable {
		return nil, newValidationError("technician_id", "technician is not taking bookings")
	}

	if s.slotOccupied(ctx, newTechnicianID, newDate, newTime, appt.ID) {
		return nil, &SlotUnavailableError{TechnicianID: newTechnicianID, Date: newDate, Time: newTime}
	}

	updated, err := s.Repo.UpdateSlot(ctx, appt.ID, newTechnicianID, newDate, newTime)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			return nil, &SlotUnavailableError{TechnicianID: newTechnicianID, Date: newDate, Time: newTime}
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, err
		default:
			return nil, &PersistenceError{Op: "move appointment", Err: err}
		}
	}

	logger := utils.GetLogger()
	if err := s.Notifier.SendReschedule(ctx, updated); err != nil {
		logger.Warn("Reschedule: notification failed",
			zap.String("appointmentID", updated.ID), zap.Error(err))
	}
	logger.Info("appointment rescheduled",
		zap.String("appointmentID", updated.ID),
		zap.String("technicianID", updated.TechnicianID),
		zap.String("date", updated.Date), zap.String("time", updated.Time))
	return updated, nil
}
