package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/appointment"
	catalogRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/catalog"
	technicianRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/technician"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// CreateAppointment validates and commits a new appointment.
//
// Order matters: validation runs before any store access, the booked set is
// re-fetched immediately before the write (availability shown to the user
// may be stale by submit time), and the store's uniqueness constraint has
// the final word — among concurrent attempts for one slot exactly one insert
// succeeds and the rest surface SlotUnavailableError.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if in.CustomerID == "" {
		return nil, ErrAuthenticationRequired
	}
	if verr := s.validateCreate(in); verr != nil {
		return nil, verr
	}

	tech, err := s.Technicians.GetByID(ctx, in.TechnicianID)
	if err != nil {
		if errors.Is(err, technicianRepo.ErrNotFound) {
			return nil, newValidationError("technician_id", "unknown technician")
		}
		return nil, &PersistenceError{Op: "fetch technician", Err: err}
	}
	if !tech.IsAvailable {
		return nil, newValidationError("technician_id", "technician is not taking bookings")
	}

	services, err := s.Catalog.GetByIDs(ctx, in.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, newValidationError("service_ids", "unknown service selection")
		}
		return nil, &PersistenceError{Op: "fetch services", Err: err}
	}

	if in.RedeemPoints > 0 {
		balance, err := s.Loyalty.GetBalance(ctx, in.CustomerID)
		if err != nil {
			return nil, &PersistenceError{Op: "fetch loyalty balance", Err: err}
		}
		if balance < in.RedeemPoints {
			return nil, newValidationError("redeem_points", "insufficient loyalty balance")
		}
	}

	// Advisory re-check right before commit. Cheap and not authoritative,
	// but it turns the common stale-page case into a clean error without
	// paying for a write.
	if s.slotOccupied(ctx, in.TechnicianID, in.Date, in.Time, "") {
		return nil, &SlotUnavailableError{TechnicianID: in.TechnicianID, Date: in.Date, Time: in.Time}
	}

	now := s.now()
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		TechnicianID:    in.TechnicianID,
		Date:            in.Date,
		Time:            in.Time,
		ServiceType:     in.ServiceType,
		ServiceIDs:      in.ServiceIDs,
		Status:          models.StatusScheduled,
		TotalAmount:     TotalAmount(services, in.ServiceType, s.InHomeFee, in.RedeemPoints, s.PointsPerUnit),
		Notes:           in.Notes,
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, &SlotUnavailableError{TechnicianID: in.TechnicianID, Date: in.Date, Time: in.Time}
		}
		return nil, &PersistenceError{Op: "insert appointment", Err: err}
	}

	// Burn redeemed points only once the slot is ours; a lost race must not
	// cost the customer anything.
	if in.RedeemPoints > 0 {
		if err := s.Loyalty.ApplyRedemption(ctx, in.CustomerID, in.RedeemPoints); err != nil {
			logger.Warn("CreateAppointment: failed to apply loyalty redemption",
				zap.String("customerID", in.CustomerID),
				zap.Int("points", in.RedeemPoints), zap.Error(err))
		}
	}

	// Confirmation is best effort: a notification failure never fails the
	// booking.
	if err := s.Notifier.SendConfirmation(ctx, appt); err != nil {
		logger.Warn("CreateAppointment: confirmation notification failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("technicianID", appt.TechnicianID),
		zap.String("date", appt.Date), zap.String("time", appt.Time))
	return appt, nil
}
