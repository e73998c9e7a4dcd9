package booking

import (
	"context"
	"time"

	appointmentRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/appointment"
	catalogRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/catalog"
	technicianRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/technician"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/services/loyalty"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/services/notification"
)

// CreateInput is a candidate appointment as submitted by the booking wizard.
type CreateInput struct {
	CustomerID      string   `json:"-"`
	CustomerName    string   `json:"customer_name"`
	CustomerEmail   string   `json:"customer_email"`
	CustomerPhone   string   `json:"customer_phone"`
	CustomerAddress string   `json:"customer_address"`
	TechnicianID    string   `json:"technician_id"`
	Date            string   `json:"appointment_date"`
	Time            string   `json:"appointment_time"`
	ServiceType     string   `json:"service_type"`
	ServiceIDs      []string `json:"service_ids"`
	Notes           string   `json:"notes"`
	RedeemPoints    int      `json:"redeem_points"`
}

// BookingService is the scheduling core: slot availability, conflict-safe
// creation, reschedule and the status transitions that free slots.
type BookingService interface {
	BookedSlots(ctx context.Context, technicianID, dateFrom, dateTo string) map[string][]string
	FullyBookedDates(booked map[string][]string) []string
	CreateAppointment(ctx context.Context, in CreateInput) (*models.Appointment, error)
	Reschedule(ctx context.Context, customerID, appointmentID, newTechnicianID, newDate, newTime string) (*models.Appointment, error)
	Cancel(ctx context.Context, customerID, appointmentID string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        appointmentRepo.AppointmentRepository
	Technicians technicianRepo.TechnicianRepository
	Catalog     catalogRepo.ServiceRepository
	Loyalty     loyalty.Ledger
	Notifier    notification.Sender

	Grid           models.SlotGrid
	ClosedWeekday  time.Weekday
	InHomeFee      float64
	PointsPerUnit  int              // loyalty points per currency unit of discount
	Now            func() time.Time // overridable for tests
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
