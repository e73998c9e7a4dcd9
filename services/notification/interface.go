package notification

import (
	"context"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// Sender delivers customer-facing appointment notifications. Delivery is
// best effort throughout: callers log failures and move on.
type Sender interface {
	SendConfirmation(ctx context.Context, appt *models.Appointment) error
	SendReschedule(ctx context.Context, appt *models.Appointment) error
}

// Message is the payload queued for the delivery worker.
type Message struct {
	AppointmentID string `json:"appointment_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
	TechnicianID  string `json:"technician_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Kind          string `json:"kind"` // "confirmation" or "reschedule"
}
