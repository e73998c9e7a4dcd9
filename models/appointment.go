package models

import "time"

// Appointment statuses. Only scheduled and confirmed appointments occupy a
// slot; cancelled, completed and paid are terminal and free it.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusPaid      = "paid"
)

// Service types. In-home visits carry a fixed surcharge and require phone
// and address on the appointment.
const (
	ServiceTypeInStore = "in-store"
	ServiceTypeInHome  = "in-home"
)

// ActiveStatuses are the statuses that block a slot.
var ActiveStatuses = []string{StatusScheduled, StatusConfirmed}

// Appointment represents a booked salon visit.
type Appointment struct {
	ID           string   `bson:"id" json:"id"`
	TechnicianID string   `bson:"technician_id" json:"technician_id"`
	Date         string   `bson:"appointment_date" json:"appointment_date"` // "2006-01-02"
	Time         string   `bson:"appointment_time" json:"appointment_time"` // "15:04", slot-aligned
	ServiceType  string   `bson:"service_type" json:"service_type"`
	ServiceIDs   []string `bson:"service_ids" json:"service_ids"`
	Status       string   `bson:"status" json:"status"`
	TotalAmount  float64  `bson:"total_amount" json:"total_amount"`
	Notes        string   `bson:"notes,omitempty" json:"notes,omitempty"`

	CustomerID      string `bson:"customer_id" json:"customer_id"`
	CustomerName    string `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	CustomerAddress string `bson:"customer_address,omitempty" json:"customer_address,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsActive reports whether the appointment currently occupies its slot.
func (a *Appointment) IsActive() bool {
	return IsActiveStatus(a.Status)
}

// IsActiveStatus reports whether the given status blocks a slot.
func IsActiveStatus(status string) bool {
	return status == StatusScheduled || status == StatusConfirmed
}

// IsTerminalStatus reports whether the status admits no further transitions.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusCancelled, StatusCompleted, StatusPaid:
		return true
	}
	return false
}

// CanTransition reports whether the status change from → to is allowed.
// Terminal statuses have no outgoing transitions.
func CanTransition(from, to string) bool {
	if IsTerminalStatus(from) {
		return false
	}
	switch from {
	case StatusScheduled:
		return to == StatusConfirmed || to == StatusCancelled || to == StatusCompleted || to == StatusPaid
	case StatusConfirmed:
		return to == StatusCancelled || to == StatusCompleted || to == StatusPaid
	}
	return false
}
