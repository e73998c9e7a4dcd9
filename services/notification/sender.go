package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
)

// TypeAppointmentNotify is the asynq task type for appointment notifications.
const TypeAppointmentNotify = "appointment:notify"

// QueueSender enqueues notifications for the background delivery worker
// instead of sending inline, so a slow mail path never sits on the booking
// request.
type QueueSender struct {
	Client *asynq.Client
}

// NewQueueSender constructs a sender that enqueues via the given client.
func NewQueueSender(client *asynq.Client) *QueueSender {
	return &QueueSender{Client: client}
}

func (s *QueueSender) enqueue(ctx context.Context, appt *models.Appointment, kind string) error {
	payload, err := json.Marshal(Message{
		AppointmentID: appt.ID,
		CustomerEmail: appt.CustomerEmail,
		CustomerName:  appt.CustomerName,
		TechnicianID:  appt.TechnicianID,
		Date:          appt.Date,
		Time:          appt.Time,
		Kind:          kind,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	task := asynq.NewTask(TypeAppointmentNotify, payload)
	if _, err := s.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s notification: %w", kind, err)
	}
	return nil
}

func (s *QueueSender) SendConfirmation(ctx context.Context, appt *models.Appointment) error {
	return s.enqueue(ctx, appt, "confirmation")
}

func (s *QueueSender) SendReschedule(ctx context.Context, appt *models.Appointment) error {
	return s.enqueue(ctx, appt, "reschedule")
}

// NoopSender discards notifications. Used in tests and database-less runs.
type NoopSender struct{}

func (NoopSender) SendConfirmation(context.Context, *models.Appointment) error { return nil }
func (NoopSender) SendReschedule(context.Context, *models.Appointment) error   { return nil }
