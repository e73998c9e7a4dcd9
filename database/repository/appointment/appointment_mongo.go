package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/database"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
// The slot invariant is enforced by a partial unique index on
// (technician_id, appointment_date, appointment_time) covering only active
// statuses; see indexes.go.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

func (f Filter) toBson() bson.M {
	filter := bson.M{}
	if f.TechnicianID != "" {
		filter["technician_id"] = f.TechnicianID
	}
	if f.DateFrom != "" || f.DateTo != "" {
		dateRange := bson.M{}
		if f.DateFrom != "" {
			dateRange["$gte"] = f.DateFrom
		}
		if f.DateTo != "" {
			dateRange["$lte"] = f.DateTo
		}
		filter["appointment_date"] = dateRange
	}
	if len(f.Statuses) > 0 {
		filter["status"] = bson.M{"$in": f.Statuses}
	}
	if f.ExcludeID != "" {
		filter["id"] = bson.M{"$ne": f.ExcludeID}
	}
	return filter
}

// Query returns appointments matching the filter, ordered by date then time.
func (repo *MongoAppointmentRepo) Query(ctx context.Context, f Filter) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "appointment_date", Value: 1},
		{Key: "appointment_time", Value: 1},
	})
	cursor, err := repo.coll.Find(ctx, f.toBson(), opts)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// GetByID retrieves an appointment by its ID.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// Insert creates a new appointment. A duplicate-key error from the partial
// unique slot index is reported as ErrSlotTaken.
func (repo *MongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error inserting appointment: %w", err)
	}
	return nil
}

// UpdateSlot moves an appointment to a new slot in place. The partial unique
// index rejects the write when another active appointment already holds the
// target slot; moving an appointment onto its own slot never conflicts.
func (repo *MongoAppointmentRepo) UpdateSlot(ctx context.Context, id, technicianID, date, timeOfDay string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": bson.M{"$in": models.ActiveStatuses}}
	update := bson.M{"$set": bson.M{
		"technician_id":    technicianID,
		"appointment_date": date,
		"appointment_time": timeOfDay,
		"updated_at":       time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("error moving appointment %s: %w", id, err)
	}
	return &appt, nil
}

// UpdateStatus moves the status from its expected current value to the new
// one. Filtering on the expected status makes the write a compare-and-swap:
// a concurrent transition since the caller's read misses the filter and
// surfaces as ErrNotFound instead of silently clobbering it. If the write
// would re-activate the appointment onto a slot the partial unique index
// already guards, the duplicate-key error maps to ErrSlotTaken.
func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, from, to string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("error updating status of appointment %s: %w", id, err)
	}
	return &appt, nil
}

// Count returns the total number of appointment documents.
func (repo *MongoAppointmentRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting appointments: %w", err)
	}
	return n, nil
}
