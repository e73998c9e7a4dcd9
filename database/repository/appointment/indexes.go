package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the appointment indexes. The partial unique index on
// (technician_id, appointment_date, appointment_time) is the authoritative
// slot guard: it only covers active statuses, so cancelled, completed and
// paid appointments do not block the slot, and two concurrent writers for
// the same slot cannot both commit.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "technician_id", Value: 1},
				{Key: "appointment_date", Value: 1},
				{Key: "appointment_time", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": models.ActiveStatuses},
				}),
		},
		{
			Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "appointment_date", Value: 1}},
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
