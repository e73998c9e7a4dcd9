package technicianRepo

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

// MongoTechnicianRepo implements TechnicianRepository using MongoDB.
type MongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo constructs a new instance of MongoTechnicianRepo.
func NewMongoTechnicianRepo() *MongoTechnicianRepo {
	return &MongoTechnicianRepo{
		coll: database.DB().Collection("technicians"),
	}
}

// GetByID retrieves a technician by ID.
func (repo *MongoTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tech models.Technician
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tech); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching technician %s: %w", id, err)
	}
	return &tech, nil
}

// ListAvailable returns all technicians currently offered for booking.
func (repo *MongoTechnicianRepo) ListAvailable(ctx context.Context) ([]models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"is_available": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing technicians: %w", err)
	}
	defer cursor.Close(ctx)

	var techs []models.Technician
	if err := cursor.All(ctx, &techs); err != nil {
		return nil, fmt.Errorf("error decoding technicians: %w", err)
	}
	return techs, nil
}
