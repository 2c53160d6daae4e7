package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TheKalyaniMohite/TableGrapeAgent/models"
)

type FarmRepository struct {
	col *mongo.Collection
}

func NewFarmRepository(db *mongo.Database) *FarmRepository {
	return &FarmRepository{col: db.Collection("farms")}
}

// Insert stores a new farm, assigning an id and timestamps.
func (r *FarmRepository) Insert(ctx context.Context, f *models.Farm) error {
	now := time.Now().UTC()
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = now
	f.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, f)
	return err
}

// FindByID returns a farm by id, or ErrNotFound.
func (r *FarmRepository) FindByID(ctx context.Context, id string) (*models.Farm, error) {
	var f models.Farm
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return nil, mapFindErr(err)
	}
	return &f, nil
}
