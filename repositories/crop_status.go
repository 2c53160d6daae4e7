package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TheKalyaniMohite/TableGrapeAgent/models"
)

type CropStatusRepository struct {
	col *mongo.Collection
}

func NewCropStatusRepository(db *mongo.Database) *CropStatusRepository {
	return &CropStatusRepository{col: db.Collection("crop_status")}
}

func (r *CropStatusRepository) Insert(ctx context.Context, s *models.CropStatus) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if s.RecordedAt.IsZero() {
		s.RecordedAt = now
	}
	s.CreatedAt = now
	_, err := r.col.InsertOne(ctx, s)
	return err
}

// FindLatest returns the most recent status check-in for a farm, or
// ErrNotFound when none has been recorded.
func (r *CropStatusRepository) FindLatest(ctx context.Context, farmID string) (*models.CropStatus, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	var s models.CropStatus
	if err := r.col.FindOne(ctx, bson.M{"farm_id": farmID}, opts).Decode(&s); err != nil {
		return nil, mapFindErr(err)
	}
	return &s, nil
}
