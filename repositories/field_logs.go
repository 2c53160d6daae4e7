package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TheKalyaniMohite/TableGrapeAgent/models"
)

type ScoutingLogRepository struct {
	col *mongo.Collection
}

func NewScoutingLogRepository(db *mongo.Database) *ScoutingLogRepository {
	return &ScoutingLogRepository{col: db.Collection("scouting_logs")}
}

// ListRecent returns the newest scouting logs for a farm, observed_at
// descending.
func (r *ScoutingLogRepository) ListRecent(ctx context.Context, farmID string, limit int) ([]models.ScoutingLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "observed_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"farm_id": farmID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ScoutingLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindLastScan returns the most recent scouting log that carries a
// photo, i.e. the last crop-health scan result. ErrNotFound when the
// farm has never scanned.
func (r *ScoutingLogRepository) FindLastScan(ctx context.Context, farmID string) (*models.ScoutingLog, error) {
	filter := bson.M{
		"farm_id":    farmID,
		"photo_path": bson.M{"$exists": true, "$ne": ""},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "observed_at", Value: -1}})
	var l models.ScoutingLog
	if err := r.col.FindOne(ctx, filter, opts).Decode(&l); err != nil {
		return nil, mapFindErr(err)
	}
	return &l, nil
}

type IrrigationLogRepository struct {
	col *mongo.Collection
}

func NewIrrigationLogRepository(db *mongo.Database) *IrrigationLogRepository {
	return &IrrigationLogRepository{col: db.Collection("irrigation_logs")}
}

// ListRecent returns the newest irrigation logs, irrigated_at descending.
func (r *IrrigationLogRepository) ListRecent(ctx context.Context, farmID string, limit int) ([]models.IrrigationLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "irrigated_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"farm_id": farmID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.IrrigationLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type BrixSampleRepository struct {
	col *mongo.Collection
}

func NewBrixSampleRepository(db *mongo.Database) *BrixSampleRepository {
	return &BrixSampleRepository{col: db.Collection("brix_samples")}
}

// ListRecent returns the newest brix samples, sampled_at descending.
func (r *BrixSampleRepository) ListRecent(ctx context.Context, farmID string, limit int) ([]models.BrixSample, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sampled_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"farm_id": farmID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.BrixSample
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
