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

type BlockRepository struct {
	col *mongo.Collection
}

func NewBlockRepository(db *mongo.Database) *BlockRepository {
	return &BlockRepository{col: db.Collection("blocks")}
}

func (r *BlockRepository) Insert(ctx context.Context, b *models.Block) error {
	now := time.Now().UTC()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, b)
	return err
}

// FindMainBlock returns the farm's "Main Block" (or any block whose
// name contains "Main"), falling back to the first block. ErrNotFound
// when the farm has no blocks at all.
func (r *BlockRepository) FindMainBlock(ctx context.Context, farmID string) (*models.Block, error) {
	var b models.Block
	filter := bson.M{
		"farm_id": farmID,
		"name":    bson.M{"$regex": "Main", "$options": "i"},
	}
	err := r.col.FindOne(ctx, filter).Decode(&b)
	if err == nil {
		return &b, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if err := r.col.FindOne(ctx, bson.M{"farm_id": farmID}, opts).Decode(&b); err != nil {
		return nil, mapFindErr(err)
	}
	return &b, nil
}
