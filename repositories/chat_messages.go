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

type ChatMessageRepository struct {
	col *mongo.Collection
}

func NewChatMessageRepository(db *mongo.Database) *ChatMessageRepository {
	return &ChatMessageRepository{col: db.Collection("chat_messages")}
}

// Insert stores a message, assigning an id and created_at when absent.
func (r *ChatMessageRepository) Insert(ctx context.Context, m *models.ChatMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

// ListByFarm returns the most recent limit messages for a farm in
// chronological order: created_at ascending, then _id ascending as a
// stable tie-break for messages written in the same millisecond. The
// query sorts descending to pick the newest window, then the slice is
// reversed.
func (r *ChatMessageRepository) ListByFarm(ctx context.Context, farmID string, limit int) ([]models.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"farm_id": farmID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ChatMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// DeleteByFarm removes every message belonging to a farm and returns
// the number deleted.
func (r *ChatMessageRepository) DeleteByFarm(ctx context.Context, farmID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"farm_id": farmID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
