package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TheKalyaniMohite/TableGrapeAgent/models"
)

type ChatSessionRepository struct {
	col *mongo.Collection
}

func NewChatSessionRepository(db *mongo.Database) *ChatSessionRepository {
	return &ChatSessionRepository{col: db.Collection("chat_sessions")}
}

// Ensure upserts the session document for (id, farm_id). The session
// id may be minted either client-side or server-side; both end up
// here, so an upsert keyed by _id keeps the operation idempotent.
func (r *ChatSessionRepository) Ensure(ctx context.Context, sessionID, farmID string) error {
	now := time.Now().UTC()
	filter := bson.M{"_id": sessionID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"farm_id":    farmID,
			"created_at": now,
		},
		"$set": bson.M{
			"updated_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByID returns a session by id, or ErrNotFound.
func (r *ChatSessionRepository) FindByID(ctx context.Context, id string) (*models.ChatSession, error) {
	var s models.ChatSession
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, mapFindErr(err)
	}
	return &s, nil
}

// DeleteByFarm removes every session belonging to a farm and returns
// the number deleted.
func (r *ChatSessionRepository) DeleteByFarm(ctx context.Context, farmID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"farm_id": farmID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
