package db

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/TheKalyaniMohite/TableGrapeAgent/config"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := cfg.MongoURI
		if uri == "" {
			// Fallback for local docker-compose default
			uri = "mongodb://localhost:27017"
		}
		dbName := cfg.MongoDBName
		if dbName == "" {
			dbName = "tablegrape"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		// Ensure indexes for all collections
		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		log.Println("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client { return client }

func Database() *mongo.Database { return db }

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// blocks: index on farm_id
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "farm_id", Value: 1}},
			Options: options.Index().SetName("idx_farm_id"),
		}
		if _, err := d.Collection("blocks").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// chat_sessions: index on farm_id
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "farm_id", Value: 1}},
			Options: options.Index().SetName("idx_farm_id"),
		}
		if _, err := d.Collection("chat_sessions").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// chat_messages: (farm_id, created_at) asc for chronological history
	// reads, plus session_id for per-thread queries
	{
		if _, err := d.Collection("chat_messages").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "farm_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_farm_created_at"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("chat_messages").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("idx_session_id"),
		}); err != nil {
			return err
		}
	}

	// crop_status: (farm_id, recorded_at desc) for latest-status lookups
	{
		if _, err := d.Collection("crop_status").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "farm_id", Value: 1}, {Key: "recorded_at", Value: -1}},
			Options: options.Index().SetName("idx_farm_recorded_at_desc"),
		}); err != nil {
			return err
		}
	}

	// scouting_logs: (farm_id, observed_at desc)
	{
		if _, err := d.Collection("scouting_logs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "farm_id", Value: 1}, {Key: "observed_at", Value: -1}},
			Options: options.Index().SetName("idx_farm_observed_at_desc"),
		}); err != nil {
			return err
		}
	}

	// irrigation_logs: (farm_id, irrigated_at desc)
	{
		if _, err := d.Collection("irrigation_logs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "farm_id", Value: 1}, {Key: "irrigated_at", Value: -1}},
			Options: options.Index().SetName("idx_farm_irrigated_at_desc"),
		}); err != nil {
			return err
		}
	}

	// brix_samples: (farm_id, sampled_at desc)
	{
		if _, err := d.Collection("brix_samples").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "farm_id", Value: 1}, {Key: "sampled_at", Value: -1}},
			Options: options.Index().SetName("idx_farm_sampled_at_desc"),
		}); err != nil {
			return err
		}
	}

	return nil
}
