package mongostore

import (
	"context"
	"time"

	"smart-parking/internal/pkg/config"
	"smart-parking/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	lotsCollection  = "parking_lots"
	spotsCollection = "parking_spots"
	usersCollection = "users"
)

func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to mongo")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errs.Wrap(err, "failed to ping mongo")
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the stores rely on. Creating an existing
// index with the same keys and options is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(spotsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "lotId", Value: 1}, {Key: "label", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("lot_label_unique"),
		},
		{
			Keys:    bson.D{{Key: "lotId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("lot_status"),
		},
	})
	if err != nil {
		return errs.Wrap(err, "failed to create spot indexes")
	}

	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return errs.Wrap(err, "failed to create user indexes")
	}

	_, err = db.Collection(lotsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("created_at"),
	})
	if err != nil {
		return errs.Wrap(err, "failed to create lot indexes")
	}
	return nil
}
