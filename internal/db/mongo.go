package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

// InitMongo connects and pings the server so a bad URI fails at startup, not
// on the first request.
func InitMongo(uri string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	return nil
}

// EnsureIndexes creates the indexes the service relies on:
//
//   - users.email unique, so registration conflicts surface as duplicate keys
//   - feedback.attempt unique, which resolves the concurrent first-feedback
//     race: the losing writer gets a duplicate-key error and re-reads the
//     winner's record
//   - users.points descending for the leaderboard query
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "points", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("feedback").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "attempt", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
