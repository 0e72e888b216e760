package database

import (
	"context"
	"fmt"
	"time"

	"movie-review/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo bundles the client with the application database handle.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// InitMongo connects to config.MongoURI and pings the primary.
func InitMongo(ctx context.Context, config utils.DatabaseConfig) (*Mongo, error) {
	clientOptions := options.Client().
		ApplyURI(config.MongoURI).
		SetMaxPoolSize(uint64(max(config.MaxConns, 1))).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return &Mongo{
		Client: client,
		DB:     client.Database(config.Name),
	}, nil
}
