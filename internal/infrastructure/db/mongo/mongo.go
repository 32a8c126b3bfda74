// Package mongo implements the persistence layer: connection bootstrap plus
// the repositories behind users, profiles, equipment, maintenance requests,
// and teams.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	appName         = "gearguard-api"
	defaultDatabase = "gearguard"
	connectTimeout  = 10 * time.Second

	// One pool serves five small collections; the dashboard's count queries
	// are the only fan-out.
	maxPoolSize = 32
)

// Config holds the connection settings. Database falls back to the gearguard
// default when empty.
type Config struct {
	URI      string
	Database string
}

// Connect opens a client tagged with the service's app name, verifies it
// with a ping, and returns the client together with the database handle.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	name := cfg.Database
	if name == "" {
		name = defaultDatabase
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetMaxPoolSize(maxPoolSize)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(name), nil
}
