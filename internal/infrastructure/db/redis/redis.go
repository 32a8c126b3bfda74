// Package redis holds the Redis-backed demo session marker store and its
// connection bootstrap. The marker is the only Redis state this service
// keeps.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	clientName  = "gearguard-api"
	pingTimeout = 5 * time.Second
)

// Config holds the connection settings for the marker store.
type Config struct {
	Addr string
	DB   int
}

// Connect opens the client used by the demo session marker store and
// verifies connectivity with a ping before the server starts accepting
// requests.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		DB:         cfg.DB,
		ClientName: clientName,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
