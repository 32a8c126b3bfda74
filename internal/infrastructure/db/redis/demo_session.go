package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

const (
	demoSessionKey = "gearguard:demo_session"
	demoSessionTTL = 24 * time.Hour
)

// DemoSessionStore keeps the demo-session marker in Redis. The marker holds
// the serialized demo user and expires on its own after demoSessionTTL.
type DemoSessionStore struct {
	client *redis.Client
}

func NewDemoSessionStore(client *redis.Client) *DemoSessionStore {
	return &DemoSessionStore{client: client}
}

// Save stores user as the active demo session marker.
func (s *DemoSessionStore) Save(ctx context.Context, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal demo user: %w", err)
	}
	if err := s.client.Set(ctx, demoSessionKey, payload, demoSessionTTL).Err(); err != nil {
		return fmt.Errorf("save demo session: %w", err)
	}
	return nil
}

// Load returns the persisted demo user, or nil when no marker is set.
func (s *DemoSessionStore) Load(ctx context.Context) (*domain.User, error) {
	payload, err := s.client.Get(ctx, demoSessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load demo session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("unmarshal demo user: %w", err)
	}
	return &user, nil
}

// Clear removes the marker. Clearing an absent marker is a no-op.
func (s *DemoSessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, demoSessionKey).Err(); err != nil {
		return fmt.Errorf("clear demo session: %w", err)
	}
	return nil
}
