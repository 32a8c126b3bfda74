package ports

import (
	"context"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// DemoSessionStore persists the demo-session marker outside the real auth
// flow. At most one marker exists; a real session always supersedes it.
type DemoSessionStore interface {
	// Save stores user as the active demo session marker.
	Save(ctx context.Context, user *domain.User) error
	// Load returns the persisted demo user, or nil when no marker is set.
	Load(ctx context.Context) (*domain.User, error)
	// Clear removes the marker. Clearing an absent marker is a no-op.
	Clear(ctx context.Context) error
}
