package ports

import (
	"context"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// ProfileRepository persists the denormalized profile rows written at
// sign-up time.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	// FindByEmail returns domain.ErrUserNotFound when no profile exists.
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
}

// ProfileQueue accepts profiles whose best-effort insert failed so they can
// be reconciled later.
type ProfileQueue interface {
	Enqueue(profile domain.Profile)
}
