package ports

import (
	"context"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// UserRepository is the persistence port behind the auth provider.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
