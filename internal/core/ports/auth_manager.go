package ports

import (
	"context"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// SignUpInput carries the sign-up form fields. Role defaults to technician
// when empty.
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	Role            string
}

// AuthManager performs credential operations and normalizes their outcomes
// into the shared error taxonomy.
type AuthManager interface {
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	SignUp(ctx context.Context, input SignUpInput) (domain.Session, error)
	SignOut(ctx context.Context) error
}
