package ports

import (
	"context"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// Provider is the remote auth/data service contract consumed by the auth
// manager and the session store. The concrete implementation lives in
// internal/infrastructure/authprovider.
type Provider interface {
	// SignInWithPassword authenticates email/password and returns the
	// resulting remote session.
	SignInWithPassword(ctx context.Context, email, password string) (domain.Session, error)

	// SignUp creates a new account with the given profile metadata attached
	// and returns the initial session.
	SignUp(ctx context.Context, email, password string, metadata domain.Metadata) (domain.Session, error)

	// SignOut destroys the current remote session.
	SignOut(ctx context.Context) error

	// CurrentSession returns the active remote session, or the none variant
	// when unauthenticated.
	CurrentSession(ctx context.Context) (domain.Session, error)

	// SubscribeAuthChanges registers fn to be invoked on every session
	// change (sign-in, sign-out, expiry). The returned function unregisters
	// the subscription and is safe to call more than once.
	SubscribeAuthChanges(fn func(domain.Session)) (unsubscribe func())
}
