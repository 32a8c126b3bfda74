package service

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/api/metrics"
	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
	"github.com/gearguard/maintenance-tracker/internal/core/session"
)

// Demo credentials. Sign-ins with this exact pair never contact the provider.
const (
	DemoEmail    = "demo@gearguard.com"
	DemoPassword = "demo123"

	demoUserID   = "demo-user-id"
	demoFullName = "Demo User"

	minPasswordLength = 8
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthManager wraps the provider with local validation, the demo bypass, and
// error-message normalization.
type AuthManager struct {
	provider ports.Provider
	profiles ports.ProfileRepository
	queue    ports.ProfileQueue
	demos    ports.DemoSessionStore
	sessions *session.Store
	logger   zerolog.Logger
}

func NewAuthManager(
	provider ports.Provider,
	profiles ports.ProfileRepository,
	queue ports.ProfileQueue,
	demos ports.DemoSessionStore,
	sessions *session.Store,
	logger zerolog.Logger,
) *AuthManager {
	return &AuthManager{
		provider: provider,
		profiles: profiles,
		queue:    queue,
		demos:    demos,
		sessions: sessions,
		logger:   logger.With().Str("component", "auth_manager").Logger(),
	}
}

// DemoUser synthesizes the fixed demo identity with role admin.
func DemoUser() *domain.User {
	return &domain.User{
		ID:       demoUserID,
		Email:    DemoEmail,
		FullName: demoFullName,
		Role:     domain.RoleAdmin,
		Demo:     true,
	}
}

// SignIn authenticates email/password. The demo pair bypasses the provider
// entirely and the fabricated session is pushed into the session store
// synchronously. For real credentials the provider result is returned as-is;
// the session store is updated once, by the auth-change subscription.
func (m *AuthManager) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	if email == "" || password == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("sign_in", "validation_error").Inc()
		return domain.NoSession(), domain.NewValidationError("Email and password are required")
	}

	if email == DemoEmail && password == DemoPassword {
		user := DemoUser()
		sess := domain.NewDemoSession(user)
		if err := m.demos.Save(ctx, user); err != nil {
			// The in-memory session still works without the marker; only
			// restoration after a restart is lost.
			m.logger.Warn().Err(err).Msg("failed to persist demo session marker")
		}
		m.sessions.Update(sess)
		metrics.DemoLoginsTotal.Inc()
		metrics.AuthAttemptsTotal.WithLabelValues("sign_in", "success").Inc()
		m.logger.Info().Str("email", email).Msg("demo sign-in")
		return sess, nil
	}

	sess, err := m.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		mapped := mapSignInError(err)
		metrics.AuthAttemptsTotal.WithLabelValues("sign_in", "rejected").Inc()
		m.logger.Info().Err(err).Str("email", email).Msg("sign-in rejected")
		return domain.NoSession(), mapped
	}

	metrics.AuthAttemptsTotal.WithLabelValues("sign_in", "success").Inc()
	return sess, nil
}

// SignUp validates the form locally, pre-checks the profile collection for a
// duplicate email, and delegates to the provider. A profile row is written
// best-effort after success; a failed insert is logged and queued for
// reconciliation but never fails the sign-up.
func (m *AuthManager) SignUp(ctx context.Context, input ports.SignUpInput) (domain.Session, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleTechnician
	}

	if err := validateSignUp(input, role); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("sign_up", "validation_error").Inc()
		return domain.NoSession(), err
	}

	if _, err := m.profiles.FindByEmail(ctx, input.Email); err == nil {
		metrics.AuthAttemptsTotal.WithLabelValues("sign_up", "rejected").Inc()
		return domain.NoSession(), domain.ErrDuplicateEmail
	}

	sess, err := m.provider.SignUp(ctx, input.Email, input.Password, domain.Metadata{
		FullName: input.FullName,
		Role:     role,
	})
	if err != nil {
		if strings.Contains(err.Error(), "already registered") {
			metrics.AuthAttemptsTotal.WithLabelValues("sign_up", "rejected").Inc()
			return domain.NoSession(), domain.ErrDuplicateEmail
		}
		metrics.AuthAttemptsTotal.WithLabelValues("sign_up", "error").Inc()
		return domain.NoSession(), domain.WrapProvider(err)
	}

	profile := domain.Profile{
		UserID:    sess.User.ID,
		Email:     input.Email,
		FullName:  input.FullName,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.profiles.Create(ctx, &profile); err != nil {
		// The auth-side user already exists and takes precedence; hand the
		// row to the reconciler instead of failing the sign-up.
		m.logger.Warn().Err(err).Str("email", input.Email).Msg("profile insert failed, queued for reconciliation")
		m.queue.Enqueue(profile)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("sign_up", "success").Inc()
	m.logger.Info().Str("email", input.Email).Str("role", role).Msg("user signed up")
	return sess, nil
}

// SignOut ends the current session. Demo sessions are torn down locally with
// no provider call. With no active session the call is a no-op, so a second
// sign-out never fails.
func (m *AuthManager) SignOut(ctx context.Context) error {
	current := m.sessions.Current()
	switch current.Kind {
	case domain.SessionDemo:
		if err := m.demos.Clear(ctx); err != nil {
			m.logger.Warn().Err(err).Msg("failed to clear demo session marker")
		}
		m.sessions.Update(domain.NoSession())
		metrics.AuthAttemptsTotal.WithLabelValues("sign_out", "success").Inc()
		return nil
	case domain.SessionNone:
		return nil
	default:
		if err := m.provider.SignOut(ctx); err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues("sign_out", "error").Inc()
			return domain.WrapProvider(err)
		}
		metrics.AuthAttemptsTotal.WithLabelValues("sign_out", "success").Inc()
		return nil
	}
}

// validateSignUp applies the sign-up rules in fixed order: required fields,
// email format, password length, password composition, password match, role.
// The first violated rule wins.
func validateSignUp(input ports.SignUpInput, role string) error {
	if input.Email == "" || input.Password == "" || input.ConfirmPassword == "" || input.FullName == "" {
		return domain.NewValidationError("All fields are required")
	}
	if !emailPattern.MatchString(input.Email) {
		return domain.NewValidationError("Please enter a valid email address")
	}
	if len(input.Password) < minPasswordLength {
		return domain.NewValidationError("Password must be at least 8 characters long")
	}
	if !passwordComposition(input.Password) {
		return domain.NewValidationError("Password must contain lowercase, uppercase, and special characters")
	}
	if input.Password != input.ConfirmPassword {
		return domain.NewValidationError("Passwords do not match")
	}
	if !domain.ValidRole(role) {
		return domain.NewValidationError("Role must be one of: technician, manager, admin")
	}
	return nil
}

// passwordComposition requires at least one lowercase, one uppercase, and
// one special (non-alphanumeric) character.
func passwordComposition(password string) bool {
	var lower, upper, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	return lower && upper && special
}

// mapSignInError translates known provider failure messages into the shared
// taxonomy; anything unrecognized passes through verbatim as a ProviderError.
func mapSignInError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Invalid login credentials"):
		return domain.ErrInvalidCredentials
	case strings.Contains(msg, "Email not confirmed"):
		return domain.ErrUnverifiedEmail
	default:
		return domain.WrapProvider(err)
	}
}
