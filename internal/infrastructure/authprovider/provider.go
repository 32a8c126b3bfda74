// Package authprovider implements the remote auth/data service contract on
// top of MongoDB-backed user storage and HS256 JWT sessions. It keeps the
// current session in memory and fans session changes out to subscribers,
// mirroring the hosted provider the dashboard was originally built against.
package authprovider

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// Failure messages match the hosted provider's wording; the auth manager
// maps on these substrings.
var (
	errInvalidLogin      = errors.New("Invalid login credentials")
	errAlreadyRegistered = errors.New("User already registered")
	errInvalidToken      = errors.New("invalid token")
)

// Provider implements ports.Provider.
type Provider struct {
	users      ports.UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger

	mu          sync.Mutex
	current     domain.Session
	subscribers map[int]func(domain.Session)
	nextSubID   int
}

func New(users ports.UserRepository, jwtSecret string, accessTTL, refreshTTL time.Duration, logger zerolog.Logger) *Provider {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &Provider{
		users:       users,
		jwtSecret:   jwtSecret,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
		logger:      logger.With().Str("component", "auth_provider").Logger(),
		current:     domain.NoSession(),
		subscribers: make(map[int]func(domain.Session)),
	}
}

func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.NoSession(), errInvalidLogin
		}
		return domain.NoSession(), err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.NoSession(), errInvalidLogin
	}

	sess, err := p.issueSession(user)
	if err != nil {
		return domain.NoSession(), err
	}

	p.setCurrent(sess)
	p.logger.Info().Str("email", email).Msg("password sign-in")
	return sess, nil
}

func (p *Provider) SignUp(ctx context.Context, email, password string, metadata domain.Metadata) (domain.Session, error) {
	if _, err := p.users.FindByEmail(ctx, email); err == nil {
		return domain.NoSession(), errAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.NoSession(), err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     metadata.FullName,
		Role:         metadata.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := p.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return domain.NoSession(), errAlreadyRegistered
		}
		return domain.NoSession(), err
	}

	sess, err := p.issueSession(created)
	if err != nil {
		return domain.NoSession(), err
	}

	p.setCurrent(sess)
	p.logger.Info().Str("email", email).Str("role", created.Role).Msg("account created")
	return sess, nil
}

func (p *Provider) SignOut(ctx context.Context) error {
	p.setCurrent(domain.NoSession())
	return nil
}

// CurrentSession returns the active session, clearing it first if the access
// token has expired.
func (p *Provider) CurrentSession(ctx context.Context) (domain.Session, error) {
	p.mu.Lock()
	current := p.current
	expired := current.Kind == domain.SessionRemote && !current.ExpiresAt.IsZero() && time.Now().After(current.ExpiresAt)
	if expired {
		p.current = domain.NoSession()
		current = p.current
	}
	subs := p.snapshotSubscribersLocked()
	p.mu.Unlock()

	if expired {
		for _, fn := range subs {
			fn(current)
		}
	}
	return current, nil
}

func (p *Provider) SubscribeAuthChanges(fn func(domain.Session)) func() {
	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subscribers, id)
			p.mu.Unlock()
		})
	}
}

// ParseAccessToken validates a token issued by this provider and returns its
// claims. Used by the HTTP auth middleware.
func (p *Provider) ParseAccessToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(p.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

func (p *Provider) issueSession(user *domain.User) (domain.Session, error) {
	expiresAt := time.Now().Add(p.accessTTL)
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"email":     user.Email,
		"role":      user.Role,
		"full_name": user.FullName,
		"exp":       expiresAt.Unix(),
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.jwtSecret))
	if err != nil {
		return domain.NoSession(), err
	}

	return domain.NewRemoteSession(user, access, uuid.NewString(), expiresAt), nil
}

// setCurrent replaces the current session and notifies subscribers. The
// callbacks run outside the lock so a subscriber may consult the provider.
func (p *Provider) setCurrent(sess domain.Session) {
	p.mu.Lock()
	p.current = sess
	subs := p.snapshotSubscribersLocked()
	p.mu.Unlock()

	for _, fn := range subs {
		fn(sess)
	}
}

func (p *Provider) snapshotSubscribersLocked() []func(domain.Session) {
	subs := make([]func(domain.Session), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	return subs
}
