// Package session holds the single source of truth for "who is signed in
// right now". The Store is created once in main, passed by reference to the
// route guard and the auth manager, and torn down on shutdown.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// Store tracks the current session as a tagged variant {none, demo, remote}.
// All mutations funnel through apply, which drops updates older than the
// last applied one, so the auth-change subscription and direct sign-in
// results cannot interleave out of order (last writer by timestamp, not by
// arrival).
type Store struct {
	provider ports.Provider
	demos    ports.DemoSessionStore
	log      zerolog.Logger

	mu          sync.RWMutex
	current     domain.Session
	loading     bool
	lastApplied time.Time

	initOnce    sync.Once
	closeOnce   sync.Once
	unsubscribe func()
}

// NewStore builds a Store in the loading state. Initialize must be called
// once at application start before the store is consulted.
func NewStore(provider ports.Provider, demos ports.DemoSessionStore, log zerolog.Logger) *Store {
	return &Store{
		provider: provider,
		demos:    demos,
		log:      log.With().Str("component", "session_store").Logger(),
		current:  domain.NoSession(),
		loading:  true,
	}
}

// Initialize restores an existing session. A persisted demo marker wins and
// short-circuits the remote check entirely; otherwise the provider is asked
// for its current session. Either way the loading flag drops exactly once,
// and the auth-change subscription is registered so external session changes
// keep the store consistent.
func (s *Store) Initialize(ctx context.Context) error {
	var initErr error
	s.initOnce.Do(func() {
		defer s.finishLoading()

		demoUser, err := s.demos.Load(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("demo session lookup failed, falling back to provider")
		}
		if demoUser != nil {
			s.apply(domain.NewDemoSession(demoUser), time.Now())
			s.subscribe()
			return
		}

		sess, err := s.provider.CurrentSession(ctx)
		if err != nil {
			initErr = fmt.Errorf("restore session: %w", err)
			sess = domain.NoSession()
		}
		s.apply(sess, time.Now())
		s.subscribe()
	})
	return initErr
}

// subscribe registers the auth-change callback. Every provider-side change
// clears any stale demo marker: a real session always supersedes a demo one.
func (s *Store) subscribe() {
	s.unsubscribe = s.provider.SubscribeAuthChanges(func(sess domain.Session) {
		if err := s.demos.Clear(context.Background()); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear demo session marker")
		}
		s.apply(sess, time.Now())
	})
}

// Update records a session produced by the auth manager (demo sign-in,
// local sign-out). Views never call this; all mutation flows through the
// auth manager.
func (s *Store) Update(sess domain.Session) {
	s.apply(sess, time.Now())
}

// apply is the single serialized mutation path. Updates stamped earlier than
// the last applied one are dropped.
func (s *Store) apply(sess domain.Session, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at.Before(s.lastApplied) {
		s.log.Debug().
			Time("stamped", at).
			Time("last_applied", s.lastApplied).
			Msg("dropping stale session update")
		return
	}
	s.lastApplied = at
	s.current = sess
}

func (s *Store) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Current returns the active session variant.
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Loading reports whether the initial session restoration is still running.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Close unregisters the auth-change subscription. Safe to call on every
// exit path; only the first call has any effect.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
}
