package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

type stubProvider struct {
	currentCalls int
	current      domain.Session
	currentErr   error

	callback   func(domain.Session)
	unsubCalls int
}

func (p *stubProvider) SignInWithPassword(context.Context, string, string) (domain.Session, error) {
	return domain.NoSession(), errors.New("not implemented")
}

func (p *stubProvider) SignUp(context.Context, string, string, domain.Metadata) (domain.Session, error) {
	return domain.NoSession(), errors.New("not implemented")
}

func (p *stubProvider) SignOut(context.Context) error { return nil }

func (p *stubProvider) CurrentSession(context.Context) (domain.Session, error) {
	p.currentCalls++
	if p.currentErr != nil {
		return domain.NoSession(), p.currentErr
	}
	return p.current, nil
}

func (p *stubProvider) SubscribeAuthChanges(fn func(domain.Session)) func() {
	p.callback = fn
	return func() { p.unsubCalls++ }
}

type stubDemoStore struct {
	user       *domain.User
	clearCalls int
}

func (s *stubDemoStore) Save(_ context.Context, user *domain.User) error {
	s.user = user
	return nil
}

func (s *stubDemoStore) Load(context.Context) (*domain.User, error) { return s.user, nil }

func (s *stubDemoStore) Clear(context.Context) error {
	s.clearCalls++
	s.user = nil
	return nil
}

func demoUser() *domain.User {
	return &domain.User{ID: "demo-user-id", Email: "demo@gearguard.com", Role: domain.RoleAdmin, Demo: true}
}

func remoteUser() *domain.User {
	return &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleTechnician}
}

func TestInitialize_DemoMarkerShortCircuits(t *testing.T) {
	provider := &stubProvider{}
	demos := &stubDemoStore{user: demoUser()}
	store := NewStore(provider, demos, zerolog.Nop())

	if !store.Loading() {
		t.Fatalf("store must start in the loading state")
	}
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if provider.currentCalls != 0 {
		t.Fatalf("demo marker must skip the remote check, provider asked %d times", provider.currentCalls)
	}
	if store.Loading() {
		t.Fatalf("loading flag not cleared")
	}
	if sess := store.Current(); sess.Kind != domain.SessionDemo {
		t.Fatalf("expected demo session, got %s", sess.Kind)
	}
}

func TestInitialize_RemoteRestore(t *testing.T) {
	provider := &stubProvider{
		current: domain.NewRemoteSession(remoteUser(), "tok", "ref", time.Now().Add(time.Hour)),
	}
	store := NewStore(provider, &stubDemoStore{}, zerolog.Nop())

	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	sess := store.Current()
	if sess.Kind != domain.SessionRemote {
		t.Fatalf("expected remote session, got %s", sess.Kind)
	}
	if sess.User.Email != "alice@example.com" {
		t.Fatalf("wrong restored user: %s", sess.User.Email)
	}
}

func TestInitialize_Unauthenticated(t *testing.T) {
	provider := &stubProvider{current: domain.NoSession()}
	store := NewStore(provider, &stubDemoStore{}, zerolog.Nop())

	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if store.Loading() {
		t.Fatalf("loading flag not cleared")
	}
	if store.Current().Active() {
		t.Fatalf("expected no active session")
	}
}

func TestInitialize_ProviderFailureStillFinishesLoading(t *testing.T) {
	provider := &stubProvider{currentErr: errors.New("connection refused")}
	store := NewStore(provider, &stubDemoStore{}, zerolog.Nop())

	err := store.Initialize(context.Background())
	if err == nil {
		t.Fatalf("expected restoration error")
	}
	if store.Loading() {
		t.Fatalf("loading flag must drop even when restoration fails")
	}
	if store.Current().Active() {
		t.Fatalf("failed restoration must leave the store unauthenticated")
	}
}

func TestInitialize_RunsOnce(t *testing.T) {
	provider := &stubProvider{current: domain.NoSession()}
	store := NewStore(provider, &stubDemoStore{}, zerolog.Nop())

	_ = store.Initialize(context.Background())
	_ = store.Initialize(context.Background())
	if provider.currentCalls != 1 {
		t.Fatalf("initialize must run once, provider asked %d times", provider.currentCalls)
	}
}

func TestSubscription_ClearsDemoMarker(t *testing.T) {
	provider := &stubProvider{current: domain.NoSession()}
	demos := &stubDemoStore{}
	store := NewStore(provider, demos, zerolog.Nop())
	_ = store.Initialize(context.Background())

	demos.user = demoUser()
	provider.callback(domain.NewRemoteSession(remoteUser(), "tok", "ref", time.Now().Add(time.Hour)))

	if demos.clearCalls != 1 {
		t.Fatalf("auth change must clear the demo marker, got %d clears", demos.clearCalls)
	}
	if sess := store.Current(); sess.Kind != domain.SessionRemote {
		t.Fatalf("expected remote session after auth change, got %s", sess.Kind)
	}
}

func TestApply_DropsStaleUpdates(t *testing.T) {
	store := NewStore(&stubProvider{}, &stubDemoStore{}, zerolog.Nop())

	t0 := time.Now()
	t1 := t0.Add(time.Second)

	newer := domain.NewDemoSession(demoUser())
	older := domain.NewRemoteSession(remoteUser(), "tok", "ref", t1.Add(time.Hour))

	store.apply(newer, t1)
	store.apply(older, t0)

	if sess := store.Current(); sess.Kind != domain.SessionDemo {
		t.Fatalf("stale update must be dropped, store holds %s", sess.Kind)
	}
}

func TestClose_Unsubscribes(t *testing.T) {
	provider := &stubProvider{current: domain.NoSession()}
	store := NewStore(provider, &stubDemoStore{}, zerolog.Nop())
	_ = store.Initialize(context.Background())

	store.Close()
	store.Close()
	if provider.unsubCalls != 1 {
		t.Fatalf("expected exactly one unsubscribe, got %d", provider.unsubCalls)
	}
}
