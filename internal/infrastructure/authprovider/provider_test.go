package authprovider

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

type memoryUsers struct {
	byEmail map[string]*domain.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*domain.User)}
}

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.byEmail[user.Email] = user
	return user, nil
}

func newTestProvider(accessTTL time.Duration) (*Provider, *memoryUsers) {
	users := newMemoryUsers()
	return New(users, "test-secret", accessTTL, 0, zerolog.Nop()), users
}

func TestProvider_SignUpThenSignIn(t *testing.T) {
	p, _ := newTestProvider(time.Hour)
	ctx := context.Background()

	created, err := p.SignUp(ctx, "alice@example.com", "Abc12345!", domain.Metadata{
		FullName: "Alice Smith",
		Role:     domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if created.Kind != domain.SessionRemote || created.AccessToken == "" {
		t.Fatalf("sign-up did not issue a remote session: %+v", created)
	}

	sess, err := p.SignInWithPassword(ctx, "alice@example.com", "Abc12345!")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if sess.User.Role != domain.RoleManager || sess.User.FullName != "Alice Smith" {
		t.Fatalf("metadata lost on round-trip: %+v", sess.User)
	}
}

func TestProvider_WrongPassword(t *testing.T) {
	p, _ := newTestProvider(time.Hour)
	ctx := context.Background()

	if _, err := p.SignUp(ctx, "alice@example.com", "Abc12345!", domain.Metadata{Role: domain.RoleTechnician}); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	_, err := p.SignInWithPassword(ctx, "alice@example.com", "wrong")
	if err == nil || err.Error() != "Invalid login credentials" {
		t.Fatalf("expected invalid-login failure, got %v", err)
	}
}

func TestProvider_UnknownUserSameMessage(t *testing.T) {
	p, _ := newTestProvider(time.Hour)

	_, err := p.SignInWithPassword(context.Background(), "ghost@example.com", "whatever")
	if err == nil || err.Error() != "Invalid login credentials" {
		t.Fatalf("unknown user must be indistinguishable from wrong password, got %v", err)
	}
}

func TestProvider_DuplicateSignUp(t *testing.T) {
	p, _ := newTestProvider(time.Hour)
	ctx := context.Background()

	if _, err := p.SignUp(ctx, "alice@example.com", "Abc12345!", domain.Metadata{}); err != nil {
		t.Fatalf("first sign-up failed: %v", err)
	}
	_, err := p.SignUp(ctx, "alice@example.com", "Other123!", domain.Metadata{})
	if err == nil || err.Error() != "User already registered" {
		t.Fatalf("expected already-registered failure, got %v", err)
	}
}

func TestProvider_PasswordsAreHashed(t *testing.T) {
	p, users := newTestProvider(time.Hour)

	if _, err := p.SignUp(context.Background(), "alice@example.com", "Abc12345!", domain.Metadata{}); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	stored := users.byEmail["alice@example.com"]
	if stored.PasswordHash == "Abc12345!" || stored.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
}

func TestProvider_SignOutNotifiesSubscribers(t *testing.T) {
	p, _ := newTestProvider(time.Hour)
	ctx := context.Background()

	var observed []domain.SessionKind
	unsubscribe := p.SubscribeAuthChanges(func(sess domain.Session) {
		observed = append(observed, sess.Kind)
	})
	defer unsubscribe()

	if _, err := p.SignUp(ctx, "alice@example.com", "Abc12345!", domain.Metadata{}); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if err := p.SignOut(ctx); err != nil {
		t.Fatalf("sign-out failed: %v", err)
	}

	if len(observed) != 2 || observed[0] != domain.SessionRemote || observed[1] != domain.SessionNone {
		t.Fatalf("subscriber saw wrong sequence: %v", observed)
	}
}

func TestProvider_UnsubscribeStopsNotifications(t *testing.T) {
	p, _ := newTestProvider(time.Hour)
	ctx := context.Background()

	calls := 0
	unsubscribe := p.SubscribeAuthChanges(func(domain.Session) { calls++ })
	unsubscribe()
	unsubscribe()

	if _, err := p.SignUp(ctx, "alice@example.com", "Abc12345!", domain.Metadata{}); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if calls != 0 {
		t.Fatalf("unsubscribed callback was invoked %d times", calls)
	}
}

func TestProvider_ExpiredSessionCleared(t *testing.T) {
	p, _ := newTestProvider(time.Millisecond)
	ctx := context.Background()

	if _, err := p.SignUp(ctx, "alice@example.com", "Abc12345!", domain.Metadata{}); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	sess, err := p.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("current session failed: %v", err)
	}
	if sess.Kind != domain.SessionNone {
		t.Fatalf("expired session must be cleared, got %s", sess.Kind)
	}
}

func TestProvider_ParseAccessToken(t *testing.T) {
	p, _ := newTestProvider(time.Hour)

	sess, err := p.SignUp(context.Background(), "alice@example.com", "Abc12345!", domain.Metadata{
		FullName: "Alice Smith",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	claims, err := p.ParseAccessToken(sess.AccessToken)
	if err != nil {
		t.Fatalf("token rejected: %v", err)
	}
	if claims["email"] != "alice@example.com" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("claims incomplete: %+v", claims)
	}

	if _, err := p.ParseAccessToken("garbage"); err == nil {
		t.Fatalf("garbage token must be rejected")
	}
}

func TestProvider_ParseAccessTokenWrongSignature(t *testing.T) {
	issuer, _ := newTestProvider(time.Hour)
	verifier := New(newMemoryUsers(), "other-secret", time.Hour, 0, zerolog.Nop())

	sess, err := issuer.SignUp(context.Background(), "alice@example.com", "Abc12345!", domain.Metadata{})
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if _, err := verifier.ParseAccessToken(sess.AccessToken); err == nil {
		t.Fatalf("token signed with another secret must be rejected")
	}
}

func TestProvider_ParseAccessTokenExpired(t *testing.T) {
	p, _ := newTestProvider(time.Millisecond)

	sess, err := p.SignUp(context.Background(), "alice@example.com", "Abc12345!", domain.Metadata{})
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := p.ParseAccessToken(sess.AccessToken); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}
