package domain

import "time"

// SessionKind discriminates the current-session variant. Exactly one branch
// is active at a time: there is no state where a demo and a remote session
// are both considered current.
type SessionKind string

const (
	SessionNone   SessionKind = "none"
	SessionDemo   SessionKind = "demo"
	SessionRemote SessionKind = "remote"
)

// Session is the tagged current-session variant. User is nil exactly when
// Kind is SessionNone. Tokens are populated only for remote sessions; demo
// sessions carry fixed placeholder tokens and are never validated remotely.
type Session struct {
	Kind         SessionKind `json:"kind"`
	User         *User       `json:"user,omitempty"`
	AccessToken  string      `json:"access_token,omitempty"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time   `json:"expires_at,omitempty"`
}

// NoSession is the unauthenticated variant.
func NoSession() Session {
	return Session{Kind: SessionNone}
}

// NewDemoSession fabricates a local stand-in session for the demo user.
func NewDemoSession(user *User) Session {
	return Session{
		Kind:         SessionDemo,
		User:         user,
		AccessToken:  "demo-token",
		RefreshToken: "demo-refresh-token",
	}
}

// NewRemoteSession binds a user to provider-issued tokens.
func NewRemoteSession(user *User, access, refresh string, expiresAt time.Time) Session {
	return Session{
		Kind:         SessionRemote,
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}
}

// Active reports whether a user is currently signed in (demo or remote).
func (s Session) Active() bool {
	return s.Kind != SessionNone && s.User != nil
}
