package domain

import "time"

// Profile is a denormalized copy of a user's identity and role, written to
// its own collection at sign-up time. It backs the duplicate-email pre-check
// and display-name joins; it is not kept consistent with later auth-side
// metadata edits.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
