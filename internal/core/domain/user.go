package domain

import (
	"errors"
	"time"
)

const (
	RoleTechnician = "technician"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role is one the system understands.
func ValidRole(role string) bool {
	switch role {
	case RoleTechnician, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User models an authenticated actor. FullName and Role are the metadata
// fields attached at sign-up time.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	Demo         bool      `json:"is_demo_user,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Metadata is the free-form profile payload attached to a sign-up call.
type Metadata struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already registered")
