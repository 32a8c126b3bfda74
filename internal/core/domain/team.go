package domain

import (
	"errors"
	"time"
)

var ErrTeamNotFound = errors.New("team not found")

// Team is a maintenance crew with aggregate task counters. ActiveTasks and
// CompletedTasks are adjusted when requests assigned to the team move
// through their stage machine.
type Team struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Members        int       `json:"members"`
	ActiveTasks    int       `json:"active_tasks"`
	CompletedTasks int       `json:"completed_tasks"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
