package ports

import (
	"context"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// TeamRepository is the persistence port for maintenance crews.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	// AdjustTasks atomically adds the deltas to the team's task counters.
	AdjustTasks(ctx context.Context, id string, activeDelta, completedDelta int) error
	Delete(ctx context.Context, id string) error
}

// CreateTeamInput carries the fields of a new team.
type CreateTeamInput struct {
	Name    string
	Members int
}

// TeamService exposes the teams page operations.
type TeamService interface {
	Create(ctx context.Context, input CreateTeamInput) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Delete(ctx context.Context, id string) error
}
