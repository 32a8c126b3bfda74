package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// TeamService implements the teams page operations.
type TeamService struct {
	repo   ports.TeamRepository
	logger zerolog.Logger
}

func NewTeamService(repo ports.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) Create(ctx context.Context, input ports.CreateTeamInput) (*domain.Team, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("Team name is required")
	}
	if input.Members < 0 {
		return nil, domain.NewValidationError("Members must not be negative")
	}

	now := time.Now().UTC()
	team := &domain.Team{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Members:   input.Members,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, team); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create team")
		return nil, err
	}

	s.logger.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("team created")
	return team, nil
}

func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.repo.List(ctx)
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("team_id", id).Msg("team deleted")
	return nil
}
