package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/api/metrics"
	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// MaintenanceService implements the maintenance request operations,
// including the stage state machine and its side effects on equipment
// status and team task counters.
type MaintenanceService struct {
	repo      ports.MaintenanceRepository
	equipment ports.EquipmentRepository
	teams     ports.TeamRepository
	logger    zerolog.Logger
}

func NewMaintenanceService(
	repo ports.MaintenanceRepository,
	equipment ports.EquipmentRepository,
	teams ports.TeamRepository,
	logger zerolog.Logger,
) *MaintenanceService {
	return &MaintenanceService{repo: repo, equipment: equipment, teams: teams, logger: logger}
}

func (s *MaintenanceService) Create(ctx context.Context, input ports.CreateRequestInput) (*domain.MaintenanceRequest, error) {
	if !domain.ValidRequestType(input.Type) {
		return nil, domain.NewValidationError("Type must be one of: preventive, corrective, inspection")
	}
	if !domain.ValidRequestPriority(input.Priority) {
		return nil, domain.NewValidationError("Priority must be one of: high, medium, low")
	}

	eq, err := s.equipment.FindByID(ctx, input.EquipmentID)
	if err != nil {
		return nil, err
	}

	if input.TeamID != "" {
		if _, err := s.teams.FindByID(ctx, input.TeamID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	scheduled := input.ScheduledFor
	if scheduled.IsZero() {
		scheduled = now
	}

	req := &domain.MaintenanceRequest{
		ID:            uuid.NewString(),
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		TeamID:        input.TeamID,
		Type:          input.Type,
		Priority:      input.Priority,
		Stage:         domain.StageNew,
		Description:   input.Description,
		ScheduledFor:  scheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
		StageHistory: []domain.StageHistoryEntry{
			{Stage: domain.StageNew, Timestamp: now},
		},
	}

	if err := s.repo.Create(ctx, req); err != nil {
		s.logger.Error().Err(err).Str("equipment_id", input.EquipmentID).Msg("failed to create maintenance request")
		return nil, err
	}

	if req.TeamID != "" {
		if err := s.teams.AdjustTasks(ctx, req.TeamID, 1, 0); err != nil {
			s.logger.Warn().Err(err).Str("team_id", req.TeamID).Msg("failed to bump team active tasks")
		}
	}

	s.logger.Info().
		Str("request_id", req.ID).
		Str("equipment_id", req.EquipmentID).
		Str("priority", string(req.Priority)).
		Msg("maintenance request created")
	return req, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MaintenanceService) List(ctx context.Context, filter ports.RequestFilter) ([]domain.MaintenanceRequest, error) {
	return s.repo.List(ctx, filter)
}

// Transition moves a request to its next stage. Moving to in_progress flags
// the equipment as under maintenance; repairing restores it to operational
// and shifts the assigned team's counters from active to completed.
func (s *MaintenanceService) Transition(ctx context.Context, id string, next domain.RequestStage, notes string) (*domain.MaintenanceRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !req.Stage.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStageTransition
	}

	now := time.Now().UTC()
	req.Stage = next
	req.UpdatedAt = now
	req.StageHistory = append(req.StageHistory, domain.StageHistoryEntry{
		Stage:     next,
		Timestamp: now,
		Notes:     notes,
	})

	if err := s.repo.Update(ctx, req); err != nil {
		s.logger.Error().Err(err).Str("request_id", id).Msg("failed to persist stage transition")
		return nil, err
	}

	s.applySideEffects(ctx, req, next)
	metrics.StageTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.logger.Info().Str("request_id", id).Str("stage", string(next)).Msg("stage transition")
	return req, nil
}

func (s *MaintenanceService) applySideEffects(ctx context.Context, req *domain.MaintenanceRequest, next domain.RequestStage) {
	switch next {
	case domain.StageInProgress:
		if err := s.equipment.UpdateStatus(ctx, req.EquipmentID, domain.EquipmentMaintenance); err != nil {
			s.logger.Warn().Err(err).Str("equipment_id", req.EquipmentID).Msg("failed to flag equipment as under maintenance")
		}
	case domain.StageRepaired:
		if err := s.equipment.UpdateStatus(ctx, req.EquipmentID, domain.EquipmentOperational); err != nil {
			s.logger.Warn().Err(err).Str("equipment_id", req.EquipmentID).Msg("failed to restore equipment status")
		}
		if req.TeamID != "" {
			if err := s.teams.AdjustTasks(ctx, req.TeamID, -1, 1); err != nil {
				s.logger.Warn().Err(err).Str("team_id", req.TeamID).Msg("failed to shift team task counters")
			}
		}
	case domain.StageCancelled:
		if req.TeamID != "" {
			if err := s.teams.AdjustTasks(ctx, req.TeamID, -1, 0); err != nil {
				s.logger.Warn().Err(err).Str("team_id", req.TeamID).Msg("failed to drop team active task")
			}
		}
	}
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("request_id", id).Msg("maintenance request deleted")
	return nil
}
