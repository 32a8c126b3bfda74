package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// EquipmentService implements the equipment page operations.
type EquipmentService struct {
	repo   ports.EquipmentRepository
	logger zerolog.Logger
}

func NewEquipmentService(repo ports.EquipmentRepository, logger zerolog.Logger) *EquipmentService {
	return &EquipmentService{repo: repo, logger: logger}
}

func (s *EquipmentService) Create(ctx context.Context, input ports.CreateEquipmentInput) (*domain.Equipment, error) {
	status := input.Status
	if status == "" {
		status = domain.EquipmentOperational
	}
	if !domain.ValidEquipmentStatus(status) {
		return nil, domain.NewValidationError("Status must be one of: operational, maintenance, repair")
	}

	now := time.Now().UTC()
	eq := &domain.Equipment{
		ID:           uuid.NewString(),
		Name:         input.Name,
		SerialNumber: input.SerialNumber,
		Status:       status,
		Location:     input.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, eq); err != nil {
		s.logger.Error().Err(err).Str("serial_number", input.SerialNumber).Msg("failed to create equipment")
		return nil, err
	}

	s.logger.Info().Str("equipment_id", eq.ID).Str("serial_number", eq.SerialNumber).Msg("equipment created")
	return eq, nil
}

func (s *EquipmentService) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EquipmentService) List(ctx context.Context, filter ports.EquipmentFilter) ([]domain.Equipment, error) {
	if filter.Status != "" && !domain.ValidEquipmentStatus(filter.Status) {
		return nil, domain.NewValidationError("Status must be one of: operational, maintenance, repair")
	}
	return s.repo.List(ctx, filter)
}

func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("equipment_id", id).Msg("equipment deleted")
	return nil
}
