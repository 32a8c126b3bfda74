package ports

import (
	"context"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// EquipmentFilter narrows equipment list queries. Zero values match everything.
type EquipmentFilter struct {
	Status domain.EquipmentStatus
	Search string // matches name or serial number
}

// EquipmentRepository is the persistence port for tracked assets.
type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	FindByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context, filter EquipmentFilter) ([]domain.Equipment, error)
	UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateEquipmentInput carries the fields of a new asset.
type CreateEquipmentInput struct {
	Name         string
	SerialNumber string
	Status       domain.EquipmentStatus
	Location     string
}

// EquipmentService exposes the equipment page operations.
type EquipmentService interface {
	Create(ctx context.Context, input CreateEquipmentInput) (*domain.Equipment, error)
	Get(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context, filter EquipmentFilter) ([]domain.Equipment, error)
	Delete(ctx context.Context, id string) error
}
