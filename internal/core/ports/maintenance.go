package ports

import (
	"context"
	"time"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// RequestFilter narrows maintenance request list queries. Zero values match
// everything.
type RequestFilter struct {
	Stage       domain.RequestStage
	Priority    domain.RequestPriority
	EquipmentID string
}

// MaintenanceRepository is the persistence port for maintenance requests.
type MaintenanceRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) error
	FindByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]domain.MaintenanceRequest, error)
	Update(ctx context.Context, req *domain.MaintenanceRequest) error
	Delete(ctx context.Context, id string) error
	CountByStage(ctx context.Context, stage domain.RequestStage) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.MaintenanceRequest, error)
}

// CreateRequestInput carries the fields of a new maintenance request.
type CreateRequestInput struct {
	EquipmentID  string
	TeamID       string
	Type         domain.RequestType
	Priority     domain.RequestPriority
	Description  string
	ScheduledFor time.Time
}

// MaintenanceService exposes the maintenance page operations.
type MaintenanceService interface {
	Create(ctx context.Context, input CreateRequestInput) (*domain.MaintenanceRequest, error)
	Get(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]domain.MaintenanceRequest, error)
	Transition(ctx context.Context, id string, next domain.RequestStage, notes string) (*domain.MaintenanceRequest, error)
	Delete(ctx context.Context, id string) error
}
