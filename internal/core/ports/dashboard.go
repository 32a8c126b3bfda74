package ports

import (
	"context"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

// DashboardStats is the aggregate snapshot rendered on the dashboard.
type DashboardStats struct {
	TotalEquipment int64 `json:"total_equipment"`
	PendingTasks   int64 `json:"pending_tasks"`
	InProgress     int64 `json:"in_progress"`
	Completed      int64 `json:"completed"`
}

// ActivityEntry is one line of the recent-activity feed.
type ActivityEntry struct {
	RequestID     string              `json:"request_id"`
	EquipmentName string              `json:"equipment_name"`
	Stage         domain.RequestStage `json:"stage"`
	Timestamp     string              `json:"timestamp"`
	Notes         string              `json:"notes,omitempty"`
}

// DashboardService aggregates collection counts for the landing page.
type DashboardService interface {
	Stats(ctx context.Context) (DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error)
}
