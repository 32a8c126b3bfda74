package service

import (
	"context"
	"time"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// DashboardService aggregates collection counts for the landing page.
type DashboardService struct {
	equipment ports.EquipmentRepository
	requests  ports.MaintenanceRepository
}

func NewDashboardService(equipment ports.EquipmentRepository, requests ports.MaintenanceRepository) *DashboardService {
	return &DashboardService{equipment: equipment, requests: requests}
}

func (s *DashboardService) Stats(ctx context.Context) (ports.DashboardStats, error) {
	total, err := s.equipment.Count(ctx)
	if err != nil {
		return ports.DashboardStats{}, err
	}
	pending, err := s.requests.CountByStage(ctx, domain.StageNew)
	if err != nil {
		return ports.DashboardStats{}, err
	}
	inProgress, err := s.requests.CountByStage(ctx, domain.StageInProgress)
	if err != nil {
		return ports.DashboardStats{}, err
	}
	completed, err := s.requests.CountByStage(ctx, domain.StageRepaired)
	if err != nil {
		return ports.DashboardStats{}, err
	}

	return ports.DashboardStats{
		TotalEquipment: total,
		PendingTasks:   pending,
		InProgress:     inProgress,
		Completed:      completed,
	}, nil
}

// RecentActivity flattens the latest stage history entries of recently
// updated requests into a feed, newest first.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]ports.ActivityEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	recent, err := s.requests.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.ActivityEntry, 0, len(recent))
	for _, req := range recent {
		if len(req.StageHistory) == 0 {
			continue
		}
		last := req.StageHistory[len(req.StageHistory)-1]
		entries = append(entries, ports.ActivityEntry{
			RequestID:     req.ID,
			EquipmentName: req.EquipmentName,
			Stage:         last.Stage,
			Timestamp:     last.Timestamp.UTC().Format(time.RFC3339),
			Notes:         last.Notes,
		})
	}
	return entries, nil
}
