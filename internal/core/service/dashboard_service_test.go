package service

import (
	"context"
	"testing"
	"time"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

func TestDashboardStats(t *testing.T) {
	equipment := newFakeEquipmentRepo()
	equipment.items["a"] = &domain.Equipment{ID: "a"}
	equipment.items["b"] = &domain.Equipment{ID: "b"}

	requests := newFakeMaintenanceRepo()
	requests.items["r1"] = &domain.MaintenanceRequest{ID: "r1", Stage: domain.StageNew}
	requests.items["r2"] = &domain.MaintenanceRequest{ID: "r2", Stage: domain.StageInProgress}
	requests.items["r3"] = &domain.MaintenanceRequest{ID: "r3", Stage: domain.StageRepaired}
	requests.items["r4"] = &domain.MaintenanceRequest{ID: "r4", Stage: domain.StageRepaired}

	svc := NewDashboardService(equipment, requests)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalEquipment != 2 {
		t.Fatalf("expected 2 assets, got %d", stats.TotalEquipment)
	}
	if stats.PendingTasks != 1 || stats.InProgress != 1 || stats.Completed != 2 {
		t.Fatalf("wrong stage counts: %+v", stats)
	}
}

func TestDashboardRecentActivity(t *testing.T) {
	equipment := newFakeEquipmentRepo()
	requests := newFakeMaintenanceRepo()

	now := time.Now().UTC()
	requests.items["r1"] = &domain.MaintenanceRequest{
		ID:            "r1",
		EquipmentName: "Forklift 3",
		StageHistory: []domain.StageHistoryEntry{
			{Stage: domain.StageNew, Timestamp: now.Add(-time.Hour)},
			{Stage: domain.StageInProgress, Timestamp: now, Notes: "picked up"},
		},
	}
	// No history; must be skipped rather than rendered as an empty line.
	requests.items["r2"] = &domain.MaintenanceRequest{ID: "r2"}

	svc := NewDashboardService(equipment, requests)
	entries, err := svc.RecentActivity(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent activity failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Stage != domain.StageInProgress {
		t.Fatalf("feed must show the latest stage, got %s", entry.Stage)
	}
	if entry.EquipmentName != "Forklift 3" || entry.Notes != "picked up" {
		t.Fatalf("entry fields wrong: %+v", entry)
	}
	if entry.Timestamp != now.Format(time.RFC3339) {
		t.Fatalf("timestamp not RFC3339: %q", entry.Timestamp)
	}
}
