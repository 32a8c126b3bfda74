package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

func TestEquipmentCreate_DefaultsToOperational(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	eq, err := svc.Create(context.Background(), ports.CreateEquipmentInput{
		Name:         "Conveyor A",
		SerialNumber: "CNV-001",
		Location:     "Hall 2",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if eq.Status != domain.EquipmentOperational {
		t.Fatalf("expected operational default, got %s", eq.Status)
	}
	if eq.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestEquipmentCreate_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateEquipmentInput{
		Name:         "Conveyor A",
		SerialNumber: "CNV-001",
		Status:       "broken",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("invalid equipment must not be persisted")
	}
}

func TestEquipmentCreate_DuplicateSerialSurfaces(t *testing.T) {
	repo := newFakeEquipmentRepo()
	repo.createErr = domain.ErrDuplicateSerial
	svc := NewEquipmentService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateEquipmentInput{
		Name:         "Conveyor A",
		SerialNumber: "CNV-001",
	})
	if !errors.Is(err, domain.ErrDuplicateSerial) {
		t.Fatalf("expected ErrDuplicateSerial, got %v", err)
	}
}

func TestEquipmentList_ValidatesStatusFilter(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	_, err := svc.List(context.Background(), ports.EquipmentFilter{Status: "scrapped"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEquipmentList_FiltersByStatus(t *testing.T) {
	repo := newFakeEquipmentRepo()
	repo.items["a"] = &domain.Equipment{ID: "a", Status: domain.EquipmentOperational}
	repo.items["b"] = &domain.Equipment{ID: "b", Status: domain.EquipmentMaintenance}
	svc := NewEquipmentService(repo, zerolog.Nop())

	out, err := svc.List(context.Background(), ports.EquipmentFilter{Status: domain.EquipmentMaintenance})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("filter returned wrong rows: %+v", out)
	}
}

func TestEquipmentDelete_UnknownID(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewEquipmentService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrEquipmentNotFound) {
		t.Fatalf("expected ErrEquipmentNotFound, got %v", err)
	}
}
