package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createEquipmentRequest{Name: "Conveyor A"})
	if err == nil {
		t.Fatalf("expected violations for missing fields")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Serial number is required") {
		t.Fatalf("expected humanized json field name, got %q", msg)
	}
	if !strings.Contains(msg, "Location is required") {
		t.Fatalf("expected location violation, got %q", msg)
	}
}

func TestValidator_OneOfListsValues(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createEquipmentRequest{
		Name:         "Conveyor A",
		SerialNumber: "CNV-001",
		Location:     "Hall 2",
		Status:       "broken",
	})
	if err == nil {
		t.Fatalf("expected violation for unknown status")
	}
	if !strings.Contains(err.Error(), "Status must be one of: operational, maintenance, repair") {
		t.Fatalf("expected enumerated statuses, got %q", err.Error())
	}
}

func TestValidator_ValidPayloadPasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createEquipmentRequest{
		Name:         "Conveyor A",
		SerialNumber: "CNV-001",
		Location:     "Hall 2",
	})
	if err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}
