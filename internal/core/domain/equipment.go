package domain

import (
	"errors"
	"time"
)

// EquipmentStatus represents the operational state of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentOperational EquipmentStatus = "operational"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentRepair      EquipmentStatus = "repair"
)

var ErrEquipmentNotFound = errors.New("equipment not found")
var ErrDuplicateSerial = errors.New("equipment with this serial number already exists")

// ValidEquipmentStatus reports whether status is a known equipment state.
func ValidEquipmentStatus(status EquipmentStatus) bool {
	switch status {
	case EquipmentOperational, EquipmentMaintenance, EquipmentRepair:
		return true
	}
	return false
}

// Equipment is a tracked asset on the maintenance dashboard.
type Equipment struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SerialNumber string          `json:"serial_number"`
	Status       EquipmentStatus `json:"status"`
	Location     string          `json:"location"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
