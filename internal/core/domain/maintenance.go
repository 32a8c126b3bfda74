package domain

import (
	"errors"
	"time"
)

// RequestStage represents the lifecycle state of a maintenance request.
type RequestStage string

const (
	StageNew        RequestStage = "new"
	StageInProgress RequestStage = "in_progress"
	StageRepaired   RequestStage = "repaired"
	StageCancelled  RequestStage = "cancelled"
)

// RequestType classifies why maintenance was requested.
type RequestType string

const (
	TypePreventive RequestType = "preventive"
	TypeCorrective RequestType = "corrective"
	TypeInspection RequestType = "inspection"
)

// RequestPriority orders requests on the dashboard.
type RequestPriority string

const (
	PriorityHigh   RequestPriority = "high"
	PriorityMedium RequestPriority = "medium"
	PriorityLow    RequestPriority = "low"
)

// validStageTransitions defines the allowed state machine transitions.
var validStageTransitions = map[RequestStage][]RequestStage{
	StageNew:        {StageInProgress, StageCancelled},
	StageInProgress: {StageRepaired, StageCancelled},
}

var ErrRequestNotFound = errors.New("maintenance request not found")
var ErrInvalidStageTransition = errors.New("invalid stage transition")

// CanTransitionTo reports whether a transition from the current stage to next is valid.
func (s RequestStage) CanTransitionTo(next RequestStage) bool {
	for _, allowed := range validStageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidRequestType reports whether t is a known maintenance type.
func ValidRequestType(t RequestType) bool {
	switch t {
	case TypePreventive, TypeCorrective, TypeInspection:
		return true
	}
	return false
}

// ValidRequestPriority reports whether p is a known priority.
func ValidRequestPriority(p RequestPriority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// StageHistoryEntry records a single stage transition on a request.
type StageHistoryEntry struct {
	Stage     RequestStage `json:"stage" bson:"stage"`
	Timestamp time.Time    `json:"timestamp" bson:"timestamp"`
	Notes     string       `json:"notes,omitempty" bson:"notes,omitempty"`
}

// MaintenanceRequest is the core aggregate of the maintenance module.
type MaintenanceRequest struct {
	ID            string              `json:"id"`
	EquipmentID   string              `json:"equipment_id"`
	EquipmentName string              `json:"equipment_name"`
	TeamID        string              `json:"team_id,omitempty"`
	Type          RequestType         `json:"type"`
	Priority      RequestPriority     `json:"priority"`
	Stage         RequestStage        `json:"stage"`
	Description   string              `json:"description,omitempty"`
	ScheduledFor  time.Time           `json:"scheduled_for"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	StageHistory  []StageHistoryEntry `json:"stage_history"`
}
