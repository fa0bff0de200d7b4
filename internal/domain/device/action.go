package device

import (
	"fmt"
	"time"
)

type ActionStatus string

// Only pending is written here; the executing agent moves actions on.
const (
	ActionStatusPending   ActionStatus = "pending"
	ActionStatusCompleted ActionStatus = "completed"
	ActionStatusFailed    ActionStatus = "failed"
)

// Action is one queued instruction for a device.
type Action struct {
	id             uint
	deviceID       string
	organisationID *string
	actionType     ActionType
	payload        map[string]any
	initiatedBy    string
	status         ActionStatus
	createdAt      time.Time
}

// NewPendingAction builds the record handed to the device executor.
func NewPendingAction(d *Device, actionType ActionType, payload map[string]any, initiatedBy string, now time.Time) (*Action, error) {
	if d == nil {
		return nil, fmt.Errorf("device is required")
	}
	if !actionType.IsValid() {
		return nil, fmt.Errorf("unknown action type: %s", actionType)
	}
	if initiatedBy == "" {
		return nil, fmt.Errorf("initiator is required")
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return &Action{
		deviceID:       d.ID(),
		organisationID: d.OrganisationID(),
		actionType:     actionType,
		payload:        payload,
		initiatedBy:    initiatedBy,
		status:         ActionStatusPending,
		createdAt:      now,
	}, nil
}

func ReconstructAction(
	id uint,
	deviceID string,
	organisationID *string,
	actionType ActionType,
	payload map[string]any,
	initiatedBy string,
	status ActionStatus,
	createdAt time.Time,
) *Action {
	return &Action{
		id:             id,
		deviceID:       deviceID,
		organisationID: organisationID,
		actionType:     actionType,
		payload:        payload,
		initiatedBy:    initiatedBy,
		status:         status,
		createdAt:      createdAt,
	}
}

func (a *Action) ID() uint                { return a.id }
func (a *Action) DeviceID() string        { return a.deviceID }
func (a *Action) OrganisationID() *string { return a.organisationID }
func (a *Action) Type() ActionType        { return a.actionType }
func (a *Action) Payload() map[string]any { return a.payload }
func (a *Action) InitiatedBy() string     { return a.initiatedBy }
func (a *Action) Status() ActionStatus    { return a.status }
func (a *Action) CreatedAt() time.Time    { return a.createdAt }

func (a *Action) SetID(id uint) { a.id = id }
