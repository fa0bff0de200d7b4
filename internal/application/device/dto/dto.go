package dto

import (
	"time"

	"github.com/appmaster-hq/appmaster/internal/domain/device"
)

type DeviceDTO struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Hostname   string     `json:"hostname"`
	LastSeenAt *time.Time `json:"last_seen_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToDeviceDTO(d *device.Device) DeviceDTO {
	return DeviceDTO{
		ID:         d.ID(),
		Name:       d.Name(),
		Hostname:   d.Hostname(),
		LastSeenAt: d.LastSeenAt(),
		CreatedAt:  d.CreatedAt(),
	}
}

type ActionDTO struct {
	ID          uint           `json:"id"`
	DeviceID    string         `json:"device_id"`
	ActionType  string         `json:"action_type"`
	ActionLabel string         `json:"action_label"`
	Payload     map[string]any `json:"action_payload"`
	InitiatedBy string         `json:"initiated_by"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

func ToActionDTO(a *device.Action) ActionDTO {
	label := a.Type().String()
	if def, ok := a.Type().Definition(); ok {
		label = def.Label
	}
	payload := a.Payload()
	if payload == nil {
		payload = map[string]any{}
	}
	return ActionDTO{
		ID:          a.ID(),
		DeviceID:    a.DeviceID(),
		ActionType:  a.Type().String(),
		ActionLabel: label,
		Payload:     payload,
		InitiatedBy: a.InitiatedBy(),
		Status:      string(a.Status()),
		CreatedAt:   a.CreatedAt(),
	}
}

// ActionItemDTO is one entry of the device action menu.
type ActionItemDTO struct {
	Type                 string `json:"type"`
	Label                string `json:"label"`
	Description          string `json:"description"`
	RequiresInput        bool   `json:"requires_input"`
	InputField           string `json:"input_field,omitempty"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
	Dangerous            bool   `json:"dangerous"`
}

// CatalogDTO lists the menu groups in display order.
type CatalogDTO struct {
	Groups [][]ActionItemDTO `json:"groups"`
}

func ToCatalogDTO(groups [][]device.ActionType) CatalogDTO {
	out := CatalogDTO{Groups: make([][]ActionItemDTO, 0, len(groups))}
	for _, group := range groups {
		items := make([]ActionItemDTO, 0, len(group))
		for _, t := range group {
			def, ok := t.Definition()
			if !ok {
				continue
			}
			items = append(items, ActionItemDTO{
				Type:                 def.Type.String(),
				Label:                def.Label,
				Description:          def.Description,
				RequiresInput:        def.RequiresInput(),
				InputField:           def.InputField,
				RequiresConfirmation: def.RequiresConfirmation(),
				Dangerous:            def.Dangerous,
			})
		}
		out.Groups = append(out.Groups, items)
	}
	return out
}
