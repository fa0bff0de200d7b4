package mappers

import (
	"gorm.io/datatypes"

	"github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
)

func DeviceToModel(d *device.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:             d.ID(),
		Name:           d.Name(),
		Hostname:       d.Hostname(),
		OrganisationID: d.OrganisationID(),
		LastSeenAt:     d.LastSeenAt(),
		CreatedAt:      d.CreatedAt(),
	}
}

func DeviceToDomain(m *models.DeviceModel) *device.Device {
	return device.ReconstructDevice(m.ID, m.Name, m.Hostname, m.OrganisationID, m.LastSeenAt, m.CreatedAt)
}

func DeviceActionToModel(a *device.Action) *models.DeviceActionModel {
	return &models.DeviceActionModel{
		ID:             a.ID(),
		DeviceID:       a.DeviceID(),
		OrganisationID: a.OrganisationID(),
		ActionType:     string(a.Type()),
		ActionPayload:  datatypes.JSONMap(a.Payload()),
		InitiatedBy:    a.InitiatedBy(),
		Status:         string(a.Status()),
		CreatedAt:      a.CreatedAt(),
	}
}

func DeviceActionToDomain(m *models.DeviceActionModel) *device.Action {
	payload := map[string]any(m.ActionPayload)
	if payload == nil {
		payload = map[string]any{}
	}
	return device.ReconstructAction(
		m.ID,
		m.DeviceID,
		m.OrganisationID,
		device.ActionType(m.ActionType),
		payload,
		m.InitiatedBy,
		device.ActionStatus(m.Status),
		m.CreatedAt,
	)
}
