package device

import (
	"fmt"
	"strings"
	"time"
)

// Device is a managed endpoint that polls for queued actions.
type Device struct {
	id             string
	name           string
	hostname       string
	organisationID *string
	lastSeenAt     *time.Time
	createdAt      time.Time
}

func NewDevice(id, name, hostname string, organisationID *string, now time.Time) (*Device, error) {
	if id == "" {
		return nil, fmt.Errorf("device ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("device name is required")
	}
	return &Device{
		id:             id,
		name:           name,
		hostname:       hostname,
		organisationID: organisationID,
		createdAt:      now,
	}, nil
}

func ReconstructDevice(id, name, hostname string, organisationID *string, lastSeenAt *time.Time, createdAt time.Time) *Device {
	return &Device{
		id:             id,
		name:           name,
		hostname:       hostname,
		organisationID: organisationID,
		lastSeenAt:     lastSeenAt,
		createdAt:      createdAt,
	}
}

func (d *Device) ID() string              { return d.id }
func (d *Device) Name() string            { return d.name }
func (d *Device) Hostname() string        { return d.hostname }
func (d *Device) OrganisationID() *string { return d.organisationID }
func (d *Device) LastSeenAt() *time.Time  { return d.lastSeenAt }
func (d *Device) CreatedAt() time.Time    { return d.createdAt }
