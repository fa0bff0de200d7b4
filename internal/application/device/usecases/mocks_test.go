package usecases

import (
	"context"
	"time"

	"github.com/appmaster-hq/appmaster/internal/domain/device"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type mockDeviceRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*device.Device, error)
	ListFunc    func(ctx context.Context, organisationID *string) ([]*device.Device, error)
}

func (m *mockDeviceRepository) GetByID(ctx context.Context, id string) (*device.Device, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDeviceRepository) List(ctx context.Context, organisationID *string) ([]*device.Device, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, organisationID)
	}
	return nil, nil
}

func (m *mockDeviceRepository) Create(ctx context.Context, d *device.Device) error {
	return nil
}

type mockActionRepository struct {
	CreateFunc       func(ctx context.Context, a *device.Action) error
	ListByDeviceFunc func(ctx context.Context, deviceID string) ([]*device.Action, error)
	created          []*device.Action
}

func (m *mockActionRepository) Create(ctx context.Context, a *device.Action) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, a); err != nil {
			return err
		}
	}
	a.SetID(uint(len(m.created) + 1))
	m.created = append(m.created, a)
	return nil
}

func (m *mockActionRepository) ListByDevice(ctx context.Context, deviceID string) ([]*device.Action, error) {
	if m.ListByDeviceFunc != nil {
		return m.ListByDeviceFunc(ctx, deviceID)
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func testDevice(orgID string) *device.Device {
	return device.ReconstructDevice("dev_1", "Front Desk PC", "frontdesk-01", strPtr(orgID), nil, baseTime)
}

func deviceRepoWith(d *device.Device) *mockDeviceRepository {
	return &mockDeviceRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*device.Device, error) {
			if id == d.ID() {
				return d, nil
			}
			return nil, nil
		},
	}
}

var orgSession = &authorization.Session{UserID: 3, AuthUserID: "auth-3", OrganisationID: strPtr("org-1")}
