package device

import "context"

type Repository interface {
	// GetByID returns nil, nil for unknown devices.
	GetByID(ctx context.Context, id string) (*Device, error)
	// List returns devices by name. A nil organisationID selects devices
	// that belong to no organisation.
	List(ctx context.Context, organisationID *string) ([]*Device, error)
	Create(ctx context.Context, d *Device) error
}

type ActionRepository interface {
	// Create inserts exactly one action row.
	Create(ctx context.Context, a *Action) error
	// ListByDevice returns a device's actions newest first.
	ListByDevice(ctx context.Context, deviceID string) ([]*Action, error)
}
