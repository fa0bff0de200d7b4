package setting

import "context"

type Repository interface {
	// GetByUserID returns nil, nil when the user never saved settings.
	GetByUserID(ctx context.Context, userID uint) (*UserSettings, error)
	Upsert(ctx context.Context, s *UserSettings) error
}
