package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	// The Get methods return nil, nil when no user matches.
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByAuthUserID(ctx context.Context, authUserID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByConfirmationToken(ctx context.Context, token string) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// GetByID returns nil, nil for unknown sessions.
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type OrganisationRepository interface {
	Create(ctx context.Context, o *Organisation) error
	GetByID(ctx context.Context, id string) (*Organisation, error)
}
