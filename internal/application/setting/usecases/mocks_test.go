package usecases

import (
	"context"
	"time"

	"github.com/appmaster-hq/appmaster/internal/domain/setting"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
)

var baseTime = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

type mockUserRepository struct {
	user.Repository
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
	UpdateFunc  func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

type mockSettingRepository struct {
	GetByUserIDFunc func(ctx context.Context, userID uint) (*setting.UserSettings, error)
	UpsertFunc      func(ctx context.Context, s *setting.UserSettings) error
}

func (m *mockSettingRepository) GetByUserID(ctx context.Context, userID uint) (*setting.UserSettings, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSettingRepository) Upsert(ctx context.Context, s *setting.UserSettings) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, s)
	}
	return nil
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func testUser() *user.User {
	u, err := user.ReconstructUser(user.UserData{
		ID:          3,
		AuthUserID:  "auth-3",
		Email:       "john@example.com",
		Name:        "John Doe",
		Company:     "Acme Corp",
		AccountType: "personal",
		CreatedAt:   baseTime,
		UpdatedAt:   baseTime,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }
