package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/appmaster-hq/appmaster/internal/domain/user"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

var baseTime = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

// memoryUserRepository keeps users by ID and assigns IDs on Create.
type memoryUserRepository struct {
	mu        sync.Mutex
	users     map[uint]*user.User
	nextID    uint
	CreateErr error
	UpdateErr error
	updates   int
}

func newMemoryUserRepository(users ...*user.User) *memoryUserRepository {
	r := &memoryUserRepository{users: make(map[uint]*user.User), nextID: 100}
	for _, u := range users {
		r.users[u.ID()] = u
	}
	return r
}

func (r *memoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.nextID++
	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.users[u.ID()] = u
	return nil
}

func (r *memoryUserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.updates++
	r.users[u.ID()] = u
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *memoryUserRepository) find(match func(u *user.User) bool) *user.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			return u
		}
	}
	return nil
}

func (r *memoryUserRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*user.User, error) {
	return r.find(func(u *user.User) bool { return u.AuthUserID() == authUserID }), nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.find(func(u *user.User) bool { return u.Email().String() == email }), nil
}

func (r *memoryUserRepository) GetByConfirmationToken(ctx context.Context, token string) (*user.User, error) {
	return r.find(func(u *user.User) bool {
		return u.ConfirmationToken() != nil && *u.ConfirmationToken() == token
	}), nil
}

func (r *memoryUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, _ := r.GetByID(ctx, id); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

type mockSessionRepository struct {
	mu        sync.Mutex
	sessions  map[string]*user.Session
	DeleteErr error
}

func newMockSessionRepository(sessions ...*user.Session) *mockSessionRepository {
	m := &mockSessionRepository{sessions: make(map[string]*user.Session)}
	for _, s := range sessions {
		m.sessions[s.ID] = s
	}
	return m
}

func (m *mockSessionRepository) Create(ctx context.Context, s *user.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id string) (*user.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id], nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

type mockOrganisationRepository struct {
	created []*user.Organisation
}

func (m *mockOrganisationRepository) Create(ctx context.Context, o *user.Organisation) error {
	m.created = append(m.created, o)
	return nil
}

func (m *mockOrganisationRepository) GetByID(ctx context.Context, id string) (*user.Organisation, error) {
	for _, o := range m.created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

// plainHasher stores passwords with a fixed prefix.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	issued []string
}

func (m *mockTokenIssuer) Issue(authUserID, sessionID string, role authorization.UserRole) (string, time.Time, error) {
	m.issued = append(m.issued, sessionID)
	return "token-" + authUserID, baseTime.Add(15 * time.Minute), nil
}

type mockMailer struct {
	sent    []string
	SendErr error
}

func (m *mockMailer) SendConfirmationEmail(to, name, token string) error {
	m.sent = append(m.sent, to)
	return m.SendErr
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func testUser(confirmed bool) *user.User {
	org := "org-1"
	u, err := user.ReconstructUser(user.UserData{
		ID:             3,
		AuthUserID:     "auth-3",
		Email:          "john@example.com",
		Name:           "John Doe",
		Phone:          "555-0100",
		PasswordHash:   "hashed:secret1",
		AccountType:    "personal",
		Role:           "admin",
		OrganisationID: &org,
		TenantID:       &org,
		EmailConfirmed: confirmed,
		CreatedAt:      baseTime,
		UpdatedAt:      baseTime,
	})
	if err != nil {
		panic(err)
	}
	return u
}
