package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "github.com/appmaster-hq/appmaster/internal/domain/user/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

// User is an account holder. AuthUserID is the stable external identifier
// that device actions and profile keys refer to.
type User struct {
	id                uint
	authUserID        string
	email             *vo.Email
	name              string
	phone             string
	company           string
	passwordHash      string
	accountType       vo.AccountType
	role              authorization.UserRole
	userType          string
	appmasterRole     *string
	organisationID    *string
	tenantID          *string
	emailConfirmed    bool
	confirmationToken *string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewUser registers an unconfirmed user with a fresh auth user ID and
// confirmation token.
func NewUser(email *vo.Email, name, passwordHash string, accountType vo.AccountType, organisationID *string, now time.Time) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !accountType.IsValid() {
		return nil, fmt.Errorf("invalid account type: %s", accountType)
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	// The first member of an organization, and every personal account, owns it.
	return &User{
		authUserID:        uuid.NewString(),
		email:             email,
		name:              strings.TrimSpace(name),
		passwordHash:      passwordHash,
		accountType:       accountType,
		role:              authorization.RoleAdmin,
		organisationID:    organisationID,
		tenantID:          organisationID,
		confirmationToken: &token,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// UserData carries persisted state into ReconstructUser.
type UserData struct {
	ID                uint
	AuthUserID        string
	Email             string
	Name              string
	Phone             string
	Company           string
	PasswordHash      string
	AccountType       string
	Role              string
	UserType          string
	AppmasterRole     *string
	OrganisationID    *string
	TenantID          *string
	EmailConfirmed    bool
	ConfirmationToken *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func ReconstructUser(d UserData) (*User, error) {
	if d.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	email, err := vo.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	accountType := vo.AccountType(d.AccountType)
	if !accountType.IsValid() {
		accountType = vo.AccountTypePersonal
	}
	return &User{
		id:                d.ID,
		authUserID:        d.AuthUserID,
		email:             email,
		name:              d.Name,
		phone:             d.Phone,
		company:           d.Company,
		passwordHash:      d.PasswordHash,
		accountType:       accountType,
		role:              authorization.ParseUserRole(d.Role),
		userType:          d.UserType,
		appmasterRole:     d.AppmasterRole,
		organisationID:    d.OrganisationID,
		tenantID:          d.TenantID,
		emailConfirmed:    d.EmailConfirmed,
		confirmationToken: d.ConfirmationToken,
		createdAt:         d.CreatedAt,
		updatedAt:         d.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) AuthUserID() string           { return u.authUserID }
func (u *User) Email() *vo.Email             { return u.email }
func (u *User) Name() string                 { return u.name }
func (u *User) Phone() string                { return u.phone }
func (u *User) Company() string              { return u.company }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) AccountType() vo.AccountType  { return u.accountType }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) UserType() string             { return u.userType }
func (u *User) AppmasterRole() *string       { return u.appmasterRole }
func (u *User) OrganisationID() *string      { return u.organisationID }
func (u *User) TenantID() *string            { return u.tenantID }
func (u *User) EmailConfirmed() bool         { return u.emailConfirmed }
func (u *User) ConfirmationToken() *string   { return u.confirmationToken }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}

// UpdateContact changes the fields editable on the personal info page.
func (u *User) UpdateContact(name, phone string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(phone) > 50 {
		return fmt.Errorf("phone exceeds maximum length of 50 characters")
	}
	u.name = name
	u.phone = strings.TrimSpace(phone)
	u.updatedAt = now
	return nil
}

// UpdateProfile changes the fields editable on the settings page.
func (u *User) UpdateProfile(name string, email *vo.Email, company string, now time.Time) error {
	if email == nil {
		return fmt.Errorf("email is required")
	}
	if err := u.UpdateContact(name, u.phone, now); err != nil {
		return err
	}
	u.email = email
	u.company = strings.TrimSpace(company)
	return nil
}

// ConfirmEmail consumes token. It fails when the token does not match.
func (u *User) ConfirmEmail(token string, now time.Time) error {
	if u.confirmationToken == nil || *u.confirmationToken != token {
		return fmt.Errorf("invalid confirmation token")
	}
	u.emailConfirmed = true
	u.confirmationToken = nil
	u.updatedAt = now
	return nil
}

// MarkEmailConfirmed is used for accounts created without a mail round trip.
func (u *User) MarkEmailConfirmed() {
	u.emailConfirmed = true
	u.confirmationToken = nil
}

// Initials returns the upper-cased first letters of up to two name parts,
// or "U" when the name is blank.
func (u *User) Initials() string {
	return Initials(u.name)
}

func Initials(name string) string {
	var initials []rune
	for _, part := range strings.Fields(name) {
		initials = append(initials, []rune(strings.ToUpper(part))[0])
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "U"
	}
	return string(initials)
}

func generateToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
