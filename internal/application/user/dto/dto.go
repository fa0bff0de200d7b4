package dto

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/appmaster-hq/appmaster/internal/domain/user"
)

var titleCaser = cases.Title(language.English)

// CurrentUserDTO identifies the caller and their organisation.
type CurrentUserDTO struct {
	ID             uint    `json:"id"`
	AuthUserID     string  `json:"auth_user_id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	AccountType    string  `json:"account_type"`
	UserType       string  `json:"user_type,omitempty"`
	AppmasterRole  *string `json:"appmaster_role,omitempty"`
	OrganisationID *string `json:"organisation_id"`
	TenantID       *string `json:"tenant_id"`
	EmailConfirmed bool    `json:"email_confirmed"`
}

func ToCurrentUserDTO(u *user.User) CurrentUserDTO {
	return CurrentUserDTO{
		ID:             u.ID(),
		AuthUserID:     u.AuthUserID(),
		Email:          u.Email().String(),
		Name:           u.Name(),
		Role:           u.Role().String(),
		AccountType:    u.AccountType().String(),
		UserType:       u.UserType(),
		AppmasterRole:  u.AppmasterRole(),
		OrganisationID: u.OrganisationID(),
		TenantID:       u.TenantID(),
		EmailConfirmed: u.EmailConfirmed(),
	}
}

type PersonalInfoDTO struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Initials         string `json:"initials"`
	AccountType      string `json:"account_type"`
	AccountTypeLabel string `json:"account_type_label"`
}

func ToPersonalInfoDTO(u *user.User) PersonalInfoDTO {
	return PersonalInfoDTO{
		Name:             u.Name(),
		Email:            u.Email().String(),
		Phone:            u.Phone(),
		Initials:         u.Initials(),
		AccountType:      u.AccountType().String(),
		AccountTypeLabel: titleCaser.String(u.AccountType().String()) + " Account",
	}
}

type LoginDTO struct {
	AccessToken string         `json:"access_token"`
	ExpiresAt   time.Time      `json:"expires_at"`
	User        CurrentUserDTO `json:"user"`
}
