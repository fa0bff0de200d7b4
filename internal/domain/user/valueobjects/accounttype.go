package valueobjects

import "fmt"

// AccountType separates individual sign-ups from organization accounts.
type AccountType string

const (
	AccountTypePersonal     AccountType = "personal"
	AccountTypeOrganization AccountType = "organization"
)

func (a AccountType) String() string { return string(a) }

func (a AccountType) IsValid() bool {
	return a == AccountTypePersonal || a == AccountTypeOrganization
}

func (a AccountType) IsPersonal() bool { return a == AccountTypePersonal }

func NewAccountType(s string) (AccountType, error) {
	a := AccountType(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid account type: %s", s)
	}
	return a, nil
}
