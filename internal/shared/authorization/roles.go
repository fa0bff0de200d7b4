package authorization

// UserRole is a user's role inside their organisation.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// UserTypeAppmasterAdmin marks platform operators; they see the admin panel
// link regardless of organisation role.
const UserTypeAppmasterAdmin = "appmaster_admin"

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool { return r == RoleAdmin }

func (r UserRole) IsValid() bool { return r == RoleAdmin || r == RoleMember }

// ParseUserRole falls back to member for unknown values.
func ParseUserRole(s string) UserRole {
	if r := UserRole(s); r.IsValid() {
		return r
	}
	return RoleMember
}
