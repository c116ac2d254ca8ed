package models

type Role string

const (
	AdminRole      Role = "admin"
	TechnicianRole Role = "technician"
	StaffRole      Role = "staff"
	GuestRole      Role = "guest"
)

// AllRoles lists every role from least to most privileged.
var AllRoles = []Role{GuestRole, StaffRole, TechnicianRole, AdminRole}

// Level is the role's position in the hierarchy guest < staff < technician < admin.
// Unknown roles sit below guest at -1.
func (r Role) Level() int {
	switch r {
	case GuestRole:
		return 0
	case StaffRole:
		return 1
	case TechnicianRole:
		return 2
	case AdminRole:
		return 3
	default:
		return -1
	}
}

func (r Role) Valid() bool {
	return r.Level() >= 0
}

// ParseRole validates a role string. Unknown values come back as "" and false.
func ParseRole(value string) (Role, bool) {
	role := Role(value)
	if !role.Valid() {
		return "", false
	}
	return role, true
}
