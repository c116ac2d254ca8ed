package permissionservice

import "labtrack/models"

// PermissionSet is an unordered set of granted permissions.
type PermissionSet map[models.Permission]struct{}

func newSet(perms ...models.Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

func (s PermissionSet) Has(p models.Permission) bool {
	_, ok := s[p]
	return ok
}

// Slice returns the set in the declaration order of models.AllPermissions.
func (s PermissionSet) Slice() []models.Permission {
	out := make([]models.Permission, 0, len(s))
	for _, p := range models.AllPermissions {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

var (
	guestPermissions = []models.Permission{
		models.EquipmentRead,
		models.MaintenanceRead,
		models.ReportsView,
	}

	staffPermissions = append(clone(guestPermissions),
		models.MaintenanceCreate,
	)

	technicianPermissions = append(clone(staffPermissions),
		models.EquipmentUpdate,
		models.MaintenanceUpdate,
	)

	adminPermissions = append(clone(technicianPermissions),
		models.EquipmentCreate,
		models.EquipmentDelete,
		models.MaintenanceAssign,
		models.ReportsExport,
		models.UsersManage,
		models.SettingsManage,
		models.AlertsManage,
	)
)

var rolePermissions = map[models.Role]PermissionSet{
	models.GuestRole:      newSet(guestPermissions...),
	models.StaffRole:      newSet(staffPermissions...),
	models.TechnicianRole: newSet(technicianPermissions...),
	models.AdminRole:      newSet(adminPermissions...),
}

func clone(perms []models.Permission) []models.Permission {
	return append([]models.Permission(nil), perms...)
}

// PermissionsFor returns a copy of the permissions granted to role.
// Unknown roles get an empty set.
func PermissionsFor(role models.Role) PermissionSet {
	granted, ok := rolePermissions[role]
	if !ok {
		return PermissionSet{}
	}
	out := make(PermissionSet, len(granted))
	for p := range granted {
		out[p] = struct{}{}
	}
	return out
}
