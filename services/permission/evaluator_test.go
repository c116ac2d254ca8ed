package permissionservice

import (
	"testing"

	"labtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeUser(role models.Role) *models.User {
	return &models.User{ID: "user-" + string(role), Role: role, IsActive: true}
}

func TestRoleTableCoversEveryRole(t *testing.T) {
	for _, role := range models.AllRoles {
		_, ok := rolePermissions[role]
		assert.True(t, ok, "role %s missing from permission table", role)
	}
	assert.Len(t, rolePermissions, len(models.AllRoles))
}

func TestRoleTableIsMonotone(t *testing.T) {
	for _, lower := range models.AllRoles {
		for _, higher := range models.AllRoles {
			if higher.Level() <= lower.Level() {
				continue
			}
			for p := range rolePermissions[lower] {
				assert.True(t, rolePermissions[higher].Has(p),
					"%s grants %s but %s does not", lower, p, higher)
			}
		}
	}
}

func TestRoleTableGrantsOnlyKnownPermissions(t *testing.T) {
	for role, set := range rolePermissions {
		for p := range set {
			assert.True(t, p.Valid(), "role %s grants unknown permission %s", role, p)
		}
	}
}

func TestDeleteIsAdminOnly(t *testing.T) {
	for _, role := range models.AllRoles {
		expected := role == models.AdminRole
		assert.Equal(t, expected, HasPermission(activeUser(role), models.EquipmentDelete), "role %s", role)
	}
}

func TestAdminHoldsEverything(t *testing.T) {
	admin := activeUser(models.AdminRole)
	assert.True(t, HasAllPermissions(admin, models.AllPermissions))
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		permission models.Permission
		expected   bool
	}{
		{name: "nil user", user: nil, permission: models.EquipmentRead, expected: false},
		{name: "inactive admin", user: &models.User{Role: models.AdminRole, IsActive: false}, permission: models.EquipmentRead, expected: false},
		{name: "unknown role", user: activeUser(models.Role("superuser")), permission: models.EquipmentRead, expected: false},
		{name: "empty role", user: activeUser(""), permission: models.ReportsView, expected: false},
		{name: "guest reads equipment", user: activeUser(models.GuestRole), permission: models.EquipmentRead, expected: true},
		{name: "guest cannot log maintenance", user: activeUser(models.GuestRole), permission: models.MaintenanceCreate, expected: false},
		{name: "staff logs maintenance", user: activeUser(models.StaffRole), permission: models.MaintenanceCreate, expected: true},
		{name: "staff cannot update equipment", user: activeUser(models.StaffRole), permission: models.EquipmentUpdate, expected: false},
		{name: "technician updates equipment", user: activeUser(models.TechnicianRole), permission: models.EquipmentUpdate, expected: true},
		{name: "technician cannot export reports", user: activeUser(models.TechnicianRole), permission: models.ReportsExport, expected: false},
		{name: "staff cannot delete", user: activeUser(models.StaffRole), permission: models.EquipmentDelete, expected: false},
		{name: "admin deletes", user: activeUser(models.AdminRole), permission: models.EquipmentDelete, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HasPermission(tc.user, tc.permission))
		})
	}
}

func TestFailClosedForEveryPermission(t *testing.T) {
	unknown := activeUser(models.Role("owner"))
	for _, p := range models.AllPermissions {
		assert.False(t, HasPermission(nil, p), "nil user holds %s", p)
		assert.False(t, HasPermission(unknown, p), "unknown role holds %s", p)
	}
}

func TestHasPermissionPanicsOnUnknownTag(t *testing.T) {
	assert.Panics(t, func() {
		HasPermission(activeUser(models.AdminRole), models.Permission("equipment.launch"))
	})
}

func TestQuantifiers(t *testing.T) {
	staff := activeUser(models.StaffRole)

	assert.True(t, HasAnyPermission(staff, []models.Permission{models.EquipmentDelete, models.EquipmentRead}))
	assert.False(t, HasAnyPermission(staff, []models.Permission{models.EquipmentDelete, models.UsersManage}))
	assert.False(t, HasAnyPermission(staff, nil))

	assert.True(t, HasAllPermissions(staff, []models.Permission{models.EquipmentRead, models.MaintenanceCreate}))
	assert.False(t, HasAllPermissions(staff, []models.Permission{models.EquipmentRead, models.EquipmentUpdate}))
	assert.True(t, HasAllPermissions(staff, nil))
	assert.False(t, HasAllPermissions(nil, nil))
}

func TestCanAccess(t *testing.T) {
	for _, role := range models.AllRoles {
		user := activeUser(role)
		assert.True(t, CanAccess(user, role), "reflexivity for %s", role)
		for _, required := range models.AllRoles {
			assert.Equal(t, role.Level() >= required.Level(), CanAccess(user, required), "%s vs %s", role, required)
		}
	}

	unknown := activeUser(models.Role("intern"))
	for _, required := range models.AllRoles {
		assert.False(t, CanAccess(unknown, required), "unknown role passed %s", required)
	}

	assert.False(t, CanAccess(nil, models.GuestRole))
	assert.False(t, CanAccess(activeUser(models.AdminRole), models.Role("root")))
}

func TestCanAccessMonotone(t *testing.T) {
	for _, role := range models.AllRoles {
		user := activeUser(role)
		for _, a := range models.AllRoles {
			if !CanAccess(user, a) {
				continue
			}
			for _, b := range models.AllRoles {
				if b.Level() <= a.Level() {
					assert.True(t, CanAccess(user, b))
				}
			}
		}
	}
}

func TestPermissionsForReturnsCopy(t *testing.T) {
	set := PermissionsFor(models.StaffRole)
	set[models.EquipmentDelete] = struct{}{}

	assert.False(t, HasPermission(activeUser(models.StaffRole), models.EquipmentDelete))
	assert.Empty(t, PermissionsFor(models.Role("nobody")))

	ordered := PermissionsFor(models.GuestRole).Slice()
	require.Len(t, ordered, 3)
	assert.Equal(t, []models.Permission{models.EquipmentRead, models.MaintenanceRead, models.ReportsView}, ordered)
}
