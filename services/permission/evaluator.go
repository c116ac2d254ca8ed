package permissionservice

import (
	"fmt"

	"labtrack/models"
)

// HasPermission reports whether user holds p. A nil or inactive user holds
// nothing, and a role missing from the table resolves to an empty set.
// It panics when p is not one of models.AllPermissions.
func HasPermission(user *models.User, p models.Permission) bool {
	if !p.Valid() {
		panic(fmt.Sprintf("permission: unknown permission tag %q", p))
	}
	if user == nil || !user.IsActive {
		return false
	}
	return rolePermissions[user.Role].Has(p)
}

func HasAnyPermission(user *models.User, perms []models.Permission) bool {
	for _, p := range perms {
		if HasPermission(user, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions is true when user holds every permission in perms. An
// empty list still requires an active user.
func HasAllPermissions(user *models.User, perms []models.Permission) bool {
	if user == nil || !user.IsActive {
		return false
	}
	for _, p := range perms {
		if !HasPermission(user, p) {
			return false
		}
	}
	return true
}

// CanAccess compares hierarchy positions. Unknown roles, on either side, deny.
func CanAccess(user *models.User, required models.Role) bool {
	if user == nil || !user.IsActive {
		return false
	}
	level := user.Role.Level()
	if level < 0 || !required.Valid() {
		return false
	}
	return level >= required.Level()
}
