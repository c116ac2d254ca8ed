package models

// Permission is a resource.action tag used for access checks.
type Permission string

const (
	EquipmentCreate Permission = "equipment.create"
	EquipmentRead   Permission = "equipment.read"
	EquipmentUpdate Permission = "equipment.update"
	EquipmentDelete Permission = "equipment.delete"

	MaintenanceCreate Permission = "maintenance.create"
	MaintenanceRead   Permission = "maintenance.read"
	MaintenanceUpdate Permission = "maintenance.update"
	MaintenanceAssign Permission = "maintenance.assign"

	ReportsView   Permission = "reports.view"
	ReportsExport Permission = "reports.export"

	UsersManage    Permission = "users.manage"
	SettingsManage Permission = "settings.manage"
	AlertsManage   Permission = "alerts.manage"
)

// AllPermissions is the closed set of permission tags.
var AllPermissions = []Permission{
	EquipmentCreate, EquipmentRead, EquipmentUpdate, EquipmentDelete,
	MaintenanceCreate, MaintenanceRead, MaintenanceUpdate, MaintenanceAssign,
	ReportsView, ReportsExport,
	UsersManage, SettingsManage, AlertsManage,
}

func (p Permission) Valid() bool {
	switch p {
	case EquipmentCreate, EquipmentRead, EquipmentUpdate, EquipmentDelete,
		MaintenanceCreate, MaintenanceRead, MaintenanceUpdate, MaintenanceAssign,
		ReportsView, ReportsExport,
		UsersManage, SettingsManage, AlertsManage:
		return true
	}
	return false
}
