package equipmentservice

import (
	"errors"
	"time"

	"labtrack/models"
)

var (
	ErrForbidden = errors.New("permission denied")
	ErrNotFound  = errors.New("equipment not found")
	ErrInvalid   = errors.New("invalid equipment")
)

type CreateEquipmentReq struct {
	Name                string                    `json:"name" validate:"required"`
	Model               string                    `json:"model" validate:"required"`
	SerialNumber        string                    `json:"serial_number" validate:"required"`
	Manufacturer        string                    `json:"manufacturer" validate:"required"`
	Category            string                    `json:"category" validate:"required"`
	Subcategory         *string                   `json:"subcategory,omitempty"`
	Location            string                    `json:"location" validate:"required"`
	Room                *string                   `json:"room,omitempty"`
	Building            *string                   `json:"building,omitempty"`
	Status              models.EquipmentStatus    `json:"status" validate:"omitempty,oneof=active maintenance calibration repair retired"`
	Condition           models.EquipmentCondition `json:"condition" validate:"omitempty,oneof=excellent good fair poor"`
	PurchaseDate        time.Time                 `json:"purchase_date" validate:"required"`
	WarrantyExpiry      time.Time                 `json:"warranty_expiry"`
	LastMaintenanceDate *time.Time                `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time                `json:"next_maintenance_date,omitempty"`
	MaintenanceInterval int                       `json:"maintenance_interval" validate:"gte=0"`
	Cost                float64                   `json:"cost" validate:"gte=0"`
	DepreciationRate    *float64                  `json:"depreciation_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Specifications      string                    `json:"specifications"`
	Notes               *string                   `json:"notes,omitempty"`
	ResponsiblePerson   string                    `json:"responsible_person"`
	Department          string                    `json:"department"`
	Supplier            *string                   `json:"supplier,omitempty"`
	SupplierContact     *string                   `json:"supplier_contact,omitempty"`
	ManualURL           *string                   `json:"manual_url,omitempty" validate:"omitempty,url"`
}

// UpdateEquipmentReq is a partial update: nil fields are left unchanged.
// Setting NextMaintenanceDate pins the schedule until ClearManualSchedule.
type UpdateEquipmentReq struct {
	Name                *string                    `json:"name,omitempty"`
	Model               *string                    `json:"model,omitempty"`
	SerialNumber        *string                    `json:"serial_number,omitempty"`
	Manufacturer        *string                    `json:"manufacturer,omitempty"`
	Category            *string                    `json:"category,omitempty"`
	Subcategory         *string                    `json:"subcategory,omitempty"`
	Location            *string                    `json:"location,omitempty"`
	Room                *string                    `json:"room,omitempty"`
	Building            *string                    `json:"building,omitempty"`
	Status              *models.EquipmentStatus    `json:"status,omitempty" validate:"omitempty,oneof=active maintenance calibration repair retired"`
	Condition           *models.EquipmentCondition `json:"condition,omitempty" validate:"omitempty,oneof=excellent good fair poor"`
	PurchaseDate        *time.Time                 `json:"purchase_date,omitempty"`
	WarrantyExpiry      *time.Time                 `json:"warranty_expiry,omitempty"`
	LastMaintenanceDate *time.Time                 `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time                 `json:"next_maintenance_date,omitempty"`
	ClearManualSchedule bool                       `json:"clear_manual_schedule,omitempty"`
	MaintenanceInterval *int                       `json:"maintenance_interval,omitempty" validate:"omitempty,gte=0"`
	Cost                *float64                   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	DepreciationRate    *float64                   `json:"depreciation_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Specifications      *string                    `json:"specifications,omitempty"`
	Notes               *string                    `json:"notes,omitempty"`
	ResponsiblePerson   *string                    `json:"responsible_person,omitempty"`
	Department          *string                    `json:"department,omitempty"`
	Supplier            *string                    `json:"supplier,omitempty"`
	SupplierContact     *string                    `json:"supplier_contact,omitempty"`
	ManualURL           *string                    `json:"manual_url,omitempty" validate:"omitempty,url"`
}

// Sort orders accepted by ListEquipment.
const (
	SortByName   = "name"
	SortByDate   = "date"
	SortByCost   = "cost"
	SortByStatus = "status"
)

// EquipmentFilter narrows a listing. Empty or "all" disables a criterion.
type EquipmentFilter struct {
	Search   string
	Status   string
	Category string
	SortBy   string
	Limit    int
	Offset   int
}
