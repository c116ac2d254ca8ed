package models

import (
	"time"
)

type EquipmentStatus string

const (
	EquipmentActive      EquipmentStatus = "active"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentCalibration EquipmentStatus = "calibration"
	EquipmentRepair      EquipmentStatus = "repair"
	EquipmentRetired     EquipmentStatus = "retired"
)

type EquipmentCondition string

const (
	ConditionExcellent EquipmentCondition = "excellent"
	ConditionGood      EquipmentCondition = "good"
	ConditionFair      EquipmentCondition = "fair"
	ConditionPoor      EquipmentCondition = "poor"
)

type Equipment struct {
	ID           string             `json:"id" db:"id"`
	Name         string             `json:"name" db:"name"`
	Model        string             `json:"model" db:"model"`
	SerialNumber string             `json:"serial_number" db:"serial_number"`
	Manufacturer string             `json:"manufacturer" db:"manufacturer"`
	Category     string             `json:"category" db:"category"`
	Subcategory  *string            `json:"subcategory,omitempty" db:"subcategory"`
	Location     string             `json:"location" db:"location"`
	Room         *string            `json:"room,omitempty" db:"room"`
	Building     *string            `json:"building,omitempty" db:"building"`
	Status       EquipmentStatus    `json:"status" db:"status"`
	Condition    EquipmentCondition `json:"condition" db:"condition"`

	PurchaseDate          time.Time  `json:"purchase_date" db:"purchase_date"`
	WarrantyExpiry        time.Time  `json:"warranty_expiry" db:"warranty_expiry"`
	LastMaintenanceDate   *time.Time `json:"last_maintenance_date,omitempty" db:"last_maintenance_date"`
	NextMaintenanceDate   *time.Time `json:"next_maintenance_date,omitempty" db:"next_maintenance_date"`
	MaintenanceInterval   int        `json:"maintenance_interval" db:"maintenance_interval"`
	NextMaintenanceManual bool       `json:"next_maintenance_manual" db:"next_maintenance_manual"`

	Cost             float64  `json:"cost" db:"cost"`
	DepreciationRate *float64 `json:"depreciation_rate,omitempty" db:"depreciation_rate"`
	CurrentValue     *float64 `json:"current_value,omitempty" db:"current_value"`

	QRCode            string  `json:"qr_code" db:"qr_code"`
	Specifications    string  `json:"specifications" db:"specifications"`
	Notes             *string `json:"notes,omitempty" db:"notes"`
	ResponsiblePerson string  `json:"responsible_person" db:"responsible_person"`
	Department        string  `json:"department" db:"department"`
	Supplier          *string `json:"supplier,omitempty" db:"supplier"`
	SupplierContact   *string `json:"supplier_contact,omitempty" db:"supplier_contact"`
	ManualURL         *string `json:"manual_url,omitempty" db:"manual_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	UpdatedBy string    `json:"updated_by" db:"updated_by"`
}
