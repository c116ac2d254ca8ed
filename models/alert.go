package models

import "time"

type AlertType string

const (
	AlertMaintenanceDue AlertType = "maintenance_due"
	AlertWarrantyExpiry AlertType = "warranty_expiry"
	AlertCalibrationDue AlertType = "calibration_due"
	AlertEquipmentIssue AlertType = "equipment_issue"
	AlertStockLow       AlertType = "stock_low"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertMaintenanceDue, AlertWarrantyExpiry, AlertCalibrationDue, AlertEquipmentIssue, AlertStockLow:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Alert struct {
	ID             string     `json:"id" db:"id"`
	EquipmentID    string     `json:"equipment_id" db:"equipment_id"`
	EquipmentName  string     `json:"equipment_name" db:"equipment_name"`
	Type           AlertType  `json:"type" db:"type"`
	Title          string     `json:"title" db:"title"`
	Description    string     `json:"description" db:"description"`
	Priority       Priority   `json:"priority" db:"priority"`
	Date           time.Time  `json:"date" db:"date"`
	DueDate        *time.Time `json:"due_date,omitempty" db:"due_date"`
	Acknowledged   bool       `json:"acknowledged" db:"acknowledged"`
	AcknowledgedBy *string    `json:"acknowledged_by,omitempty" db:"acknowledged_by"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty" db:"acknowledged_at"`
	Resolved       bool       `json:"resolved" db:"resolved"`
	ResolvedBy     *string    `json:"resolved_by,omitempty" db:"resolved_by"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// IsOpen reports whether the alert is unacknowledged or acknowledged but not resolved.
func (a Alert) IsOpen() bool {
	return !a.Resolved
}
