package models

import (
	"time"

	"github.com/lib/pq"
)

type MaintenanceType string

const (
	MaintenanceRoutine     MaintenanceType = "routine"
	MaintenanceRepair      MaintenanceType = "repair"
	MaintenanceCalibration MaintenanceType = "calibration"
	MaintenanceInspection  MaintenanceType = "inspection"
	MaintenanceEmergency   MaintenanceType = "emergency"
)

type MaintenanceStatus string

const (
	MaintenanceCompleted MaintenanceStatus = "completed"
	MaintenancePending   MaintenanceStatus = "pending"
	MaintenanceOverdue   MaintenanceStatus = "overdue"
	MaintenanceCancelled MaintenanceStatus = "cancelled"
)

type MaintenanceRecord struct {
	ID             string            `json:"id" db:"id"`
	EquipmentID    string            `json:"equipment_id" db:"equipment_id"`
	Date           time.Time         `json:"date" db:"date"`
	Type           MaintenanceType   `json:"type" db:"type"`
	Description    string            `json:"description" db:"description"`
	TechnicianID   string            `json:"technician_id" db:"technician_id"`
	TechnicianName string            `json:"technician_name" db:"technician_name"`
	Cost           float64           `json:"cost" db:"cost"`
	PartsReplaced  pq.StringArray    `json:"parts_replaced" db:"parts_replaced"`
	PartsCost      float64           `json:"parts_cost" db:"parts_cost"`
	LaborHours     float64           `json:"labor_hours" db:"labor_hours"`
	NextDueDate    *time.Time        `json:"next_due_date,omitempty" db:"next_due_date"`
	Status         MaintenanceStatus `json:"status" db:"status"`
	Priority       Priority          `json:"priority" db:"priority"`
	Notes          *string           `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
	CreatedBy      string            `json:"created_by" db:"created_by"`
}
