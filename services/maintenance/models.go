package maintenanceservice

import (
	"errors"
	"time"

	"labtrack/models"
)

var (
	ErrForbidden      = errors.New("permission denied")
	ErrRecordNotFound = errors.New("maintenance record not found")
	ErrInvalid        = errors.New("invalid maintenance record")
	ErrNotATechnician = errors.New("assignee must be an active technician or admin")
)

type RecordMaintenanceReq struct {
	EquipmentID   string                   `json:"equipment_id" validate:"required"`
	Date          time.Time                `json:"date" validate:"required"`
	Type          models.MaintenanceType   `json:"type" validate:"required,oneof=routine repair calibration inspection emergency"`
	Description   string                   `json:"description" validate:"required"`
	TechnicianID  string                   `json:"technician_id"`
	Cost          float64                  `json:"cost" validate:"gte=0"`
	PartsReplaced []string                 `json:"parts_replaced"`
	PartsCost     float64                  `json:"parts_cost" validate:"gte=0"`
	LaborHours    float64                  `json:"labor_hours" validate:"gte=0"`
	NextDueDate   *time.Time               `json:"next_due_date,omitempty"`
	Status        models.MaintenanceStatus `json:"status" validate:"omitempty,oneof=completed pending overdue cancelled"`
	Priority      models.Priority          `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Notes         *string                  `json:"notes,omitempty"`
}

type UpdateMaintenanceReq struct {
	Description   *string                   `json:"description,omitempty"`
	Cost          *float64                  `json:"cost,omitempty" validate:"omitempty,gte=0"`
	PartsReplaced []string                  `json:"parts_replaced,omitempty"`
	PartsCost     *float64                  `json:"parts_cost,omitempty" validate:"omitempty,gte=0"`
	LaborHours    *float64                  `json:"labor_hours,omitempty" validate:"omitempty,gte=0"`
	NextDueDate   *time.Time                `json:"next_due_date,omitempty"`
	Status        *models.MaintenanceStatus `json:"status,omitempty" validate:"omitempty,oneof=completed pending overdue cancelled"`
	Priority      *models.Priority          `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Notes         *string                   `json:"notes,omitempty"`
}

type AssignTechnicianReq struct {
	TechnicianID string `json:"technician_id" validate:"required"`
}

// History is a maintenance listing. Orphaned counts records skipped because
// their equipment no longer exists.
type History struct {
	Records  []models.MaintenanceRecord `json:"records"`
	Orphaned int                        `json:"orphaned_records"`
}
