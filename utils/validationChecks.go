package utils

import (
	"strings"
	"time"

	"labtrack/models"

	"github.com/pkg/errors"
)

func IsEquipmentStatusValid(status models.EquipmentStatus) bool {
	switch status {
	case models.EquipmentActive, models.EquipmentMaintenance, models.EquipmentCalibration,
		models.EquipmentRepair, models.EquipmentRetired:
		return true
	}
	return false
}

func IsConditionValid(condition models.EquipmentCondition) bool {
	return condition == models.ConditionExcellent || condition == models.ConditionGood ||
		condition == models.ConditionFair || condition == models.ConditionPoor
}

// EquipmentValidityCheck covers the cross-field rules struct tags cannot.
func EquipmentValidityCheck(eq models.Equipment, now time.Time) error {
	if strings.TrimSpace(eq.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(eq.SerialNumber) == "" {
		return errors.New("serial number is required")
	}
	if eq.PurchaseDate.After(now) {
		return errors.New("purchase date cannot be in the future")
	}
	if !eq.WarrantyExpiry.IsZero() && eq.WarrantyExpiry.Before(eq.PurchaseDate) {
		return errors.New("warranty cannot expire before purchase")
	}
	if eq.MaintenanceInterval < 0 {
		return errors.New("maintenance interval cannot be negative")
	}
	if eq.Cost < 0 {
		return errors.New("cost cannot be negative")
	}
	if eq.DepreciationRate != nil && (*eq.DepreciationRate < 0 || *eq.DepreciationRate > 100) {
		return errors.Errorf("depreciation rate %.2f out of range", *eq.DepreciationRate)
	}
	if !IsEquipmentStatusValid(eq.Status) {
		return errors.Errorf("invalid status %q", eq.Status)
	}
	if !IsConditionValid(eq.Condition) {
		return errors.Errorf("invalid condition %q", eq.Condition)
	}
	return nil
}

func MaintenanceValidityCheck(rec models.MaintenanceRecord) error {
	if strings.TrimSpace(rec.EquipmentID) == "" {
		return errors.New("equipment id is required")
	}
	if rec.Cost < 0 || rec.PartsCost < 0 || rec.LaborHours < 0 {
		return errors.New("cost, parts cost and labor hours cannot be negative")
	}
	if rec.NextDueDate != nil && rec.NextDueDate.Before(rec.Date) {
		return errors.New("next due date cannot precede the maintenance date")
	}
	return nil
}
