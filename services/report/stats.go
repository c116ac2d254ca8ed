package reportservice

import (
	"time"

	"labtrack/models"
	alertservice "labtrack/services/alert"
	equipmentservice "labtrack/services/equipment"
)

// ComputeInventoryStats aggregates the dashboard figures. Maintenance records
// whose equipment is gone are left out of the cost total and counted as
// orphaned. Retired equipment is counted by status but never overdue or
// expiring.
func ComputeInventoryStats(inventory []models.Equipment, records []models.MaintenanceRecord,
	alerts []models.Alert, now time.Time) models.InventoryStats {
	stats := models.InventoryStats{Total: len(inventory)}
	known := make(map[string]struct{}, len(inventory))

	for _, eq := range inventory {
		known[eq.ID] = struct{}{}
		stats.TotalValue += eq.Cost

		switch eq.Status {
		case models.EquipmentActive:
			stats.Active++
		case models.EquipmentMaintenance:
			stats.Maintenance++
		case models.EquipmentCalibration:
			stats.Calibration++
		case models.EquipmentRepair:
			stats.Repair++
		case models.EquipmentRetired:
			stats.Retired++
			continue
		}

		if eq.NextMaintenanceDate != nil && equipmentservice.DaysUntil(*eq.NextMaintenanceDate, now) < 0 {
			stats.OverdueMaintenances++
		}
		if equipmentservice.IsWarrantyExpiring(eq, now) {
			stats.ExpiringWarranties++
		}
	}
	if stats.Total > 0 {
		stats.AverageValue = stats.TotalValue / float64(stats.Total)
	}

	for _, rec := range records {
		if _, ok := known[rec.EquipmentID]; !ok {
			stats.OrphanedRecords++
			continue
		}
		if rec.Status == models.MaintenanceCompleted {
			stats.MaintenanceCosts += rec.Cost
		}
	}

	summary := alertservice.Summarize(alerts)
	stats.PendingAlerts = summary.Pending
	stats.CriticalAlerts = summary.Critical
	return stats
}
