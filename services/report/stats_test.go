package reportservice

import (
	"testing"
	"time"

	"labtrack/models"

	"github.com/stretchr/testify/assert"
)

var refNow = time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC)

func at(days int) *time.Time {
	t := refNow.Add(time.Duration(days) * 24 * time.Hour)
	return &t
}

func TestComputeInventoryStats(t *testing.T) {
	inventory := []models.Equipment{
		{ID: "eq-1", Status: models.EquipmentActive, Cost: 1000, NextMaintenanceDate: at(-2), WarrantyExpiry: *at(400)},
		{ID: "eq-2", Status: models.EquipmentActive, Cost: 3000, NextMaintenanceDate: at(5), WarrantyExpiry: *at(10)},
		{ID: "eq-3", Status: models.EquipmentCalibration, Cost: 2000},
		{ID: "eq-4", Status: models.EquipmentRetired, Cost: 500, NextMaintenanceDate: at(-30), WarrantyExpiry: *at(-30)},
		{ID: "eq-5", Status: models.EquipmentRepair, Cost: 3500},
	}
	records := []models.MaintenanceRecord{
		{ID: "rec-1", EquipmentID: "eq-1", Status: models.MaintenanceCompleted, Cost: 120},
		{ID: "rec-2", EquipmentID: "eq-2", Status: models.MaintenancePending, Cost: 999},
		{ID: "rec-3", EquipmentID: "eq-gone", Status: models.MaintenanceCompleted, Cost: 80},
		{ID: "rec-4", EquipmentID: "eq-3", Status: models.MaintenanceCompleted, Cost: 30.5},
	}
	alerts := []models.Alert{
		{ID: "a-1", Priority: models.PriorityCritical},
		{ID: "a-2", Priority: models.PriorityHigh},
		{ID: "a-3", Priority: models.PriorityCritical, Acknowledged: true},
	}

	stats := ComputeInventoryStats(inventory, records, alerts, refNow)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Calibration)
	assert.Equal(t, 1, stats.Repair)
	assert.Equal(t, 1, stats.Retired)
	assert.Equal(t, 0, stats.Maintenance)
	assert.InDelta(t, 10000.0, stats.TotalValue, 0.001)
	assert.InDelta(t, 2000.0, stats.AverageValue, 0.001)
	assert.InDelta(t, 150.5, stats.MaintenanceCosts, 0.001)
	assert.Equal(t, 1, stats.OrphanedRecords)
	assert.Equal(t, 1, stats.OverdueMaintenances)
	assert.Equal(t, 1, stats.ExpiringWarranties)
	assert.Equal(t, 2, stats.PendingAlerts)
	assert.Equal(t, 1, stats.CriticalAlerts)
}

func TestComputeInventoryStatsEmpty(t *testing.T) {
	stats := ComputeInventoryStats(nil, nil, nil, refNow)
	assert.Equal(t, models.InventoryStats{}, stats)
}
