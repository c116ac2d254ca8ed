package models

type InventoryStats struct {
	Total               int     `json:"total"`
	Active              int     `json:"active"`
	Maintenance         int     `json:"maintenance"`
	Calibration         int     `json:"calibration"`
	Repair              int     `json:"repair"`
	Retired             int     `json:"retired"`
	TotalValue          float64 `json:"total_value"`
	AverageValue        float64 `json:"average_value"`
	MaintenanceCosts    float64 `json:"maintenance_costs"`
	PendingAlerts       int     `json:"pending_alerts"`
	CriticalAlerts      int     `json:"critical_alerts"`
	OverdueMaintenances int     `json:"overdue_maintenances"`
	ExpiringWarranties  int     `json:"expiring_warranties"`
	OrphanedRecords     int     `json:"orphaned_records"`
}
