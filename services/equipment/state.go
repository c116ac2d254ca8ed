package equipmentservice

import (
	"math"
	"time"

	"labtrack/models"
)

const (
	MaintenanceDueWindowDays = 7
	WarrantyExpiryWindowDays = 30
	millisPerDay             = 24 * 60 * 60 * 1000
)

// DaysUntil is the calendar-day ceiling of target-now at millisecond precision.
// Six days and one hour ahead counts as 7; one hour overdue counts as 0.
func DaysUntil(target, now time.Time) int {
	diff := target.Sub(now).Milliseconds()
	return int(math.Ceil(float64(diff) / millisPerDay))
}

// IsMaintenanceDue is true when maintenance falls due within the window or is
// already overdue. Equipment without a next maintenance date is never due.
func IsMaintenanceDue(eq models.Equipment, now time.Time) bool {
	if eq.NextMaintenanceDate == nil {
		return false
	}
	return DaysUntil(*eq.NextMaintenanceDate, now) <= MaintenanceDueWindowDays
}

// IsWarrantyExpiring is true when the warranty ends within the window or has ended.
func IsWarrantyExpiring(eq models.Equipment, now time.Time) bool {
	if eq.WarrantyExpiry.IsZero() {
		return false
	}
	return DaysUntil(eq.WarrantyExpiry, now) <= WarrantyExpiryWindowDays
}

// ScheduleNextMaintenance derives next maintenance as last maintenance plus the
// interval, unless the date was set by hand.
func ScheduleNextMaintenance(eq models.Equipment) models.Equipment {
	if eq.NextMaintenanceManual || eq.LastMaintenanceDate == nil || eq.MaintenanceInterval <= 0 {
		return eq
	}
	next := eq.LastMaintenanceDate.AddDate(0, 0, eq.MaintenanceInterval)
	eq.NextMaintenanceDate = &next
	return eq
}

// CurrentValue applies the flat depreciation rate (percent) to the cost.
func CurrentValue(eq models.Equipment) float64 {
	rate := 0.0
	if eq.DepreciationRate != nil {
		rate = *eq.DepreciationRate
	}
	return eq.Cost * (1 - rate/100)
}
