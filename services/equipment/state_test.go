package equipmentservice

import (
	"testing"
	"time"

	"labtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func withNextMaintenance(at time.Time) models.Equipment {
	return models.Equipment{ID: "eq-1", NextMaintenanceDate: &at}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name     string
		offset   time.Duration
		expected int
	}{
		{name: "same instant", offset: 0, expected: 0},
		{name: "one millisecond ahead", offset: time.Millisecond, expected: 1},
		{name: "exactly seven days", offset: days(7), expected: 7},
		{name: "six days one hour", offset: days(6) + time.Hour, expected: 7},
		{name: "one hour overdue", offset: -time.Hour, expected: 0},
		{name: "one day overdue", offset: -days(1), expected: -1},
		{name: "25 hours overdue", offset: -25 * time.Hour, expected: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DaysUntil(refNow.Add(tc.offset), refNow))
		})
	}
}

func TestIsMaintenanceDue(t *testing.T) {
	tests := []struct {
		name     string
		eq       models.Equipment
		expected bool
	}{
		{name: "no next date", eq: models.Equipment{ID: "eq-1"}, expected: false},
		{name: "exactly seven days", eq: withNextMaintenance(refNow.Add(days(7))), expected: true},
		{name: "eight days", eq: withNextMaintenance(refNow.Add(days(8))), expected: false},
		{name: "seven days and a minute", eq: withNextMaintenance(refNow.Add(days(7) + time.Minute)), expected: false},
		{name: "six days one hour", eq: withNextMaintenance(refNow.Add(days(6) + time.Hour)), expected: true},
		{name: "today", eq: withNextMaintenance(refNow), expected: true},
		{name: "one day overdue", eq: withNextMaintenance(refNow.Add(-days(1))), expected: true},
		{name: "long overdue", eq: withNextMaintenance(refNow.Add(-days(90))), expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsMaintenanceDue(tc.eq, refNow))
		})
	}
}

func TestIsWarrantyExpiring(t *testing.T) {
	tests := []struct {
		name     string
		expiry   time.Time
		expected bool
	}{
		{name: "no expiry recorded", expiry: time.Time{}, expected: false},
		{name: "exactly thirty days", expiry: refNow.Add(days(30)), expected: true},
		{name: "thirty one days", expiry: refNow.Add(days(31)), expected: false},
		{name: "two days", expiry: refNow.Add(days(2)), expected: true},
		{name: "already expired", expiry: refNow.Add(-days(10)), expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eq := models.Equipment{ID: "eq-1", WarrantyExpiry: tc.expiry}
			assert.Equal(t, tc.expected, IsWarrantyExpiring(eq, refNow))
		})
	}
}

func TestScheduleNextMaintenance(t *testing.T) {
	last := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	manual := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("derived from last plus interval", func(t *testing.T) {
		eq := ScheduleNextMaintenance(models.Equipment{LastMaintenanceDate: &last, MaintenanceInterval: 90})
		require.NotNil(t, eq.NextMaintenanceDate)
		assert.Equal(t, time.Date(2024, time.April, 14, 0, 0, 0, 0, time.UTC), *eq.NextMaintenanceDate)
	})

	t.Run("manual override kept", func(t *testing.T) {
		eq := ScheduleNextMaintenance(models.Equipment{
			LastMaintenanceDate:   &last,
			MaintenanceInterval:   90,
			NextMaintenanceDate:   &manual,
			NextMaintenanceManual: true,
		})
		assert.Equal(t, manual, *eq.NextMaintenanceDate)
	})

	t.Run("no last maintenance", func(t *testing.T) {
		eq := ScheduleNextMaintenance(models.Equipment{MaintenanceInterval: 30})
		assert.Nil(t, eq.NextMaintenanceDate)
	})

	t.Run("input not mutated", func(t *testing.T) {
		in := models.Equipment{LastMaintenanceDate: &last, MaintenanceInterval: 10}
		_ = ScheduleNextMaintenance(in)
		assert.Nil(t, in.NextMaintenanceDate)
	})
}

func TestCurrentValue(t *testing.T) {
	rate := 10.0
	assert.InDelta(t, 45000.0, CurrentValue(models.Equipment{Cost: 50000, DepreciationRate: &rate}), 0.001)
	assert.InDelta(t, 1200.0, CurrentValue(models.Equipment{Cost: 1200}), 0.001)
}
