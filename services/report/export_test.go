package reportservice

import (
	"bytes"
	"testing"

	"labtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildEquipmentWorkbook(t *testing.T) {
	rate := 10.0
	inventory := []models.Equipment{
		{
			ID:                  "eq-1",
			Name:                "Centrifuge",
			SerialNumber:        "SN-1",
			Status:              models.EquipmentActive,
			Condition:           models.ConditionGood,
			PurchaseDate:        *at(-365),
			WarrantyExpiry:      *at(20),
			NextMaintenanceDate: at(3),
			Cost:                1000,
			DepreciationRate:    &rate,
			QRCode:              "QR-1-SN-1",
		},
		{
			ID:                  "eq-2",
			Name:                "Old Scope",
			Status:              models.EquipmentRetired,
			PurchaseDate:        *at(-3000),
			NextMaintenanceDate: at(-10),
			Cost:                400,
		},
	}

	data, err := BuildEquipmentWorkbook(inventory, refNow)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(equipmentSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, EquipmentExportHeader, rows[0])

	col := func(name string) int {
		for i, h := range EquipmentExportHeader {
			if h == name {
				return i
			}
		}
		t.Fatalf("no column %s", name)
		return -1
	}

	assert.Equal(t, "Centrifuge", rows[1][col("Name")])
	assert.Equal(t, "yes", rows[1][col("Maintenance Due")])
	assert.Equal(t, "yes", rows[1][col("Warranty Expiring")])
	assert.Equal(t, "900", rows[1][col("Current Value")])
	assert.Equal(t, "no", rows[2][col("Maintenance Due")], "retired equipment is never due")
	assert.Equal(t, "", rows[2][col("Warranty Expiry")])
}
