package reportservice

import (
	"bytes"
	"fmt"
	"time"

	"labtrack/models"
	equipmentservice "labtrack/services/equipment"

	"github.com/xuri/excelize/v2"
)

const (
	equipmentSheet = "Equipment"
	dateLayout     = "2006-01-02"
)

var EquipmentExportHeader = []string{
	"ID",
	"Name",
	"Model",
	"Serial Number",
	"Manufacturer",
	"Category",
	"Location",
	"Status",
	"Condition",
	"Purchase Date",
	"Warranty Expiry",
	"Last Maintenance",
	"Next Maintenance",
	"Maintenance Due",
	"Warranty Expiring",
	"Cost",
	"Current Value",
	"QR Code",
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// EquipmentRow is one export row with the derived columns filled from now.
func EquipmentRow(eq models.Equipment, now time.Time) []interface{} {
	warranty := ""
	if !eq.WarrantyExpiry.IsZero() {
		warranty = eq.WarrantyExpiry.Format(dateLayout)
	}
	return []interface{}{
		eq.ID,
		eq.Name,
		eq.Model,
		eq.SerialNumber,
		eq.Manufacturer,
		eq.Category,
		eq.Location,
		string(eq.Status),
		string(eq.Condition),
		eq.PurchaseDate.Format(dateLayout),
		warranty,
		optionalDate(eq.LastMaintenanceDate),
		optionalDate(eq.NextMaintenanceDate),
		yesNo(eq.Status != models.EquipmentRetired && equipmentservice.IsMaintenanceDue(eq, now)),
		yesNo(eq.Status != models.EquipmentRetired && equipmentservice.IsWarrantyExpiring(eq, now)),
		eq.Cost,
		equipmentservice.CurrentValue(eq),
		eq.QRCode,
	}
}

// BuildEquipmentWorkbook renders the inventory as an xlsx workbook.
func BuildEquipmentWorkbook(inventory []models.Equipment, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", equipmentSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(equipmentSheet, "A1", &EquipmentExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(EquipmentExportHeader))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(equipmentSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(equipmentSheet, "A", lastCol, 18); err != nil {
		return nil, err
	}

	for i, eq := range inventory {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := EquipmentRow(eq, now)
		if err := f.SetSheetRow(equipmentSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
