package alertservice

import (
	"errors"
	"fmt"
	"time"

	"labtrack/models"
	equipmentservice "labtrack/services/equipment"

	"github.com/google/uuid"
)

var (
	ErrActorRequired       = errors.New("alert: an active user is required")
	ErrAlreadyAcknowledged = errors.New("alert: already acknowledged")
	ErrNotAcknowledged     = errors.New("alert: must be acknowledged before it can be resolved")
	ErrAlreadyResolved     = errors.New("alert: already resolved")
	ErrInvalidIssue        = errors.New("alert: invalid manually raised alert")
)

const (
	highPriorityMaintenanceDays = 3
	highPriorityWarrantyDays    = 7
)

// Acknowledge marks a as acknowledged by actor at now. The input is not
// modified. A second acknowledgement is rejected and the original
// acknowledger and timestamp are kept.
func Acknowledge(a models.Alert, actor *models.User, now time.Time) (models.Alert, error) {
	if actor == nil || !actor.IsActive {
		return a, ErrActorRequired
	}
	if a.Acknowledged {
		return a, ErrAlreadyAcknowledged
	}
	by := actor.ID
	at := now
	a.Acknowledged = true
	a.AcknowledgedBy = &by
	a.AcknowledgedAt = &at
	a.UpdatedAt = now
	return a, nil
}

// Resolve closes an acknowledged alert. Resolved is terminal.
func Resolve(a models.Alert, actor *models.User, now time.Time) (models.Alert, error) {
	if actor == nil || !actor.IsActive {
		return a, ErrActorRequired
	}
	if a.Resolved {
		return a, ErrAlreadyResolved
	}
	if !a.Acknowledged {
		return a, ErrNotAcknowledged
	}
	by := actor.ID
	at := now
	a.Resolved = true
	a.ResolvedBy = &by
	a.ResolvedAt = &at
	a.UpdatedAt = now
	return a, nil
}

// Dismiss drops the alert with the given id from any state. It returns a new
// slice and whether anything was removed.
func Dismiss(alerts []models.Alert, id string) ([]models.Alert, bool) {
	out := make([]models.Alert, 0, len(alerts))
	removed := false
	for _, a := range alerts {
		if a.ID == id {
			removed = true
			continue
		}
		out = append(out, a)
	}
	return out, removed
}

// DismissalKey identifies one trigger instance: the same equipment, alert type
// and due date. A dismissed instance is not synthesized again until its due
// date moves.
type DismissalKey struct {
	EquipmentID string
	Type        models.AlertType
	DueDate     string
}

func (k DismissalKey) String() string {
	return k.EquipmentID + "|" + string(k.Type) + "|" + k.DueDate
}

// KeyFor builds the dismissal key of an alert.
func KeyFor(a models.Alert) DismissalKey {
	due := ""
	if a.DueDate != nil {
		due = a.DueDate.UTC().Format("2006-01-02")
	}
	return DismissalKey{EquipmentID: a.EquipmentID, Type: a.Type, DueDate: due}
}

type TriggerInput struct {
	Equipment   []models.Equipment
	Maintenance []models.MaintenanceRecord
	// Alerts is the current alert set used for de-duplication.
	Alerts    []models.Alert
	Dismissed map[DismissalKey]struct{}
}

type TriggerResult struct {
	Alerts []models.Alert
	// Orphaned counts maintenance records whose equipment does not exist.
	Orphaned int
}

type openKey struct {
	equipmentID string
	kind        models.AlertType
}

// EvaluateTriggers synthesizes maintenance, warranty and calibration alerts
// for every piece of equipment whose condition holds and that has no open
// alert of the same type. Retired equipment raises nothing.
func EvaluateTriggers(in TriggerInput, now time.Time) TriggerResult {
	open := make(map[openKey]struct{}, len(in.Alerts))
	for _, a := range in.Alerts {
		if a.IsOpen() {
			open[openKey{a.EquipmentID, a.Type}] = struct{}{}
		}
	}

	known := make(map[string]struct{}, len(in.Equipment))
	for _, eq := range in.Equipment {
		known[eq.ID] = struct{}{}
	}
	calibrations, orphaned := latestCalibrations(in.Maintenance, known)

	var result TriggerResult
	result.Orphaned = orphaned

	emit := func(candidate models.Alert) {
		k := openKey{candidate.EquipmentID, candidate.Type}
		if _, exists := open[k]; exists {
			return
		}
		if _, dismissed := in.Dismissed[KeyFor(candidate)]; dismissed {
			return
		}
		open[k] = struct{}{}
		result.Alerts = append(result.Alerts, candidate)
	}

	for _, eq := range in.Equipment {
		if eq.Status == models.EquipmentRetired {
			continue
		}
		if equipmentservice.IsMaintenanceDue(eq, now) {
			emit(maintenanceAlert(eq, now))
		}
		if equipmentservice.IsWarrantyExpiring(eq, now) {
			emit(warrantyAlert(eq, now))
		}
		if rec, ok := calibrations[eq.ID]; ok && rec.NextDueDate != nil &&
			equipmentservice.DaysUntil(*rec.NextDueDate, now) <= equipmentservice.MaintenanceDueWindowDays {
			emit(calibrationAlert(eq, *rec.NextDueDate, now))
		}
	}
	return result
}

func latestCalibrations(records []models.MaintenanceRecord, known map[string]struct{}) (map[string]models.MaintenanceRecord, int) {
	latest := make(map[string]models.MaintenanceRecord)
	orphaned := 0
	for _, rec := range records {
		if _, ok := known[rec.EquipmentID]; !ok {
			orphaned++
			continue
		}
		if rec.Type != models.MaintenanceCalibration || rec.Status == models.MaintenanceCancelled {
			continue
		}
		if cur, ok := latest[rec.EquipmentID]; !ok || rec.Date.After(cur.Date) {
			latest[rec.EquipmentID] = rec
		}
	}
	return latest, orphaned
}

// MaintenancePriority: overdue or due within 3 days is high, within 7 medium.
func MaintenancePriority(daysLeft int) models.Priority {
	switch {
	case daysLeft <= highPriorityMaintenanceDays:
		return models.PriorityHigh
	case daysLeft <= equipmentservice.MaintenanceDueWindowDays:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// WarrantyPriority: within 7 days is high, within 30 medium.
func WarrantyPriority(daysLeft int) models.Priority {
	switch {
	case daysLeft <= highPriorityWarrantyDays:
		return models.PriorityHigh
	case daysLeft <= equipmentservice.WarrantyExpiryWindowDays:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

func maintenanceAlert(eq models.Equipment, now time.Time) models.Alert {
	due := *eq.NextMaintenanceDate
	left := equipmentservice.DaysUntil(due, now)
	description := fmt.Sprintf("%s is due for maintenance in %d days.", eq.Name, left)
	if left < 0 {
		description = fmt.Sprintf("%s is %d days overdue for maintenance.", eq.Name, -left)
	} else if left == 0 {
		description = fmt.Sprintf("%s is due for maintenance today.", eq.Name)
	}
	return newAlert(eq, models.AlertMaintenanceDue, MaintenancePriority(left),
		"Maintenance due: "+eq.Name, description, &due, now)
}

func warrantyAlert(eq models.Equipment, now time.Time) models.Alert {
	due := eq.WarrantyExpiry
	left := equipmentservice.DaysUntil(due, now)
	description := fmt.Sprintf("Warranty for %s expires in %d days.", eq.Name, left)
	if left <= 0 {
		description = fmt.Sprintf("Warranty for %s has expired.", eq.Name)
	}
	return newAlert(eq, models.AlertWarrantyExpiry, WarrantyPriority(left),
		"Warranty expiring: "+eq.Name, description, &due, now)
}

func calibrationAlert(eq models.Equipment, due time.Time, now time.Time) models.Alert {
	left := equipmentservice.DaysUntil(due, now)
	description := fmt.Sprintf("%s needs calibration within %d days.", eq.Name, left)
	if left < 0 {
		description = fmt.Sprintf("%s calibration is %d days overdue.", eq.Name, -left)
	}
	return newAlert(eq, models.AlertCalibrationDue, MaintenancePriority(left),
		"Calibration due: "+eq.Name, description, &due, now)
}

func newAlert(eq models.Equipment, kind models.AlertType, priority models.Priority, title, description string, due *time.Time, now time.Time) models.Alert {
	return models.Alert{
		ID:            uuid.NewString(),
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		Type:          kind,
		Title:         title,
		Description:   description,
		Priority:      priority,
		Date:          now,
		DueDate:       due,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type IssueRequest struct {
	Type        models.AlertType `json:"type" validate:"required,oneof=equipment_issue stock_low"`
	EquipmentID string           `json:"equipment_id" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	Priority    *models.Priority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
}

// RaiseIssue creates a manually raised alert. Priority defaults to low unless
// the caller supplies an override.
func RaiseIssue(eq models.Equipment, req IssueRequest, now time.Time) (models.Alert, error) {
	if req.Type != models.AlertEquipmentIssue && req.Type != models.AlertStockLow {
		return models.Alert{}, ErrInvalidIssue
	}
	if req.Title == "" {
		return models.Alert{}, ErrInvalidIssue
	}
	priority := models.PriorityLow
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return models.Alert{}, ErrInvalidIssue
		}
		priority = *req.Priority
	}
	return newAlert(eq, req.Type, priority, req.Title, req.Description, nil, now), nil
}

// AlertFilter selects alerts for display. Empty or "all" matches everything.
type AlertFilter struct {
	Priority         string
	Type             string
	ShowAcknowledged bool
}

func Filter(alerts []models.Alert, f AlertFilter) []models.Alert {
	out := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if !matches(f.Priority, string(a.Priority)) || !matches(f.Type, string(a.Type)) {
			continue
		}
		if a.Acknowledged && !f.ShowAcknowledged {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(want, got string) bool {
	return want == "" || want == "all" || want == got
}

type AlertSummary struct {
	Pending    int                     `json:"pending"`
	Critical   int                     `json:"critical"`
	ByPriority map[models.Priority]int `json:"by_priority"`
}

// Summarize counts unacknowledged alerts overall and per priority.
func Summarize(alerts []models.Alert) AlertSummary {
	summary := AlertSummary{ByPriority: map[models.Priority]int{
		models.PriorityCritical: 0,
		models.PriorityHigh:     0,
		models.PriorityMedium:   0,
		models.PriorityLow:      0,
	}}
	for _, a := range alerts {
		if a.Acknowledged {
			continue
		}
		summary.Pending++
		summary.ByPriority[a.Priority]++
	}
	summary.Critical = summary.ByPriority[models.PriorityCritical]
	return summary
}
