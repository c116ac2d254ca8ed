package alertservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"labtrack/models"
	"labtrack/providers"
	metricsprovider "labtrack/providers/metricsProvider"
	equipmentservice "labtrack/services/equipment"
	permissionservice "labtrack/services/permission"

	"go.uber.org/zap"
)

var ErrForbidden = errors.New("permission denied")

// MaintenanceLister supplies the maintenance history used for calibration triggers.
type MaintenanceLister interface {
	ListAllRecords(ctx context.Context) ([]models.MaintenanceRecord, error)
}

type AlertService interface {
	EvaluateTriggers(ctx context.Context, actor *models.User) (EvaluationResult, error)
	ListAlerts(ctx context.Context, actor *models.User, filter AlertFilter) (AlertListing, error)
	Acknowledge(ctx context.Context, actor *models.User, id string) (models.Alert, error)
	Resolve(ctx context.Context, actor *models.User, id string) (models.Alert, error)
	Dismiss(ctx context.Context, actor *models.User, id string) error
	RaiseIssue(ctx context.Context, actor *models.User, req IssueRequest) (models.Alert, error)
	Evaluate(ctx context.Context) (EvaluationResult, error)
}

type EvaluationResult struct {
	Created  []models.Alert `json:"created"`
	Orphaned int            `json:"orphaned_records"`
}

type AlertListing struct {
	Alerts  []models.Alert `json:"alerts"`
	Summary AlertSummary   `json:"summary"`
}

type alertService struct {
	repo        AlertRepository
	equipment   equipmentservice.EquipmentRepository
	maintenance MaintenanceLister
	dismissals  DismissalStore
	notifier    Notifier
	logger      providers.ZapLoggerProvider
	now         func() time.Time
}

// ServiceOption customizes the alert service.
type ServiceOption func(*alertService)

func WithNotifier(notifier Notifier) ServiceOption {
	return func(s *alertService) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *alertService) {
		s.now = now
	}
}

func NewAlertService(repo AlertRepository, equipment equipmentservice.EquipmentRepository, maintenance MaintenanceLister,
	dismissals DismissalStore, logger providers.ZapLoggerProvider, opts ...ServiceOption) AlertService {
	s := &alertService{
		repo:        repo,
		equipment:   equipment,
		maintenance: maintenance,
		dismissals:  dismissals,
		notifier:    noopNotifier{},
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func authorize(actor *models.User, p models.Permission) error {
	if !permissionservice.HasPermission(actor, p) {
		return ErrForbidden
	}
	return nil
}

func (s *alertService) EvaluateTriggers(ctx context.Context, actor *models.User) (EvaluationResult, error) {
	if err := authorize(actor, models.MaintenanceUpdate); err != nil {
		return EvaluationResult{}, err
	}
	return s.Evaluate(ctx)
}

// Evaluate runs one trigger pass over the stored state. It is also driven by
// the scheduler, without a session user.
func (s *alertService) Evaluate(ctx context.Context) (EvaluationResult, error) {
	equipment, err := s.equipment.ListAllEquipment(ctx)
	if err != nil {
		return EvaluationResult{}, err
	}
	records, err := s.maintenance.ListAllRecords(ctx)
	if err != nil {
		return EvaluationResult{}, err
	}
	current, err := s.repo.ListAlerts(ctx)
	if err != nil {
		return EvaluationResult{}, err
	}
	dismissed, err := s.dismissals.Dismissed(ctx)
	if err != nil {
		s.logger.GetLogger().Warn("dismissal store unavailable, evaluating without suppression", zap.Error(err))
		dismissed = nil
	}

	result := EvaluateTriggers(TriggerInput{
		Equipment:   equipment,
		Maintenance: records,
		Alerts:      current,
		Dismissed:   dismissed,
	}, s.now().UTC())

	metricsprovider.ObserveEvaluation(result.Orphaned)
	if result.Orphaned > 0 {
		s.logger.GetLogger().Warn("maintenance records reference missing equipment", zap.Int("orphaned", result.Orphaned))
	}

	// a concurrent pass may have stored the same trigger; only announce our rows
	created, err := s.repo.InsertSynthesizedAlerts(ctx, result.Alerts)
	if err != nil {
		return EvaluationResult{}, err
	}
	for _, a := range created {
		s.publish(ctx, metricsprovider.AlertRaised, a)
	}
	s.logger.GetLogger().Info("alert triggers evaluated",
		zap.Int("equipment", len(equipment)),
		zap.Int("synthesized", len(result.Alerts)),
		zap.Int("created", len(created)))

	if created == nil {
		created = []models.Alert{}
	}
	return EvaluationResult{Created: created, Orphaned: result.Orphaned}, nil
}

func (s *alertService) ListAlerts(ctx context.Context, actor *models.User, filter AlertFilter) (AlertListing, error) {
	if err := authorize(actor, models.EquipmentRead); err != nil {
		return AlertListing{}, err
	}
	all, err := s.repo.ListAlerts(ctx)
	if err != nil {
		return AlertListing{}, err
	}
	visible := Filter(all, filter)
	SortNewestFirst(visible)
	return AlertListing{Alerts: visible, Summary: Summarize(all)}, nil
}

func (s *alertService) Acknowledge(ctx context.Context, actor *models.User, id string) (models.Alert, error) {
	if err := authorize(actor, models.MaintenanceUpdate); err != nil {
		return models.Alert{}, err
	}
	current, err := s.repo.GetAlertByID(ctx, id)
	if err != nil {
		return models.Alert{}, err
	}
	updated, err := Acknowledge(current, actor, s.now().UTC())
	if err != nil {
		return current, err
	}
	stored, err := s.repo.AcknowledgeAlert(ctx, updated)
	if err != nil {
		return stored, err
	}
	s.publish(ctx, metricsprovider.AlertAcknowledged, stored)
	return stored, nil
}

func (s *alertService) Resolve(ctx context.Context, actor *models.User, id string) (models.Alert, error) {
	if err := authorize(actor, models.MaintenanceUpdate); err != nil {
		return models.Alert{}, err
	}
	current, err := s.repo.GetAlertByID(ctx, id)
	if err != nil {
		return models.Alert{}, err
	}
	updated, err := Resolve(current, actor, s.now().UTC())
	if err != nil {
		return current, err
	}
	stored, err := s.repo.ResolveAlert(ctx, updated)
	if err != nil {
		return stored, err
	}
	s.publish(ctx, metricsprovider.AlertResolved, stored)
	return stored, nil
}

// Dismiss removes the alert and, for synthesized alerts, records the trigger
// instance so the next evaluation does not raise it again.
func (s *alertService) Dismiss(ctx context.Context, actor *models.User, id string) error {
	if err := authorize(actor, models.AlertsManage); err != nil {
		return err
	}
	current, err := s.repo.GetAlertByID(ctx, id)
	if err != nil {
		return err
	}
	if current.DueDate != nil {
		if err := s.dismissals.Remember(ctx, KeyFor(current)); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteAlertByID(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, metricsprovider.AlertDismissed, current)
	return nil
}

func (s *alertService) RaiseIssue(ctx context.Context, actor *models.User, req IssueRequest) (models.Alert, error) {
	if err := authorize(actor, models.MaintenanceCreate); err != nil {
		return models.Alert{}, err
	}
	eq, err := s.equipment.GetEquipmentByID(ctx, req.EquipmentID)
	if err != nil {
		return models.Alert{}, err
	}
	alert, err := RaiseIssue(eq, req, s.now().UTC())
	if err != nil {
		return models.Alert{}, err
	}
	if err := s.repo.InsertAlerts(ctx, []models.Alert{alert}); err != nil {
		return models.Alert{}, err
	}
	s.publish(ctx, metricsprovider.AlertRaised, alert)
	s.logger.GetLogger().Info("issue raised",
		zap.String("alert_id", alert.ID),
		zap.String("equipment_id", eq.ID),
		zap.String("by", actor.ID))
	return alert, nil
}

func (s *alertService) publish(ctx context.Context, event string, a models.Alert) {
	metricsprovider.IncAlertEvent(event, string(a.Type))
	if err := s.notifier.Notify(ctx, AlertEvent{Type: event, Alert: a}); err != nil {
		s.logger.GetLogger().Warn("alert notification failed", zap.String("alert_id", a.ID), zap.Error(err))
	}
}

// SortNewestFirst orders alerts by date, newest first. Ties keep id order.
func SortNewestFirst(alerts []models.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if !alerts[i].Date.Equal(alerts[j].Date) {
			return alerts[i].Date.After(alerts[j].Date)
		}
		return alerts[i].ID < alerts[j].ID
	})
}

// RunScheduler evaluates triggers every interval until ctx is done.
func RunScheduler(ctx context.Context, svc AlertService, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.Evaluate(ctx); err != nil {
				logger.Error("scheduled alert evaluation failed", zap.Error(err))
			}
		}
	}
}
