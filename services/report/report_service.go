package reportservice

import (
	"context"
	"errors"
	"time"

	"labtrack/models"
	"labtrack/providers"
	metricsprovider "labtrack/providers/metricsProvider"
	alertservice "labtrack/services/alert"
	equipmentservice "labtrack/services/equipment"
	permissionservice "labtrack/services/permission"

	"go.uber.org/zap"
)

var ErrForbidden = errors.New("permission denied")

type ReportService interface {
	Dashboard(ctx context.Context, actor *models.User) (models.InventoryStats, error)
	ExportEquipment(ctx context.Context, actor *models.User) ([]byte, error)
}

type reportService struct {
	equipment   equipmentservice.EquipmentRepository
	alerts      alertservice.AlertRepository
	maintenance alertservice.MaintenanceLister
	logger      providers.ZapLoggerProvider
	now         func() time.Time
}

func NewReportService(equipment equipmentservice.EquipmentRepository, alerts alertservice.AlertRepository,
	maintenance alertservice.MaintenanceLister, logger providers.ZapLoggerProvider) ReportService {
	return &reportService{
		equipment:   equipment,
		alerts:      alerts,
		maintenance: maintenance,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *reportService) Dashboard(ctx context.Context, actor *models.User) (models.InventoryStats, error) {
	if !permissionservice.HasPermission(actor, models.ReportsView) {
		return models.InventoryStats{}, ErrForbidden
	}
	inventory, err := s.equipment.ListAllEquipment(ctx)
	if err != nil {
		return models.InventoryStats{}, err
	}
	records, err := s.maintenance.ListAllRecords(ctx)
	if err != nil {
		return models.InventoryStats{}, err
	}
	alerts, err := s.alerts.ListAlerts(ctx)
	if err != nil {
		return models.InventoryStats{}, err
	}

	stats := ComputeInventoryStats(inventory, records, alerts, s.now().UTC())
	if stats.OrphanedRecords > 0 {
		s.logger.GetLogger().Warn("maintenance records reference missing equipment", zap.Int("orphaned", stats.OrphanedRecords))
	}
	return stats, nil
}

func (s *reportService) ExportEquipment(ctx context.Context, actor *models.User) ([]byte, error) {
	if !permissionservice.HasPermission(actor, models.ReportsExport) {
		return nil, ErrForbidden
	}
	inventory, err := s.equipment.ListAllEquipment(ctx)
	if err != nil {
		return nil, err
	}
	data, err := BuildEquipmentWorkbook(inventory, s.now().UTC())
	if err != nil {
		s.logger.GetLogger().Error("failed to build equipment export", zap.Error(err))
		return nil, err
	}
	metricsprovider.IncEquipmentExport()
	s.logger.GetLogger().Info("equipment exported", zap.Int("rows", len(inventory)), zap.String("by", actor.ID))
	return data, nil
}
