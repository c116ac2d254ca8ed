package maintenanceservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"labtrack/models"
	"labtrack/providers"
	equipmentservice "labtrack/services/equipment"
	permissionservice "labtrack/services/permission"
	"labtrack/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type MaintenanceService interface {
	RecordMaintenance(ctx context.Context, actor *models.User, req RecordMaintenanceReq) (models.MaintenanceRecord, error)
	UpdateRecord(ctx context.Context, actor *models.User, id string, req UpdateMaintenanceReq) (models.MaintenanceRecord, error)
	AssignTechnician(ctx context.Context, actor *models.User, id string, req AssignTechnicianReq) (models.MaintenanceRecord, error)
	GetRecord(ctx context.Context, actor *models.User, id string) (models.MaintenanceRecord, error)
	ListHistory(ctx context.Context, actor *models.User, equipmentID string) ([]models.MaintenanceRecord, error)
	ListAllHistory(ctx context.Context, actor *models.User) (History, error)
}

type maintenanceService struct {
	repo      MaintenanceRepository
	equipment equipmentservice.EquipmentRepository
	users     providers.UserDirectory
	logger    providers.ZapLoggerProvider
	now       func() time.Time
}

func NewMaintenanceService(repo MaintenanceRepository, equipment equipmentservice.EquipmentRepository,
	users providers.UserDirectory, logger providers.ZapLoggerProvider) MaintenanceService {
	return &maintenanceService{
		repo:      repo,
		equipment: equipment,
		users:     users,
		logger:    logger,
		now:       time.Now,
	}
}

func authorize(actor *models.User, p models.Permission) error {
	if !permissionservice.HasPermission(actor, p) {
		return ErrForbidden
	}
	return nil
}

// ApplyCompletion moves the equipment schedule forward after a completed
// maintenance. A record carrying a next due date pins the next maintenance
// to it; otherwise the next date is derived from the equipment interval.
func ApplyCompletion(eq models.Equipment, rec models.MaintenanceRecord) models.Equipment {
	if eq.LastMaintenanceDate == nil || rec.Date.After(*eq.LastMaintenanceDate) {
		date := rec.Date
		eq.LastMaintenanceDate = &date
	}
	if rec.NextDueDate != nil {
		next := *rec.NextDueDate
		eq.NextMaintenanceDate = &next
		eq.NextMaintenanceManual = true
	} else {
		eq.NextMaintenanceManual = false
	}
	return equipmentservice.ScheduleNextMaintenance(eq)
}

func (s *maintenanceService) scheduleFor(ctx context.Context, actor *models.User, rec models.MaintenanceRecord) (*models.Equipment, error) {
	if rec.Status != models.MaintenanceCompleted {
		return nil, nil
	}
	eq, err := s.equipment.GetEquipmentByID(ctx, rec.EquipmentID)
	if err != nil {
		return nil, err
	}
	eq = ApplyCompletion(eq, rec)
	eq.UpdatedAt = s.now().UTC()
	eq.UpdatedBy = actor.ID
	return &eq, nil
}

func (s *maintenanceService) technician(ctx context.Context, id string) (*models.User, error) {
	tech, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotATechnician, err)
	}
	if !permissionservice.CanAccess(tech, models.TechnicianRole) {
		return nil, ErrNotATechnician
	}
	return tech, nil
}

func (s *maintenanceService) RecordMaintenance(ctx context.Context, actor *models.User, req RecordMaintenanceReq) (models.MaintenanceRecord, error) {
	if err := authorize(actor, models.MaintenanceCreate); err != nil {
		return models.MaintenanceRecord{}, err
	}
	now := s.now().UTC()

	rec := models.MaintenanceRecord{
		ID:             uuid.NewString(),
		EquipmentID:    req.EquipmentID,
		Date:           req.Date,
		Type:           req.Type,
		Description:    req.Description,
		TechnicianID:   actor.ID,
		TechnicianName: actor.FullName,
		Cost:           req.Cost,
		PartsReplaced:  pq.StringArray(req.PartsReplaced),
		PartsCost:      req.PartsCost,
		LaborHours:     req.LaborHours,
		NextDueDate:    req.NextDueDate,
		Status:         req.Status,
		Priority:       req.Priority,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      actor.ID,
	}
	if rec.Status == "" {
		rec.Status = models.MaintenanceCompleted
		if rec.Date.After(now) {
			rec.Status = models.MaintenancePending
		}
	}
	if rec.Priority == "" {
		rec.Priority = models.PriorityMedium
	}
	if req.TechnicianID != "" && req.TechnicianID != actor.ID {
		tech, err := s.technician(ctx, req.TechnicianID)
		if err != nil {
			return models.MaintenanceRecord{}, err
		}
		rec.TechnicianID, rec.TechnicianName = tech.ID, tech.FullName
	}
	if err := utils.MaintenanceValidityCheck(rec); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	// The equipment must exist when the record is written, even if it is
	// deleted later.
	current, err := s.equipment.GetEquipmentByID(ctx, rec.EquipmentID)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	var eq *models.Equipment
	if rec.Status == models.MaintenanceCompleted {
		updated := ApplyCompletion(current, rec)
		updated.UpdatedAt, updated.UpdatedBy = now, actor.ID
		eq = &updated
	}
	if err := s.repo.SaveRecord(ctx, rec, eq); err != nil {
		s.logger.GetLogger().Error("failed to record maintenance", zap.String("equipment_id", rec.EquipmentID), zap.Error(err))
		return models.MaintenanceRecord{}, err
	}
	s.logger.GetLogger().Info("maintenance recorded",
		zap.String("record_id", rec.ID),
		zap.String("equipment_id", rec.EquipmentID),
		zap.String("status", string(rec.Status)))
	return rec, nil
}

func (s *maintenanceService) UpdateRecord(ctx context.Context, actor *models.User, id string, req UpdateMaintenanceReq) (models.MaintenanceRecord, error) {
	if err := authorize(actor, models.MaintenanceUpdate); err != nil {
		return models.MaintenanceRecord{}, err
	}
	current, err := s.repo.GetRecordByID(ctx, id)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}

	rec := ApplyRecordUpdate(current, req)
	rec.UpdatedAt = s.now().UTC()
	if err := utils.MaintenanceValidityCheck(rec); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var eq *models.Equipment
	if current.Status != models.MaintenanceCompleted {
		eq, err = s.scheduleFor(ctx, actor, rec)
		if errors.Is(err, equipmentservice.ErrNotFound) {
			// orphaned record, nothing left to reschedule
			eq, err = nil, nil
		}
		if err != nil {
			return models.MaintenanceRecord{}, err
		}
	}
	if err := s.repo.UpdateRecord(ctx, rec, eq); err != nil {
		s.logger.GetLogger().Error("failed to update maintenance record", zap.String("record_id", id), zap.Error(err))
		return models.MaintenanceRecord{}, err
	}
	return rec, nil
}

// ApplyRecordUpdate merges the non-nil fields of req into rec.
func ApplyRecordUpdate(rec models.MaintenanceRecord, req UpdateMaintenanceReq) models.MaintenanceRecord {
	if req.Description != nil {
		rec.Description = *req.Description
	}
	if req.Cost != nil {
		rec.Cost = *req.Cost
	}
	if req.PartsReplaced != nil {
		rec.PartsReplaced = pq.StringArray(req.PartsReplaced)
	}
	if req.PartsCost != nil {
		rec.PartsCost = *req.PartsCost
	}
	if req.LaborHours != nil {
		rec.LaborHours = *req.LaborHours
	}
	if req.NextDueDate != nil {
		rec.NextDueDate = req.NextDueDate
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	if req.Priority != nil {
		rec.Priority = *req.Priority
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}
	return rec
}

func (s *maintenanceService) AssignTechnician(ctx context.Context, actor *models.User, id string, req AssignTechnicianReq) (models.MaintenanceRecord, error) {
	if err := authorize(actor, models.MaintenanceAssign); err != nil {
		return models.MaintenanceRecord{}, err
	}
	rec, err := s.repo.GetRecordByID(ctx, id)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	tech, err := s.technician(ctx, req.TechnicianID)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	if err := s.repo.AssignTechnician(ctx, id, tech.ID, tech.FullName); err != nil {
		return models.MaintenanceRecord{}, err
	}
	rec.TechnicianID, rec.TechnicianName = tech.ID, tech.FullName
	s.logger.GetLogger().Info("technician assigned",
		zap.String("record_id", id),
		zap.String("technician_id", tech.ID),
		zap.String("by", actor.ID))
	return rec, nil
}

func (s *maintenanceService) GetRecord(ctx context.Context, actor *models.User, id string) (models.MaintenanceRecord, error) {
	if err := authorize(actor, models.MaintenanceRead); err != nil {
		return models.MaintenanceRecord{}, err
	}
	return s.repo.GetRecordByID(ctx, id)
}

func (s *maintenanceService) ListHistory(ctx context.Context, actor *models.User, equipmentID string) ([]models.MaintenanceRecord, error) {
	if err := authorize(actor, models.MaintenanceRead); err != nil {
		return nil, err
	}
	// records of deleted equipment are orphans, reported by ListAllHistory
	if _, err := s.equipment.GetEquipmentByID(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.repo.ListRecordsForEquipment(ctx, equipmentID)
}

func (s *maintenanceService) ListAllHistory(ctx context.Context, actor *models.User) (History, error) {
	if err := authorize(actor, models.MaintenanceRead); err != nil {
		return History{}, err
	}
	records, err := s.repo.ListAllRecords(ctx)
	if err != nil {
		return History{}, err
	}
	inventory, err := s.equipment.ListAllEquipment(ctx)
	if err != nil {
		return History{}, err
	}
	history := SplitOrphans(records, inventory)
	if history.Orphaned > 0 {
		s.logger.GetLogger().Warn("maintenance records reference missing equipment", zap.Int("orphaned", history.Orphaned))
	}
	return history, nil
}

// SplitOrphans keeps the records whose equipment is still in the inventory
// and counts the rest.
func SplitOrphans(records []models.MaintenanceRecord, inventory []models.Equipment) History {
	known := make(map[string]struct{}, len(inventory))
	for _, eq := range inventory {
		known[eq.ID] = struct{}{}
	}
	history := History{Records: make([]models.MaintenanceRecord, 0, len(records))}
	for _, rec := range records {
		if _, ok := known[rec.EquipmentID]; !ok {
			history.Orphaned++
			continue
		}
		history.Records = append(history.Records, rec)
	}
	return history
}
