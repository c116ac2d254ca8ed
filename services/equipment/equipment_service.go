package equipmentservice

import (
	"context"
	"fmt"
	"time"

	"labtrack/models"
	"labtrack/providers"
	permissionservice "labtrack/services/permission"
	"labtrack/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EquipmentService interface {
	CreateEquipment(ctx context.Context, actor *models.User, req CreateEquipmentReq) (models.Equipment, error)
	UpdateEquipment(ctx context.Context, actor *models.User, id string, req UpdateEquipmentReq) (models.Equipment, error)
	RetireEquipment(ctx context.Context, actor *models.User, id string) (models.Equipment, error)
	DeleteEquipment(ctx context.Context, actor *models.User, id string) error
	GetEquipment(ctx context.Context, actor *models.User, id string) (models.Equipment, error)
	ListEquipment(ctx context.Context, actor *models.User, filter EquipmentFilter) ([]models.Equipment, error)
	ListCategories(ctx context.Context, actor *models.User) ([]string, error)
}

type equipmentService struct {
	repo   EquipmentRepository
	logger providers.ZapLoggerProvider
	now    func() time.Time
}

func NewEquipmentService(repo EquipmentRepository, logger providers.ZapLoggerProvider) EquipmentService {
	return &equipmentService{repo: repo, logger: logger, now: time.Now}
}

func authorize(actor *models.User, p models.Permission) error {
	if !permissionservice.HasPermission(actor, p) {
		return ErrForbidden
	}
	return nil
}

// QRToken is the scannable identifier printed on the equipment label.
func QRToken(serial string, at time.Time) string {
	return fmt.Sprintf("QR-%d-%s", at.UnixMilli(), serial)
}

// withDerived recomputes the schedule and book value.
func withDerived(eq models.Equipment) models.Equipment {
	eq = ScheduleNextMaintenance(eq)
	value := CurrentValue(eq)
	eq.CurrentValue = &value
	return eq
}

func (s *equipmentService) CreateEquipment(ctx context.Context, actor *models.User, req CreateEquipmentReq) (models.Equipment, error) {
	if err := authorize(actor, models.EquipmentCreate); err != nil {
		return models.Equipment{}, err
	}
	now := s.now().UTC()

	eq := models.Equipment{
		ID:                    uuid.NewString(),
		Name:                  req.Name,
		Model:                 req.Model,
		SerialNumber:          req.SerialNumber,
		Manufacturer:          req.Manufacturer,
		Category:              req.Category,
		Subcategory:           req.Subcategory,
		Location:              req.Location,
		Room:                  req.Room,
		Building:              req.Building,
		Status:                req.Status,
		Condition:             req.Condition,
		PurchaseDate:          req.PurchaseDate,
		WarrantyExpiry:        req.WarrantyExpiry,
		LastMaintenanceDate:   req.LastMaintenanceDate,
		NextMaintenanceDate:   req.NextMaintenanceDate,
		MaintenanceInterval:   req.MaintenanceInterval,
		NextMaintenanceManual: req.NextMaintenanceDate != nil,
		Cost:                  req.Cost,
		DepreciationRate:      req.DepreciationRate,
		QRCode:                QRToken(req.SerialNumber, now),
		Specifications:        req.Specifications,
		Notes:                 req.Notes,
		ResponsiblePerson:     req.ResponsiblePerson,
		Department:            req.Department,
		Supplier:              req.Supplier,
		SupplierContact:       req.SupplierContact,
		ManualURL:             req.ManualURL,
		CreatedAt:             now,
		UpdatedAt:             now,
		CreatedBy:             actor.ID,
		UpdatedBy:             actor.ID,
	}
	if eq.Status == "" {
		eq.Status = models.EquipmentActive
	}
	if eq.Condition == "" {
		eq.Condition = models.ConditionGood
	}
	eq = withDerived(eq)

	if err := utils.EquipmentValidityCheck(eq, now); err != nil {
		return models.Equipment{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.repo.InsertEquipment(ctx, eq); err != nil {
		s.logger.GetLogger().Error("failed to create equipment", zap.String("serial", eq.SerialNumber), zap.Error(err))
		return models.Equipment{}, err
	}
	s.logger.GetLogger().Info("equipment created", zap.String("equipment_id", eq.ID), zap.String("by", actor.ID))
	return eq, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, actor *models.User, id string, req UpdateEquipmentReq) (models.Equipment, error) {
	if err := authorize(actor, models.EquipmentUpdate); err != nil {
		return models.Equipment{}, err
	}
	current, err := s.repo.GetEquipmentByID(ctx, id)
	if err != nil {
		return models.Equipment{}, err
	}

	now := s.now().UTC()
	eq := ApplyUpdate(current, req)
	eq.UpdatedAt = now
	eq.UpdatedBy = actor.ID
	eq = withDerived(eq)

	if err := utils.EquipmentValidityCheck(eq, now); err != nil {
		return models.Equipment{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.repo.UpdateEquipment(ctx, eq); err != nil {
		s.logger.GetLogger().Error("failed to update equipment", zap.String("equipment_id", id), zap.Error(err))
		return models.Equipment{}, err
	}
	return eq, nil
}

// ApplyUpdate merges the non-nil fields of req into eq.
func ApplyUpdate(eq models.Equipment, req UpdateEquipmentReq) models.Equipment {
	setString(&eq.Name, req.Name)
	setString(&eq.Model, req.Model)
	setString(&eq.SerialNumber, req.SerialNumber)
	setString(&eq.Manufacturer, req.Manufacturer)
	setString(&eq.Category, req.Category)
	setString(&eq.Location, req.Location)
	setString(&eq.Specifications, req.Specifications)
	setString(&eq.ResponsiblePerson, req.ResponsiblePerson)
	setString(&eq.Department, req.Department)
	if req.Subcategory != nil {
		eq.Subcategory = req.Subcategory
	}
	if req.Room != nil {
		eq.Room = req.Room
	}
	if req.Building != nil {
		eq.Building = req.Building
	}
	if req.Notes != nil {
		eq.Notes = req.Notes
	}
	if req.Supplier != nil {
		eq.Supplier = req.Supplier
	}
	if req.SupplierContact != nil {
		eq.SupplierContact = req.SupplierContact
	}
	if req.ManualURL != nil {
		eq.ManualURL = req.ManualURL
	}
	if req.Status != nil {
		eq.Status = *req.Status
	}
	if req.Condition != nil {
		eq.Condition = *req.Condition
	}
	if req.PurchaseDate != nil {
		eq.PurchaseDate = *req.PurchaseDate
	}
	if req.WarrantyExpiry != nil {
		eq.WarrantyExpiry = *req.WarrantyExpiry
	}
	if req.LastMaintenanceDate != nil {
		eq.LastMaintenanceDate = req.LastMaintenanceDate
	}
	if req.MaintenanceInterval != nil {
		eq.MaintenanceInterval = *req.MaintenanceInterval
	}
	if req.Cost != nil {
		eq.Cost = *req.Cost
	}
	if req.DepreciationRate != nil {
		eq.DepreciationRate = req.DepreciationRate
	}
	if req.ClearManualSchedule {
		eq.NextMaintenanceManual = false
	}
	if req.NextMaintenanceDate != nil {
		eq.NextMaintenanceDate = req.NextMaintenanceDate
		eq.NextMaintenanceManual = true
	}
	return eq
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// RetireEquipment takes equipment out of service. Retired equipment raises no
// further alerts.
func (s *equipmentService) RetireEquipment(ctx context.Context, actor *models.User, id string) (models.Equipment, error) {
	retired := models.EquipmentRetired
	return s.UpdateEquipment(ctx, actor, id, UpdateEquipmentReq{Status: &retired})
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, actor *models.User, id string) error {
	if err := authorize(actor, models.EquipmentDelete); err != nil {
		return err
	}
	if err := s.repo.DeleteEquipmentByID(ctx, id); err != nil {
		return err
	}
	s.logger.GetLogger().Info("equipment deleted", zap.String("equipment_id", id), zap.String("by", actor.ID))
	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, actor *models.User, id string) (models.Equipment, error) {
	if err := authorize(actor, models.EquipmentRead); err != nil {
		return models.Equipment{}, err
	}
	return s.repo.GetEquipmentByID(ctx, id)
}

func (s *equipmentService) ListEquipment(ctx context.Context, actor *models.User, filter EquipmentFilter) ([]models.Equipment, error) {
	if err := authorize(actor, models.EquipmentRead); err != nil {
		return nil, err
	}
	return s.repo.ListEquipment(ctx, filter)
}

func (s *equipmentService) ListCategories(ctx context.Context, actor *models.User) ([]string, error) {
	if err := authorize(actor, models.EquipmentRead); err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx)
}
