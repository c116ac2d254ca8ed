package maintenanceservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"labtrack/models"

	"github.com/jmoiron/sqlx"
)

type MaintenanceRepository interface {
	// SaveRecord inserts rec and, when eq is non-nil, writes its maintenance
	// schedule in the same transaction.
	SaveRecord(ctx context.Context, rec models.MaintenanceRecord, eq *models.Equipment) error
	UpdateRecord(ctx context.Context, rec models.MaintenanceRecord, eq *models.Equipment) error
	GetRecordByID(ctx context.Context, id string) (models.MaintenanceRecord, error)
	ListRecordsForEquipment(ctx context.Context, equipmentID string) ([]models.MaintenanceRecord, error)
	ListAllRecords(ctx context.Context) ([]models.MaintenanceRecord, error)
	AssignTechnician(ctx context.Context, id, technicianID, technicianName string) error
}

type PostgresMaintenanceRepository struct {
	DB *sqlx.DB
}

func NewMaintenanceRepository(db *sqlx.DB) MaintenanceRepository {
	return &PostgresMaintenanceRepository{DB: db}
}

const recordColumns = `id, equipment_id, date, type, description, technician_id, technician_name, cost,
	parts_replaced, parts_cost, labor_hours, next_due_date, status, priority, notes,
	created_at, updated_at, created_by`

func (r *PostgresMaintenanceRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	return fn(tx)
}

func updateSchedule(ctx context.Context, tx *sqlx.Tx, eq *models.Equipment) error {
	if eq == nil {
		return nil
	}
	_, err := tx.ExecContext(ctx, `
		UPDATE equipment
		SET last_maintenance_date = $1, next_maintenance_date = $2, updated_at = $3, updated_by = $4
		WHERE id = $5`,
		eq.LastMaintenanceDate, eq.NextMaintenanceDate, eq.UpdatedAt, eq.UpdatedBy, eq.ID)
	if err != nil {
		return fmt.Errorf("failed to update equipment schedule: %w", err)
	}
	return nil
}

func (r *PostgresMaintenanceRepository) SaveRecord(ctx context.Context, rec models.MaintenanceRecord, eq *models.Equipment) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO maintenance_records (`+recordColumns+`)
			VALUES (:id, :equipment_id, :date, :type, :description, :technician_id, :technician_name, :cost,
				:parts_replaced, :parts_cost, :labor_hours, :next_due_date, :status, :priority, :notes,
				:created_at, :updated_at, :created_by)`, rec)
		if err != nil {
			return fmt.Errorf("failed to insert maintenance record: %w", err)
		}
		return updateSchedule(ctx, tx, eq)
	})
}

func (r *PostgresMaintenanceRepository) UpdateRecord(ctx context.Context, rec models.MaintenanceRecord, eq *models.Equipment) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, `
			UPDATE maintenance_records SET
				description = :description, cost = :cost, parts_replaced = :parts_replaced,
				parts_cost = :parts_cost, labor_hours = :labor_hours, next_due_date = :next_due_date,
				status = :status, priority = :priority, notes = :notes, updated_at = :updated_at
			WHERE id = :id`, rec)
		if err != nil {
			return fmt.Errorf("failed to update maintenance record: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return ErrRecordNotFound
		}
		return updateSchedule(ctx, tx, eq)
	})
}

func (r *PostgresMaintenanceRepository) GetRecordByID(ctx context.Context, id string) (models.MaintenanceRecord, error) {
	var rec models.MaintenanceRecord
	err := r.DB.GetContext(ctx, &rec, `SELECT `+recordColumns+` FROM maintenance_records WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, ErrRecordNotFound
		}
		return rec, fmt.Errorf("failed to fetch maintenance record: %w", err)
	}
	return rec, nil
}

func (r *PostgresMaintenanceRepository) ListRecordsForEquipment(ctx context.Context, equipmentID string) ([]models.MaintenanceRecord, error) {
	records := make([]models.MaintenanceRecord, 0)
	err := r.DB.SelectContext(ctx, &records, `
		SELECT `+recordColumns+` FROM maintenance_records
		WHERE equipment_id = $1
		ORDER BY date DESC, id`, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance history: %w", err)
	}
	return records, nil
}

func (r *PostgresMaintenanceRepository) ListAllRecords(ctx context.Context) ([]models.MaintenanceRecord, error) {
	records := make([]models.MaintenanceRecord, 0)
	err := r.DB.SelectContext(ctx, &records, `SELECT `+recordColumns+` FROM maintenance_records ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	return records, nil
}

func (r *PostgresMaintenanceRepository) AssignTechnician(ctx context.Context, id, technicianID, technicianName string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE maintenance_records
		SET technician_id = $1, technician_name = $2, updated_at = now()
		WHERE id = $3`, technicianID, technicianName, id)
	if err != nil {
		return fmt.Errorf("failed to assign technician: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}
