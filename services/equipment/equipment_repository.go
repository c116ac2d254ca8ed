package equipmentservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"labtrack/models"

	"github.com/jmoiron/sqlx"
)

type EquipmentRepository interface {
	InsertEquipment(ctx context.Context, eq models.Equipment) error
	UpdateEquipment(ctx context.Context, eq models.Equipment) error
	DeleteEquipmentByID(ctx context.Context, id string) error
	GetEquipmentByID(ctx context.Context, id string) (models.Equipment, error)
	ListEquipment(ctx context.Context, filter EquipmentFilter) ([]models.Equipment, error)
	ListAllEquipment(ctx context.Context) ([]models.Equipment, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type PostgresEquipmentRepository struct {
	DB *sqlx.DB
}

func NewEquipmentRepository(db *sqlx.DB) EquipmentRepository {
	return &PostgresEquipmentRepository{DB: db}
}

const equipmentColumns = `id, name, model, serial_number, manufacturer, category, subcategory,
	location, room, building, status, condition, purchase_date, warranty_expiry,
	last_maintenance_date, next_maintenance_date, maintenance_interval, next_maintenance_manual,
	cost, depreciation_rate, current_value, qr_code, specifications, notes,
	responsible_person, department, supplier, supplier_contact, manual_url,
	created_at, updated_at, created_by, updated_by`

var sortColumns = map[string]string{
	SortByName:   "name ASC",
	SortByDate:   "created_at DESC",
	SortByCost:   "cost DESC",
	SortByStatus: "status ASC",
}

func (r *PostgresEquipmentRepository) InsertEquipment(ctx context.Context, eq models.Equipment) error {
	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO equipment (`+equipmentColumns+`)
		VALUES (:id, :name, :model, :serial_number, :manufacturer, :category, :subcategory,
			:location, :room, :building, :status, :condition, :purchase_date, :warranty_expiry,
			:last_maintenance_date, :next_maintenance_date, :maintenance_interval, :next_maintenance_manual,
			:cost, :depreciation_rate, :current_value, :qr_code, :specifications, :notes,
			:responsible_person, :department, :supplier, :supplier_contact, :manual_url,
			:created_at, :updated_at, :created_by, :updated_by)`, eq)
	if err != nil {
		return fmt.Errorf("failed to insert equipment: %w", err)
	}
	return nil
}

func (r *PostgresEquipmentRepository) UpdateEquipment(ctx context.Context, eq models.Equipment) error {
	result, err := r.DB.NamedExecContext(ctx, `
		UPDATE equipment SET
			name = :name, model = :model, serial_number = :serial_number, manufacturer = :manufacturer,
			category = :category, subcategory = :subcategory, location = :location, room = :room,
			building = :building, status = :status, condition = :condition,
			purchase_date = :purchase_date, warranty_expiry = :warranty_expiry,
			last_maintenance_date = :last_maintenance_date, next_maintenance_date = :next_maintenance_date,
			maintenance_interval = :maintenance_interval, next_maintenance_manual = :next_maintenance_manual,
			cost = :cost, depreciation_rate = :depreciation_rate, current_value = :current_value,
			specifications = :specifications, notes = :notes, responsible_person = :responsible_person,
			department = :department, supplier = :supplier, supplier_contact = :supplier_contact,
			manual_url = :manual_url, updated_at = :updated_at, updated_by = :updated_by
		WHERE id = :id`, eq)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresEquipmentRepository) DeleteEquipmentByID(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresEquipmentRepository) GetEquipmentByID(ctx context.Context, id string) (models.Equipment, error) {
	var eq models.Equipment
	err := r.DB.GetContext(ctx, &eq, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return eq, ErrNotFound
		}
		return eq, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	return eq, nil
}

func (r *PostgresEquipmentRepository) ListEquipment(ctx context.Context, filter EquipmentFilter) ([]models.Equipment, error) {
	order, ok := sortColumns[filter.SortBy]
	if !ok {
		order = sortColumns[SortByName]
	}

	query := `SELECT ` + equipmentColumns + ` FROM equipment
	WHERE ($1 = '' OR name ILIKE '%' || $1 || '%'
		OR model ILIKE '%' || $1 || '%'
		OR serial_number ILIKE '%' || $1 || '%'
		OR location ILIKE '%' || $1 || '%'
		OR manufacturer ILIKE '%' || $1 || '%')
	AND ($2 = '' OR status = $2)
	AND ($3 = '' OR category = $3)
	ORDER BY ` + order + `, id
	LIMIT $4 OFFSET $5`

	list := make([]models.Equipment, 0)
	err := r.DB.SelectContext(ctx, &list, query,
		filter.Search, allToEmpty(filter.Status), allToEmpty(filter.Category), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return list, nil
}

func (r *PostgresEquipmentRepository) ListAllEquipment(ctx context.Context) ([]models.Equipment, error) {
	list := make([]models.Equipment, 0)
	err := r.DB.SelectContext(ctx, &list, `SELECT `+equipmentColumns+` FROM equipment ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment: %w", err)
	}
	return list, nil
}

func (r *PostgresEquipmentRepository) ListCategories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.DB.SelectContext(ctx, &categories, `SELECT DISTINCT category FROM equipment ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func allToEmpty(v string) string {
	if v == "all" {
		return ""
	}
	return v
}
