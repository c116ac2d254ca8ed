package alertservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"labtrack/models"

	"github.com/jmoiron/sqlx"
)

var ErrAlertNotFound = errors.New("alert not found")

type AlertRepository interface {
	ListAlerts(ctx context.Context) ([]models.Alert, error)
	GetAlertByID(ctx context.Context, id string) (models.Alert, error)
	InsertAlerts(ctx context.Context, alerts []models.Alert) error
	InsertSynthesizedAlerts(ctx context.Context, alerts []models.Alert) ([]models.Alert, error)
	AcknowledgeAlert(ctx context.Context, alert models.Alert) (models.Alert, error)
	ResolveAlert(ctx context.Context, alert models.Alert) (models.Alert, error)
	DeleteAlertByID(ctx context.Context, id string) error
}

type PostgresAlertRepository struct {
	DB *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) AlertRepository {
	return &PostgresAlertRepository{DB: db}
}

const alertColumns = `id, equipment_id, equipment_name, type, title, description, priority, date, due_date,
	acknowledged, acknowledged_by, acknowledged_at, resolved, resolved_by, resolved_at, created_at, updated_at`

func (r *PostgresAlertRepository) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	alerts := make([]models.Alert, 0)
	err := r.DB.SelectContext(ctx, &alerts, `SELECT `+alertColumns+` FROM alerts ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (r *PostgresAlertRepository) GetAlertByID(ctx context.Context, id string) (models.Alert, error) {
	var alert models.Alert
	err := r.DB.GetContext(ctx, &alert, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return alert, ErrAlertNotFound
		}
		return alert, fmt.Errorf("failed to fetch alert: %w", err)
	}
	return alert, nil
}

const insertAlertQuery = `
	INSERT INTO alerts (` + alertColumns + `)
	VALUES (:id, :equipment_id, :equipment_name, :type, :title, :description, :priority, :date, :due_date,
		:acknowledged, :acknowledged_by, :acknowledged_at, :resolved, :resolved_by, :resolved_at,
		:created_at, :updated_at)`

func (r *PostgresAlertRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
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

// InsertAlerts stores manually raised alerts in one transaction.
func (r *PostgresAlertRepository) InsertAlerts(ctx context.Context, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, a := range alerts {
			if _, err := tx.NamedExecContext(ctx, insertAlertQuery, a); err != nil {
				return fmt.Errorf("failed to insert alert: %w", err)
			}
		}
		return nil
	})
}

// InsertSynthesizedAlerts stores trigger alerts, skipping any that collide
// with an open alert of the same equipment and type (idx_alerts_open_trigger).
// It returns only the rows actually written.
func (r *PostgresAlertRepository) InsertSynthesizedAlerts(ctx context.Context, alerts []models.Alert) ([]models.Alert, error) {
	inserted := make([]models.Alert, 0, len(alerts))
	if len(alerts) == 0 {
		return inserted, nil
	}
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, a := range alerts {
			result, err := tx.NamedExecContext(ctx, insertAlertQuery+` ON CONFLICT DO NOTHING`, a)
			if err != nil {
				return fmt.Errorf("failed to insert alert: %w", err)
			}
			if n, _ := result.RowsAffected(); n > 0 {
				inserted = append(inserted, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

// AcknowledgeAlert writes the acknowledgement only while the stored row is
// still unacknowledged. On a lost race it returns the stored row and
// ErrAlreadyAcknowledged.
func (r *PostgresAlertRepository) AcknowledgeAlert(ctx context.Context, alert models.Alert) (models.Alert, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE alerts SET acknowledged = TRUE, acknowledged_by = $1, acknowledged_at = $2, updated_at = $3
		WHERE id = $4 AND NOT acknowledged`,
		alert.AcknowledgedBy, alert.AcknowledgedAt, alert.UpdatedAt, alert.ID)
	if err != nil {
		return models.Alert{}, fmt.Errorf("failed to acknowledge alert: %w", err)
	}
	if rowsAffected, _ := result.RowsAffected(); rowsAffected > 0 {
		return alert, nil
	}
	stored, err := r.GetAlertByID(ctx, alert.ID)
	if err != nil {
		return models.Alert{}, err
	}
	return stored, ErrAlreadyAcknowledged
}

// ResolveAlert writes the resolution only while the stored row is
// acknowledged and not yet resolved.
func (r *PostgresAlertRepository) ResolveAlert(ctx context.Context, alert models.Alert) (models.Alert, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE alerts SET resolved = TRUE, resolved_by = $1, resolved_at = $2, updated_at = $3
		WHERE id = $4 AND acknowledged AND NOT resolved`,
		alert.ResolvedBy, alert.ResolvedAt, alert.UpdatedAt, alert.ID)
	if err != nil {
		return models.Alert{}, fmt.Errorf("failed to resolve alert: %w", err)
	}
	if rowsAffected, _ := result.RowsAffected(); rowsAffected > 0 {
		return alert, nil
	}
	stored, err := r.GetAlertByID(ctx, alert.ID)
	if err != nil {
		return models.Alert{}, err
	}
	if !stored.Acknowledged {
		return stored, ErrNotAcknowledged
	}
	return stored, ErrAlreadyResolved
}

func (r *PostgresAlertRepository) DeleteAlertByID(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}
