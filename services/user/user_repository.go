package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"labtrack/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*models.User, string, error)
	IsUserExists(ctx context.Context, email string) (bool, error)
	InsertUser(ctx context.Context, user models.User, passwordHash string) error
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, userID string, role models.Role) error
	DeactivateUser(ctx context.Context, userID string) error
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
}

type PostgresUserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &PostgresUserRepository{DB: db}
}

const userColumns = `id, email, full_name, role, department, phone, is_active, created_at, updated_at, last_login`

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE email = $1`, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetCredentialsByEmail(ctx context.Context, email string) (*models.User, string, error) {
	var row credentials
	err := r.DB.GetContext(ctx, &row, `SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to fetch credentials: %w", err)
	}
	return &row.User, row.PasswordHash, nil
}

func (r *PostgresUserRepository) IsUserExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, normalizeEmail(email))
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

func (r *PostgresUserRepository) InsertUser(ctx context.Context, user models.User, passwordHash string) error {
	row := credentials{User: user, PasswordHash: passwordHash}
	row.Email = normalizeEmail(row.Email)
	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO users (id, email, full_name, role, department, phone, is_active, created_at, updated_at, password_hash)
		VALUES (:id, :email, :full_name, :role, :department, :phone, :is_active, :created_at, :updated_at, :password_hash)`, row)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.DB.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY full_name, id`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *PostgresUserRepository) UpdateUserRole(ctx context.Context, userID string, role models.Role) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE users SET role = $1, updated_at = now() WHERE id = $2`, role, userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) DeactivateUser(ctx context.Context, userID string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE users SET is_active = false, updated_at = now() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET last_login = $1 WHERE id = $2`, at, userID)
	return err
}
