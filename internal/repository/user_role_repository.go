package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"
	"learnhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRoleRepository implements domain.UserRoleRepository using sqlx.
type sqlxUserRoleRepository struct {
	db DBTX
}

// NewSQLXUserRoleRepository creates a new instance of sqlxUserRoleRepository.
func NewSQLXUserRoleRepository(db *sqlx.DB) domain.UserRoleRepository {
	return &sqlxUserRoleRepository{db: db}
}

func toDomainUserRole(m *models.UserRole) *domain.UserRole {
	if m == nil {
		return nil
	}
	return &domain.UserRole{
		ID:        m.ID,
		Name:      m.Name,
		IsEnabled: m.IsEnabled,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: util.NullTimeToPtr(m.DeletedAt),
	}
}

func fromDomainUserRole(d *domain.UserRole) *models.UserRole {
	if d == nil {
		return nil
	}
	var deletedAt sql.NullTime
	if d.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*d.DeletedAt)
	}
	return &models.UserRole{
		ID:        d.ID,
		Name:      d.Name,
		IsEnabled: d.IsEnabled,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// CreateRole inserts a new role.
func (r *sqlxUserRoleRepository) CreateRole(ctx context.Context, role *domain.UserRole) error {
	m := fromDomainUserRole(role)

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()

	query := `INSERT INTO user_roles (id, name, is_enabled, created_at, updated_at, deleted_at)
	          VALUES (:ID, :NAME, :IS_ENABLED, :CREATED_AT, :UPDATED_AT, :DELETED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		if isUniqueViolation(err) {
			return domain.NewRoleAlreadyExistsError(role.Name)
		}
		return fmt.Errorf("failed to create role: %w", err)
	}

	role.CreatedAt = m.CreatedAt
	role.UpdatedAt = m.UpdatedAt
	return nil
}

// GetRoleByID retrieves a role by id. Returns nil, nil when absent.
func (r *sqlxUserRoleRepository) GetRoleByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.UserRole, error) {
	query := `SELECT * FROM user_roles WHERE id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}

	var m models.UserRole
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by id: %w", err)
	}
	return toDomainUserRole(&m), nil
}

// GetRoleByName retrieves a live role by name. Returns nil, nil when absent.
func (r *sqlxUserRoleRepository) GetRoleByName(ctx context.Context, name string) (*domain.UserRole, error) {
	query := `SELECT * FROM user_roles WHERE name = :1 AND deleted_at IS NULL`

	var m models.UserRole
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}
	return toDomainUserRole(&m), nil
}

// GetAllRoles retrieves all roles.
func (r *sqlxUserRoleRepository) GetAllRoles(ctx context.Context, filters domain.ListFilters) ([]*domain.UserRole, error) {
	query := `SELECT * FROM user_roles`
	if !filters.WithDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	var ms []models.UserRole
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query); err != nil {
		return nil, fmt.Errorf("failed to select roles: %w", err)
	}

	roles := make([]*domain.UserRole, 0, len(ms))
	for i := range ms {
		roles = append(roles, toDomainUserRole(&ms[i]))
	}
	return roles, nil
}

// UpdateRole persists the full role record.
func (r *sqlxUserRoleRepository) UpdateRole(ctx context.Context, role *domain.UserRole) error {
	m := fromDomainUserRole(role)
	m.UpdatedAt = time.Now()

	query := `UPDATE user_roles SET
	            name = :NAME,
	            is_enabled = :IS_ENABLED,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewRoleAlreadyExistsError(role.Name)
		}
		return fmt.Errorf("failed to update role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("Role not found with ID: %s", role.ID))
	}

	role.UpdatedAt = m.UpdatedAt
	return nil
}

// SoftDeleteRole marks a role as deleted.
func (r *sqlxUserRoleRepository) SoftDeleteRole(ctx context.Context, id string) (bool, error) {
	query := `UPDATE user_roles SET deleted_at = :1, updated_at = :2 WHERE id = :3 AND deleted_at IS NULL`

	now := time.Now()
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, now, now, id)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
