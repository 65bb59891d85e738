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

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:         m.ID,
		UserRoleID: m.UserRoleID.String,
		FirstName:  m.FirstName,
		MiddleName: m.MiddleName.String,
		LastName:   m.LastName,
		Email:      m.Email,
		Password:   m.Password,
		IsEnabled:  m.IsEnabled,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  util.NullTimeToPtr(m.DeletedAt),
	}
}

func fromDomainUser(d *domain.User) *models.User {
	if d == nil {
		return nil
	}
	var deletedAt sql.NullTime
	if d.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*d.DeletedAt)
	}
	return &models.User{
		ID:         d.ID,
		UserRoleID: util.StringToNullString(d.UserRoleID),
		FirstName:  d.FirstName,
		MiddleName: util.StringToNullString(d.MiddleName),
		LastName:   d.LastName,
		Email:      d.Email,
		Password:   d.Password,
		IsEnabled:  d.IsEnabled,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CreateUser inserts a new user.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m := fromDomainUser(user)

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()

	query := `INSERT INTO users (id, user_role_id, first_name, middle_name, last_name, email, password, is_enabled, created_at, updated_at, deleted_at)
	          VALUES (:ID, :USER_ROLE_ID, :FIRST_NAME, :MIDDLE_NAME, :LAST_NAME, :EMAIL, :PASSWORD, :IS_ENABLED, :CREATED_AT, :UPDATED_AT, :DELETED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		if isUniqueViolation(err) {
			return domain.NewEmailAlreadyExistsError(user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetUserByID retrieves a user by id. Returns nil, nil when absent.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.User, error) {
	query := `SELECT * FROM users WHERE id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}

	var m models.User
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&m), nil
}

// GetUserByEmail retrieves a live user by email. Returns nil, nil when absent.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT * FROM users WHERE email = :1 AND deleted_at IS NULL`

	var m models.User
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomainUser(&m), nil
}

// GetAllUsers retrieves all users.
func (r *sqlxUserRepository) GetAllUsers(ctx context.Context, filters domain.ListFilters) ([]*domain.User, error) {
	query := `SELECT * FROM users`
	if !filters.WithDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	var ms []models.User
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	users := make([]*domain.User, 0, len(ms))
	for i := range ms {
		users = append(users, toDomainUser(&ms[i]))
	}
	return users, nil
}

// UpdateUser persists the full user record.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	m := fromDomainUser(user)
	m.UpdatedAt = time.Now()

	query := `UPDATE users SET
	            user_role_id = :USER_ROLE_ID,
	            first_name = :FIRST_NAME,
	            middle_name = :MIDDLE_NAME,
	            last_name = :LAST_NAME,
	            email = :EMAIL,
	            password = :PASSWORD,
	            is_enabled = :IS_ENABLED,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewEmailAlreadyExistsError(user.Email)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("User not found with ID: %s", user.ID))
	}

	user.UpdatedAt = m.UpdatedAt
	return nil
}

// SoftDeleteUser marks a user as deleted.
func (r *sqlxUserRepository) SoftDeleteUser(ctx context.Context, id string) (bool, error) {
	query := `UPDATE users SET deleted_at = :1, updated_at = :2 WHERE id = :3 AND deleted_at IS NULL`

	now := time.Now()
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, now, now, id)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
