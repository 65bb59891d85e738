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

// sqlxAssessmentRepository implements domain.AssessmentRepository using sqlx.
type sqlxAssessmentRepository struct {
	db DBTX
}

// NewSQLXAssessmentRepository creates a new instance of sqlxAssessmentRepository.
func NewSQLXAssessmentRepository(db *sqlx.DB) domain.AssessmentRepository {
	return &sqlxAssessmentRepository{db: db}
}

func toDomainAssessment(m *models.Assessment) *domain.Assessment {
	if m == nil {
		return nil
	}
	return &domain.Assessment{
		ID:           m.ID,
		InstructorID: m.InstructorID,
		Title:        m.Title,
		Description:  m.Description,
		Questions:    toDomainQuestions(m.Questions),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    util.NullTimeToPtr(m.DeletedAt),
	}
}

func fromDomainAssessment(d *domain.Assessment) *models.Assessment {
	if d == nil {
		return nil
	}
	var deletedAt sql.NullTime
	if d.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*d.DeletedAt)
	}
	return &models.Assessment{
		ID:           d.ID,
		InstructorID: d.InstructorID,
		Title:        d.Title,
		Description:  d.Description,
		Questions:    fromDomainQuestions(d.Questions),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// CreateAssessment inserts a new assessment.
func (r *sqlxAssessmentRepository) CreateAssessment(ctx context.Context, assessment *domain.Assessment) error {
	m := fromDomainAssessment(assessment)

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()

	query := `INSERT INTO assessments (id, instructor_id, title, description, questions, created_at, updated_at, deleted_at)
	          VALUES (:ID, :INSTRUCTOR_ID, :TITLE, :DESCRIPTION, :QUESTIONS, :CREATED_AT, :UPDATED_AT, :DELETED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}

	assessment.CreatedAt = m.CreatedAt
	assessment.UpdatedAt = m.UpdatedAt
	return nil
}

// GetAssessmentByID retrieves an assessment by id. Returns nil, nil when absent.
func (r *sqlxAssessmentRepository) GetAssessmentByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.Assessment, error) {
	query := `SELECT * FROM assessments WHERE id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}

	var m models.Assessment
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment by id: %w", err)
	}
	return toDomainAssessment(&m), nil
}

// GetAllAssessments retrieves all assessments.
func (r *sqlxAssessmentRepository) GetAllAssessments(ctx context.Context, filters domain.ListFilters) ([]*domain.Assessment, error) {
	query := `SELECT * FROM assessments`
	if !filters.WithDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	return r.selectAssessments(ctx, query)
}

// GetAssessmentsByInstructorID retrieves assessments authored by an instructor.
func (r *sqlxAssessmentRepository) GetAssessmentsByInstructorID(ctx context.Context, instructorID string, filters domain.ListFilters) ([]*domain.Assessment, error) {
	query := `SELECT * FROM assessments WHERE instructor_id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	return r.selectAssessments(ctx, query, instructorID)
}

func (r *sqlxAssessmentRepository) selectAssessments(ctx context.Context, query string, args ...interface{}) ([]*domain.Assessment, error) {
	var ms []models.Assessment
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select assessments: %w", err)
	}

	assessments := make([]*domain.Assessment, 0, len(ms))
	for i := range ms {
		assessments = append(assessments, toDomainAssessment(&ms[i]))
	}
	return assessments, nil
}

// UpdateAssessment persists the full assessment record.
func (r *sqlxAssessmentRepository) UpdateAssessment(ctx context.Context, assessment *domain.Assessment) error {
	m := fromDomainAssessment(assessment)
	m.UpdatedAt = time.Now()

	query := `UPDATE assessments SET
	            instructor_id = :INSTRUCTOR_ID,
	            title = :TITLE,
	            description = :DESCRIPTION,
	            questions = :QUESTIONS,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("Assessment not found with ID: %s", assessment.ID))
	}

	assessment.UpdatedAt = m.UpdatedAt
	return nil
}

// SoftDeleteAssessment marks an assessment as deleted.
func (r *sqlxAssessmentRepository) SoftDeleteAssessment(ctx context.Context, id string) (bool, error) {
	query := `UPDATE assessments SET deleted_at = :1, updated_at = :2 WHERE id = :3 AND deleted_at IS NULL`

	now := time.Now()
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, now, now, id)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete assessment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
