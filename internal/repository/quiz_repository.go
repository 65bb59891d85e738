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

// sqlxQuizRepository implements domain.QuizRepository using sqlx.
type sqlxQuizRepository struct {
	db DBTX
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toDomainQuestions(qs models.QuestionList) []domain.Question {
	questions := make([]domain.Question, len(qs))
	for i, q := range qs {
		choices := make([]domain.Choice, len(q.Choices))
		for j, c := range q.Choices {
			choices[j] = domain.Choice{Choice: c.Choice}
		}
		if len(choices) == 0 {
			choices = nil
		}
		questions[i] = domain.Question{
			Question:      q.Question,
			Type:          domain.QuestionType(q.Type),
			CorrectAnswer: q.CorrectAnswer,
			Choices:       choices,
		}
	}
	return questions
}

func fromDomainQuestions(qs []domain.Question) models.QuestionList {
	questions := make(models.QuestionList, len(qs))
	for i, q := range qs {
		choices := make([]models.QuizChoice, len(q.Choices))
		for j, c := range q.Choices {
			choices[j] = models.QuizChoice{Choice: c.Choice}
		}
		if len(choices) == 0 {
			choices = nil
		}
		questions[i] = models.QuizQuestion{
			Question:      q.Question,
			Type:          string(q.Type),
			CorrectAnswer: q.CorrectAnswer,
			Choices:       choices,
		}
	}
	return questions
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
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

func fromDomainQuiz(d *domain.Quiz) *models.Quiz {
	if d == nil {
		return nil
	}
	var deletedAt sql.NullTime
	if d.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*d.DeletedAt)
	}
	return &models.Quiz{
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

// CreateQuiz inserts a new quiz.
func (r *sqlxQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m := fromDomainQuiz(quiz)

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()

	query := `INSERT INTO quizzes (id, instructor_id, title, description, questions, created_at, updated_at, deleted_at)
	          VALUES (:ID, :INSTRUCTOR_ID, :TITLE, :DESCRIPTION, :QUESTIONS, :CREATED_AT, :UPDATED_AT, :DELETED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	quiz.CreatedAt = m.CreatedAt
	quiz.UpdatedAt = m.UpdatedAt
	return nil
}

// GetQuizByID retrieves a quiz by id. Returns nil, nil when absent.
func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.Quiz, error) {
	query := `SELECT * FROM quizzes WHERE id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}

	var m models.Quiz
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}
	return toDomainQuiz(&m), nil
}

// GetAllQuizzes retrieves all quizzes.
func (r *sqlxQuizRepository) GetAllQuizzes(ctx context.Context, filters domain.ListFilters) ([]*domain.Quiz, error) {
	query := `SELECT * FROM quizzes`
	if !filters.WithDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	return r.selectQuizzes(ctx, query)
}

// GetQuizzesByInstructorID retrieves all quizzes authored by an instructor.
func (r *sqlxQuizRepository) GetQuizzesByInstructorID(ctx context.Context, instructorID string, filters domain.ListFilters) ([]*domain.Quiz, error) {
	query := `SELECT * FROM quizzes WHERE instructor_id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	return r.selectQuizzes(ctx, query, instructorID)
}

func (r *sqlxQuizRepository) selectQuizzes(ctx context.Context, query string, args ...interface{}) ([]*domain.Quiz, error) {
	var ms []models.Quiz
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(ms))
	for i := range ms {
		quizzes = append(quizzes, toDomainQuiz(&ms[i]))
	}
	return quizzes, nil
}

// UpdateQuiz persists the full quiz record.
func (r *sqlxQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m := fromDomainQuiz(quiz)
	m.UpdatedAt = time.Now()

	query := `UPDATE quizzes SET
	            instructor_id = :INSTRUCTOR_ID,
	            title = :TITLE,
	            description = :DESCRIPTION,
	            questions = :QUESTIONS,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("Quiz not found with ID: %s", quiz.ID))
	}

	quiz.UpdatedAt = m.UpdatedAt
	return nil
}

// SoftDeleteQuiz marks a quiz as deleted. Returns false when no live row matched.
func (r *sqlxQuizRepository) SoftDeleteQuiz(ctx context.Context, id string) (bool, error) {
	query := `UPDATE quizzes SET deleted_at = :1, updated_at = :2 WHERE id = :3 AND deleted_at IS NULL`

	now := time.Now()
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, now, now, id)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete quiz: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
