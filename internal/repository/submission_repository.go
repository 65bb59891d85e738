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

// sqlxSubmissionRepository implements domain.SubmissionRepository using sqlx.
type sqlxSubmissionRepository struct {
	db DBTX
}

// NewSQLXSubmissionRepository creates a new instance of sqlxSubmissionRepository.
func NewSQLXSubmissionRepository(db *sqlx.DB) domain.SubmissionRepository {
	return &sqlxSubmissionRepository{db: db}
}

func toDomainSubmission(m *models.QuizSubmission) *domain.QuizSubmission {
	if m == nil {
		return nil
	}
	answers := make([]domain.Answer, len(m.Answers))
	for i, a := range m.Answers {
		answers[i] = domain.Answer{
			QuestionIndex: a.QuestionIndex,
			StudentAnswer: a.StudentAnswer,
			IsCorrect:     a.IsCorrect,
		}
	}
	return &domain.QuizSubmission{
		ID:          m.ID,
		StudentID:   m.StudentID,
		QuizID:      m.QuizID,
		Answers:     answers,
		Score:       m.Score,
		IsSubmitted: m.IsSubmitted,
		SubmittedAt: util.NullTimeToPtr(m.SubmittedAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   util.NullTimeToPtr(m.DeletedAt),
	}
}

func fromDomainSubmission(d *domain.QuizSubmission) *models.QuizSubmission {
	if d == nil {
		return nil
	}
	answers := make(models.AnswerList, len(d.Answers))
	for i, a := range d.Answers {
		answers[i] = models.SubmissionAnswer{
			QuestionIndex: a.QuestionIndex,
			StudentAnswer: a.StudentAnswer,
			IsCorrect:     a.IsCorrect,
		}
	}
	var submittedAt sql.NullTime
	if d.SubmittedAt != nil {
		submittedAt = util.TimeToNullTime(*d.SubmittedAt)
	}
	var deletedAt sql.NullTime
	if d.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*d.DeletedAt)
	}
	return &models.QuizSubmission{
		ID:          d.ID,
		StudentID:   d.StudentID,
		QuizID:      d.QuizID,
		Answers:     answers,
		Score:       d.Score,
		IsSubmitted: d.IsSubmitted,
		SubmittedAt: submittedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// CreateSubmission inserts a new submission. A unique index on
// (STUDENT_ID, QUIZ_ID) backs the single-submission invariant; violations are
// surfaced as AlreadySubmitted so concurrent duplicate submits fail cleanly.
func (r *sqlxSubmissionRepository) CreateSubmission(ctx context.Context, submission *domain.QuizSubmission) error {
	m := fromDomainSubmission(submission)

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()

	query := `INSERT INTO quiz_submissions (id, student_id, quiz_id, answers, score, is_submitted, submitted_at, created_at, updated_at, deleted_at)
	          VALUES (:ID, :STUDENT_ID, :QUIZ_ID, :ANSWERS, :SCORE, :IS_SUBMITTED, :SUBMITTED_AT, :CREATED_AT, :UPDATED_AT, :DELETED_AT)`

	_, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewAlreadySubmittedError(submission.StudentID, submission.QuizID)
		}
		return fmt.Errorf("failed to create quiz submission: %w", err)
	}

	submission.CreatedAt = m.CreatedAt
	submission.UpdatedAt = m.UpdatedAt
	return nil
}

// GetSubmissionByID retrieves a submission by id. Soft-deleted rows are
// excluded unless filters.WithDeleted is set. Returns nil, nil when absent.
func (r *sqlxSubmissionRepository) GetSubmissionByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.QuizSubmission, error) {
	query := `SELECT * FROM quiz_submissions WHERE id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}

	var m models.QuizSubmission
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission by id: %w", err)
	}
	return toDomainSubmission(&m), nil
}

// GetSubmissionByStudentAndQuiz retrieves the submission for a
// (student, quiz) pair. Returns nil, nil when absent.
func (r *sqlxSubmissionRepository) GetSubmissionByStudentAndQuiz(ctx context.Context, studentID, quizID string, filters domain.ListFilters) (*domain.QuizSubmission, error) {
	query := `SELECT * FROM quiz_submissions WHERE student_id = :1 AND quiz_id = :2`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}

	var m models.QuizSubmission
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, studentID, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission by student and quiz: %w", err)
	}
	return toDomainSubmission(&m), nil
}

// GetAllSubmissions retrieves all submissions.
func (r *sqlxSubmissionRepository) GetAllSubmissions(ctx context.Context, filters domain.ListFilters) ([]*domain.QuizSubmission, error) {
	query := `SELECT * FROM quiz_submissions`
	if !filters.WithDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	return r.selectSubmissions(ctx, query)
}

// GetSubmissionsByStudentID retrieves all submissions made by a student.
func (r *sqlxSubmissionRepository) GetSubmissionsByStudentID(ctx context.Context, studentID string, filters domain.ListFilters) ([]*domain.QuizSubmission, error) {
	query := `SELECT * FROM quiz_submissions WHERE student_id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	return r.selectSubmissions(ctx, query, studentID)
}

// GetSubmissionsByQuizID retrieves all submissions against a quiz.
func (r *sqlxSubmissionRepository) GetSubmissionsByQuizID(ctx context.Context, quizID string, filters domain.ListFilters) ([]*domain.QuizSubmission, error) {
	query := `SELECT * FROM quiz_submissions WHERE quiz_id = :1`
	if !filters.WithDeleted {
		query += ` AND deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	return r.selectSubmissions(ctx, query, quizID)
}

func (r *sqlxSubmissionRepository) selectSubmissions(ctx context.Context, query string, args ...interface{}) ([]*domain.QuizSubmission, error) {
	var ms []models.QuizSubmission
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select submissions: %w", err)
	}

	submissions := make([]*domain.QuizSubmission, 0, len(ms))
	for i := range ms {
		submissions = append(submissions, toDomainSubmission(&ms[i]))
	}
	return submissions, nil
}

// UpdateSubmission persists the full submission record. The service layer is
// responsible for merge semantics.
func (r *sqlxSubmissionRepository) UpdateSubmission(ctx context.Context, submission *domain.QuizSubmission) error {
	m := fromDomainSubmission(submission)
	m.UpdatedAt = time.Now()

	query := `UPDATE quiz_submissions SET
	            student_id = :STUDENT_ID,
	            quiz_id = :QUIZ_ID,
	            answers = :ANSWERS,
	            score = :SCORE,
	            is_submitted = :IS_SUBMITTED,
	            submitted_at = :SUBMITTED_AT,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewAlreadySubmittedError(submission.StudentID, submission.QuizID)
		}
		return fmt.Errorf("failed to update submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("Submission not found with ID: %s", submission.ID))
	}

	submission.UpdatedAt = m.UpdatedAt
	return nil
}

// SoftDeleteSubmission marks a submission as deleted. Returns false when no
// live row matched.
func (r *sqlxSubmissionRepository) SoftDeleteSubmission(ctx context.Context, id string) (bool, error) {
	query := `UPDATE quiz_submissions SET deleted_at = :1, updated_at = :2 WHERE id = :3 AND deleted_at IS NULL`

	now := time.Now()
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, now, now, id)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
