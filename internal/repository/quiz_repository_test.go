package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quizColumns = []string{
	"ID", "INSTRUCTOR_ID", "TITLE", "DESCRIPTION", "QUESTIONS",
	"CREATED_AT", "UPDATED_AT", "DELETED_AT",
}

func TestQuestionConvertersRoundTrip(t *testing.T) {
	in := []domain.Question{
		{
			Question:      "What is the capital of France?",
			Type:          domain.QuestionTypeEnumeration,
			CorrectAnswer: "Paris",
		},
		{
			Question:      "Pick the even number",
			Type:          domain.QuestionTypeMultipleChoice,
			CorrectAnswer: "b",
			Choices: []domain.Choice{
				{Choice: "a"}, {Choice: "b"}, {Choice: "c"}, {Choice: "d"},
			},
		},
	}

	out := toDomainQuestions(fromDomainQuestions(in))
	require.Len(t, out, 2)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[1])
	assert.Nil(t, out[0].Choices)
	require.Len(t, out[1].Choices, 4)
}

func TestToDomainQuiz(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	m := &models.Quiz{
		ID:           "quiz1",
		InstructorID: "instructor1",
		Title:        "Geography Basics",
		Description:  "Capitals and rivers",
		Questions: models.QuestionList{
			{Question: "What is the capital of France?", Type: "enumeration", CorrectAnswer: "Paris"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	d := toDomainQuiz(m)
	require.NotNil(t, d)
	assert.Equal(t, "quiz1", d.ID)
	assert.Equal(t, "instructor1", d.InstructorID)
	require.Len(t, d.Questions, 1)
	assert.Equal(t, domain.QuestionTypeEnumeration, d.Questions[0].Type)
	assert.Nil(t, d.DeletedAt)

	assert.Nil(t, toDomainQuiz(nil))
	assert.Nil(t, fromDomainQuiz(nil))
}

func TestGetQuizByID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuizRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM quizzes WHERE id = :1 AND deleted_at IS NULL`)).
		WithArgs("quiz1").
		WillReturnRows(sqlmock.NewRows(quizColumns).
			AddRow("quiz1", "instructor1", "Geography Basics", "Capitals",
				`[{"question":"What is the capital of France?","type":"enumeration","correct_answer":"Paris"}]`,
				now, now, nil))

	got, err := repo.GetQuizByID(context.Background(), "quiz1", domain.ListFilters{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "Paris", got.Questions[0].CorrectAnswer)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllQuizzesSoftDeleteFilter(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuizRepository(db)

	now := time.Now()

	// Default listing filters soft-deleted rows in SQL.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM quizzes WHERE deleted_at IS NULL ORDER BY created_at`)).
		WillReturnRows(sqlmock.NewRows(quizColumns).
			AddRow("quiz1", "instructor1", "Live", "", `[]`, now, now, nil))

	got, err := repo.GetAllQuizzes(context.Background(), domain.ListFilters{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	// WithDeleted drops the filter clause entirely.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM quizzes ORDER BY created_at`)).
		WillReturnRows(sqlmock.NewRows(quizColumns).
			AddRow("quiz1", "instructor1", "Live", "", `[]`, now, now, nil).
			AddRow("quiz2", "instructor1", "Gone", "", `[]`, now, now, now))

	got, err = repo.GetAllQuizzes(context.Background(), domain.ListFilters{WithDeleted: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].DeletedAt)
	assert.NotNil(t, got[1].DeletedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuizNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuizRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quizzes SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateQuiz(context.Background(), &domain.Quiz{ID: "missing", Title: "x"})
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrNotFound, domainErr.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
