package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func geographyQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:           "quiz1",
		InstructorID: "instructor1",
		Title:        "Geography and Arithmetic",
		Questions: []domain.Question{
			{Question: "What is the capital of France?", Type: domain.QuestionTypeEnumeration, CorrectAnswer: "Paris"},
			{Question: "What is 2 + 2?", Type: domain.QuestionTypeEnumeration, CorrectAnswer: "4"},
		},
	}
}

func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestSubmitQuizGradesAndPersists(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(geographyQuiz(), nil)
	subRepo.On("GetSubmissionByStudentAndQuiz", mock.Anything, "student1", "quiz1", domain.ListFilters{}).Return(nil, nil)

	var persisted *domain.QuizSubmission
	subRepo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*domain.QuizSubmission")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*domain.QuizSubmission)
		}).Return(nil)

	resp, err := svc.SubmitQuiz(context.Background(), &dto.SubmitQuizRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
		Answers: []dto.SubmittedAnswerDTO{
			{QuestionIndex: 0, StudentAnswer: "paris"},
			{QuestionIndex: 1, StudentAnswer: "5"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 50.0, resp.Score)
	assert.True(t, resp.IsSubmitted)
	require.NotNil(t, resp.SubmittedAt)
	assert.Equal(t, fixedClock()(), *resp.SubmittedAt)
	require.Len(t, resp.Answers, 2)
	assert.True(t, resp.Answers[0].IsCorrect) // case-insensitive match
	assert.False(t, resp.Answers[1].IsCorrect)

	require.NotNil(t, persisted)
	assert.NotEmpty(t, persisted.ID)
	assert.Equal(t, 50.0, persisted.Score)
	assert.True(t, persisted.IsSubmitted)

	quizRepo.AssertExpectations(t)
	subRepo.AssertExpectations(t)
}

func TestSubmitQuizRejectsSecondSubmission(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	submittedAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(geographyQuiz(), nil)
	subRepo.On("GetSubmissionByStudentAndQuiz", mock.Anything, "student1", "quiz1", domain.ListFilters{}).
		Return(&domain.QuizSubmission{
			ID:          "sub1",
			StudentID:   "student1",
			QuizID:      "quiz1",
			Score:       100.0,
			IsSubmitted: true,
			SubmittedAt: &submittedAt,
		}, nil)

	resp, err := svc.SubmitQuiz(context.Background(), &dto.SubmitQuizRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
		Answers:   []dto.SubmittedAnswerDTO{{QuestionIndex: 0, StudentAnswer: "Lyon"}},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrAlreadySubmitted, domainErr.Code)

	subRepo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
	subRepo.AssertNotCalled(t, "UpdateSubmission", mock.Anything, mock.Anything)
}

func TestSubmitQuizQuizNotFoundWritesNothing(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	quizRepo.On("GetQuizByID", mock.Anything, "missing", domain.ListFilters{}).Return(nil, nil)

	resp, err := svc.SubmitQuiz(context.Background(), &dto.SubmitQuizRequest{
		StudentID: "student1",
		QuizID:    "missing",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrQuizNotFound, domainErr.Code)

	subRepo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
	subRepo.AssertNotCalled(t, "GetSubmissionByStudentAndQuiz", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitQuizEmptyQuizWritesNothing(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	emptyQuiz := &domain.Quiz{ID: "quiz1", Title: "Empty"}
	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(emptyQuiz, nil)

	resp, err := svc.SubmitQuiz(context.Background(), &dto.SubmitQuizRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidQuizState, domainErr.Code)

	subRepo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
}

func TestSubmitQuizUpgradesDraft(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(geographyQuiz(), nil)
	subRepo.On("GetSubmissionByStudentAndQuiz", mock.Anything, "student1", "quiz1", domain.ListFilters{}).
		Return(&domain.QuizSubmission{
			ID:        "draft1",
			StudentID: "student1",
			QuizID:    "quiz1",
			Answers:   []domain.Answer{{QuestionIndex: 0, StudentAnswer: "lyon"}},
		}, nil)

	var updated *domain.QuizSubmission
	subRepo.On("UpdateSubmission", mock.Anything, mock.AnythingOfType("*domain.QuizSubmission")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*domain.QuizSubmission)
		}).Return(nil)

	resp, err := svc.SubmitQuiz(context.Background(), &dto.SubmitQuizRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
		Answers: []dto.SubmittedAnswerDTO{
			{QuestionIndex: 0, StudentAnswer: "PARIS"},
			{QuestionIndex: 1, StudentAnswer: "4"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "draft1", resp.ID) // same record, finalized in place
	assert.Equal(t, 100.0, resp.Score)
	assert.True(t, resp.IsSubmitted)

	require.NotNil(t, updated)
	assert.True(t, updated.IsSubmitted)
	require.NotNil(t, updated.SubmittedAt)

	subRepo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
}

func TestSubmitQuizConcurrentDuplicateSurfacesAlreadySubmitted(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(geographyQuiz(), nil)
	subRepo.On("GetSubmissionByStudentAndQuiz", mock.Anything, "student1", "quiz1", domain.ListFilters{}).Return(nil, nil)
	// A concurrent submit won the race; the unique index turns the insert
	// into an ALREADY_SUBMITTED error at the repository.
	subRepo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*domain.QuizSubmission")).
		Return(domain.NewAlreadySubmittedError("student1", "quiz1"))

	resp, err := svc.SubmitQuiz(context.Background(), &dto.SubmitQuizRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
		Answers:   []dto.SubmittedAnswerDTO{{QuestionIndex: 0, StudentAnswer: "Paris"}},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrAlreadySubmitted, domainErr.Code)
}

func TestSubmitQuizValidatesInput(t *testing.T) {
	svc := NewSubmissionService(new(MockSubmissionRepository), new(MockQuizRepository), fakeTxManager{}, nil)

	_, err := svc.SubmitQuiz(context.Background(), &dto.SubmitQuizRequest{QuizID: "quiz1"})
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
}

func TestCreateSubmissionDraft(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(geographyQuiz(), nil)
	subRepo.On("GetSubmissionByStudentAndQuiz", mock.Anything, "student1", "quiz1", domain.ListFilters{}).Return(nil, nil)
	subRepo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*domain.QuizSubmission")).Return(nil)

	resp, err := svc.CreateSubmission(context.Background(), &dto.CreateSubmissionRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
		Answers:   []dto.SubmittedAnswerDTO{{QuestionIndex: 0, StudentAnswer: "paris"}},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.IsSubmitted)
	assert.Nil(t, resp.SubmittedAt)
	assert.Equal(t, 0.0, resp.Score)
	require.Len(t, resp.Answers, 1)
	assert.False(t, resp.Answers[0].IsCorrect) // ungraded until submit
}

func TestCreateSubmissionRejectsOutOfRangeIndex(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(geographyQuiz(), nil)

	_, err := svc.CreateSubmission(context.Background(), &dto.CreateSubmissionRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
		Answers:   []dto.SubmittedAnswerDTO{{QuestionIndex: 7, StudentAnswer: "paris"}},
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidAnswerIndex, domainErr.Code)
	subRepo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
}

func TestCreateSubmissionRejectsExistingPair(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(geographyQuiz(), nil)
	subRepo.On("GetSubmissionByStudentAndQuiz", mock.Anything, "student1", "quiz1", domain.ListFilters{}).
		Return(&domain.QuizSubmission{ID: "sub1", StudentID: "student1", QuizID: "quiz1"}, nil)

	_, err := svc.CreateSubmission(context.Background(), &dto.CreateSubmissionRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrAlreadySubmitted, domainErr.Code)
}

func TestUpdateSubmissionImmutableOnceSubmitted(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	submittedAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	subRepo.On("GetSubmissionByID", mock.Anything, "sub1", domain.ListFilters{}).
		Return(&domain.QuizSubmission{
			ID: "sub1", StudentID: "student1", QuizID: "quiz1",
			IsSubmitted: true, SubmittedAt: &submittedAt,
		}, nil)

	answers := []dto.SubmittedAnswerDTO{{QuestionIndex: 0, StudentAnswer: "Lyon"}}
	_, err := svc.UpdateSubmission(context.Background(), "sub1", &dto.UpdateSubmissionRequest{Answers: &answers})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrAlreadySubmitted, domainErr.Code)
	subRepo.AssertNotCalled(t, "UpdateSubmission", mock.Anything, mock.Anything)
}

func TestUpdateSubmissionAbsentReturnsNil(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	subRepo.On("GetSubmissionByID", mock.Anything, "missing", domain.ListFilters{}).Return(nil, nil)

	resp, err := svc.UpdateSubmission(context.Background(), "missing", &dto.UpdateSubmissionRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestDeleteSubmissionRoundTrip(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	subRepo.On("SoftDeleteSubmission", mock.Anything, "sub1").Return(true, nil).Once()
	deleted, err := svc.DeleteSubmission(context.Background(), "sub1")
	require.NoError(t, err)
	assert.True(t, deleted)

	// Default read no longer sees the record.
	subRepo.On("GetSubmissionByID", mock.Anything, "sub1", domain.ListFilters{}).Return(nil, nil)
	resp, err := svc.GetSubmission(context.Background(), "sub1", false)
	require.NoError(t, err)
	assert.Nil(t, resp)

	// withDeleted still surfaces it.
	deletedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	subRepo.On("GetSubmissionByID", mock.Anything, "sub1", domain.ListFilters{WithDeleted: true}).
		Return(&domain.QuizSubmission{ID: "sub1", StudentID: "student1", QuizID: "quiz1", DeletedAt: &deletedAt}, nil)
	resp, err = svc.GetSubmission(context.Background(), "sub1", true)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotNil(t, resp.DeletedAt)

	// Second delete finds no live row.
	subRepo.On("SoftDeleteSubmission", mock.Anything, "sub1").Return(false, nil).Once()
	deleted, err = svc.DeleteSubmission(context.Background(), "sub1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSubmitQuizRepositoryErrorPropagates(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	subRepo := new(MockSubmissionRepository)
	svc := NewSubmissionService(subRepo, quizRepo, fakeTxManager{}, fixedClock())

	dbErr := errors.New("ORA-12541: TNS no listener")
	quizRepo.On("GetQuizByID", mock.Anything, "quiz1", domain.ListFilters{}).Return(nil, dbErr)

	_, err := svc.SubmitQuiz(context.Background(), &dto.SubmitQuizRequest{
		StudentID: "student1",
		QuizID:    "quiz1",
	})
	assert.ErrorIs(t, err, dbErr)
}
