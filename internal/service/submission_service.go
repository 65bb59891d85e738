package service

import (
	"context"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"
	"learnhub/internal/util"

	"go.uber.org/zap"
)

// SubmissionService defines the interface for quiz submission operations,
// including the graded submit workflow.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
	GetSubmission(ctx context.Context, id string, withDeleted bool) (*dto.SubmissionResponse, error)
	GetAllSubmissions(ctx context.Context, withDeleted bool) ([]*dto.SubmissionResponse, error)
	GetSubmissionsByStudent(ctx context.Context, studentID string, withDeleted bool) ([]*dto.SubmissionResponse, error)
	GetSubmissionsByQuiz(ctx context.Context, quizID string, withDeleted bool) ([]*dto.SubmissionResponse, error)
	UpdateSubmission(ctx context.Context, id string, req *dto.UpdateSubmissionRequest) (*dto.SubmissionResponse, error)
	DeleteSubmission(ctx context.Context, id string) (bool, error)
	SubmitQuiz(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmissionResponse, error)
}

type submissionService struct {
	submissionRepo domain.SubmissionRepository
	quizRepo       domain.QuizRepository
	txManager      domain.TransactionManager
	now            func() time.Time
}

// NewSubmissionService creates a new instance of submissionService.
// The now function stamps submitted_at; pass nil to use the wall clock.
func NewSubmissionService(
	submissionRepo domain.SubmissionRepository,
	quizRepo domain.QuizRepository,
	txManager domain.TransactionManager,
	now func() time.Time,
) SubmissionService {
	if now == nil {
		now = time.Now
	}
	return &submissionService{
		submissionRepo: submissionRepo,
		quizRepo:       quizRepo,
		txManager:      txManager,
		now:            now,
	}
}

func submittedAnswersFromDTO(answers []dto.SubmittedAnswerDTO) []domain.SubmittedAnswer {
	result := make([]domain.SubmittedAnswer, len(answers))
	for i, a := range answers {
		result[i] = domain.SubmittedAnswer{
			QuestionIndex: a.QuestionIndex,
			StudentAnswer: a.StudentAnswer,
		}
	}
	return result
}

func toSubmissionResponse(sub *domain.QuizSubmission) *dto.SubmissionResponse {
	if sub == nil {
		return nil
	}
	answers := make([]dto.AnswerDTO, len(sub.Answers))
	for i, a := range sub.Answers {
		answers[i] = dto.AnswerDTO{
			QuestionIndex: a.QuestionIndex,
			StudentAnswer: a.StudentAnswer,
			IsCorrect:     a.IsCorrect,
		}
	}
	return &dto.SubmissionResponse{
		ID:          sub.ID,
		StudentID:   sub.StudentID,
		QuizID:      sub.QuizID,
		Answers:     answers,
		Score:       sub.Score,
		IsSubmitted: sub.IsSubmitted,
		SubmittedAt: sub.SubmittedAt,
		CreatedAt:   sub.CreatedAt,
		UpdatedAt:   sub.UpdatedAt,
		DeletedAt:   sub.DeletedAt,
	}
}

// CreateSubmission stores a draft submission. The quiz must exist, and the
// (student, quiz) pair must not already hold a submission.
func (s *submissionService) CreateSubmission(ctx context.Context, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error) {
	if req.StudentID == "" || req.QuizID == "" {
		return nil, domain.NewInvalidInputError("student_id and quiz_id are required")
	}

	var created *domain.QuizSubmission
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizID, domain.ListFilters{})
		if err != nil {
			return err
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(req.QuizID)
		}

		for _, a := range req.Answers {
			if a.QuestionIndex < 0 || a.QuestionIndex >= len(quiz.Questions) {
				return domain.NewInvalidAnswerIndexError(a.QuestionIndex, len(quiz.Questions))
			}
		}

		existing, err := s.submissionRepo.GetSubmissionByStudentAndQuiz(ctx, req.StudentID, req.QuizID, domain.ListFilters{})
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewAlreadySubmittedError(req.StudentID, req.QuizID)
		}

		answers := make([]domain.Answer, len(req.Answers))
		for i, a := range req.Answers {
			answers[i] = domain.Answer{QuestionIndex: a.QuestionIndex, StudentAnswer: a.StudentAnswer}
		}

		created = &domain.QuizSubmission{
			ID:        util.NewULID(),
			StudentID: req.StudentID,
			QuizID:    req.QuizID,
			Answers:   answers,
		}
		return s.submissionRepo.CreateSubmission(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return toSubmissionResponse(created), nil
}

// GetSubmission implements SubmissionService. Returns nil when absent.
func (s *submissionService) GetSubmission(ctx context.Context, id string, withDeleted bool) (*dto.SubmissionResponse, error) {
	sub, err := s.submissionRepo.GetSubmissionByID(ctx, id, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return toSubmissionResponse(sub), nil
}

// GetAllSubmissions implements SubmissionService
func (s *submissionService) GetAllSubmissions(ctx context.Context, withDeleted bool) ([]*dto.SubmissionResponse, error) {
	subs, err := s.submissionRepo.GetAllSubmissions(ctx, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return submissionsToResponses(subs), nil
}

// GetSubmissionsByStudent implements SubmissionService
func (s *submissionService) GetSubmissionsByStudent(ctx context.Context, studentID string, withDeleted bool) ([]*dto.SubmissionResponse, error) {
	subs, err := s.submissionRepo.GetSubmissionsByStudentID(ctx, studentID, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return submissionsToResponses(subs), nil
}

// GetSubmissionsByQuiz implements SubmissionService
func (s *submissionService) GetSubmissionsByQuiz(ctx context.Context, quizID string, withDeleted bool) ([]*dto.SubmissionResponse, error) {
	subs, err := s.submissionRepo.GetSubmissionsByQuizID(ctx, quizID, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return submissionsToResponses(subs), nil
}

func submissionsToResponses(subs []*domain.QuizSubmission) []*dto.SubmissionResponse {
	responses := make([]*dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, toSubmissionResponse(sub))
	}
	return responses
}

// UpdateSubmission replaces the answers of a draft submission. Returns nil
// when the submission is absent. Finalized submissions are immutable.
func (s *submissionService) UpdateSubmission(ctx context.Context, id string, req *dto.UpdateSubmissionRequest) (*dto.SubmissionResponse, error) {
	sub, err := s.submissionRepo.GetSubmissionByID(ctx, id, domain.ListFilters{})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	if sub.IsSubmitted {
		return nil, domain.NewAlreadySubmittedError(sub.StudentID, sub.QuizID)
	}

	if req.Answers != nil {
		answers := make([]domain.Answer, len(*req.Answers))
		for i, a := range *req.Answers {
			answers[i] = domain.Answer{QuestionIndex: a.QuestionIndex, StudentAnswer: a.StudentAnswer}
		}
		sub.Answers = answers
	}

	if err := s.submissionRepo.UpdateSubmission(ctx, sub); err != nil {
		return nil, err
	}
	return toSubmissionResponse(sub), nil
}

// DeleteSubmission implements SubmissionService. Returns false when no live row matched.
func (s *submissionService) DeleteSubmission(ctx context.Context, id string) (bool, error) {
	return s.submissionRepo.SoftDeleteSubmission(ctx, id)
}

// SubmitQuiz grades and finalizes a submission. Grading runs before any
// write, so a grading failure leaves no record behind. An existing draft
// for the (student, quiz) pair is upgraded in place; an existing finalized
// submission rejects with ALREADY_SUBMITTED. The whole workflow runs in one
// transaction, and the unique index on (student_id, quiz_id) backstops
// concurrent submits.
func (s *submissionService) SubmitQuiz(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmissionResponse, error) {
	if req.StudentID == "" || req.QuizID == "" {
		return nil, domain.NewInvalidInputError("student_id and quiz_id are required")
	}

	var result *domain.QuizSubmission
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizID, domain.ListFilters{})
		if err != nil {
			return err
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(req.QuizID)
		}

		graded, score, err := domain.GradeQuiz(quiz, submittedAnswersFromDTO(req.Answers))
		if err != nil {
			return err
		}

		existing, err := s.submissionRepo.GetSubmissionByStudentAndQuiz(ctx, req.StudentID, req.QuizID, domain.ListFilters{})
		if err != nil {
			return err
		}
		if existing != nil && existing.IsSubmitted {
			return domain.NewAlreadySubmittedError(req.StudentID, req.QuizID)
		}

		submittedAt := s.now()
		if existing != nil {
			// Draft upgrade: finalize in place.
			existing.Answers = graded
			existing.Score = score
			existing.IsSubmitted = true
			existing.SubmittedAt = &submittedAt
			if err := s.submissionRepo.UpdateSubmission(ctx, existing); err != nil {
				return err
			}
			result = existing
			return nil
		}

		result = &domain.QuizSubmission{
			ID:          util.NewULID(),
			StudentID:   req.StudentID,
			QuizID:      req.QuizID,
			Answers:     graded,
			Score:       score,
			IsSubmitted: true,
			SubmittedAt: &submittedAt,
		}
		return s.submissionRepo.CreateSubmission(ctx, result)
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz submission finalized",
		zap.String("submissionID", result.ID),
		zap.String("studentID", result.StudentID),
		zap.String("quizID", result.QuizID),
		zap.Float64("score", result.Score))

	return toSubmissionResponse(result), nil
}
