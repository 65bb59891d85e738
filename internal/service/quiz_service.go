package service

import (
	"context"
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/util"
)

// QuizService defines the interface for quiz management operations.
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, id string, withDeleted bool) (*dto.QuizResponse, error)
	GetAllQuizzes(ctx context.Context, withDeleted bool) ([]*dto.QuizResponse, error)
	GetQuizzesByInstructor(ctx context.Context, instructorID string, withDeleted bool) ([]*dto.QuizResponse, error)
	UpdateQuiz(ctx context.Context, id string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, id string) (bool, error)
}

type quizService struct {
	repo      domain.QuizRepository
	quizCache QuizCacheService
}

// NewQuizService creates a new instance of quizService.
func NewQuizService(repo domain.QuizRepository, quizCache QuizCacheService) QuizService {
	return &quizService{
		repo:      repo,
		quizCache: quizCache,
	}
}

func questionsFromDTO(qs []dto.QuestionDTO) []domain.Question {
	questions := make([]domain.Question, len(qs))
	for i, q := range qs {
		var choices []domain.Choice
		for _, c := range q.Choices {
			choices = append(choices, domain.Choice{Choice: c.Choice})
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

func questionsToDTO(qs []domain.Question) []dto.QuestionDTO {
	questions := make([]dto.QuestionDTO, len(qs))
	for i, q := range qs {
		var choices []dto.ChoiceDTO
		for _, c := range q.Choices {
			choices = append(choices, dto.ChoiceDTO{Choice: c.Choice})
		}
		questions[i] = dto.QuestionDTO{
			Question:      q.Question,
			Type:          string(q.Type),
			CorrectAnswer: q.CorrectAnswer,
			Choices:       choices,
		}
	}
	return questions
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	if quiz == nil {
		return nil
	}
	return &dto.QuizResponse{
		ID:           quiz.ID,
		InstructorID: quiz.InstructorID,
		Title:        quiz.Title,
		Description:  quiz.Description,
		Questions:    questionsToDTO(quiz.Questions),
		CreatedAt:    quiz.CreatedAt,
		UpdatedAt:    quiz.UpdatedAt,
		DeletedAt:    quiz.DeletedAt,
	}
}

func validateQuestions(qs []dto.QuestionDTO) error {
	for i, q := range qs {
		if q.Question == "" {
			return domain.NewInvalidInputError(fmt.Sprintf("Question %d has no text", i))
		}
		switch domain.QuestionType(q.Type) {
		case domain.QuestionTypeEnumeration:
			// choices optional
		case domain.QuestionTypeMultipleChoice:
			if len(q.Choices) == 0 {
				return domain.NewInvalidInputError(fmt.Sprintf("Question %d is multiple choice but has no choices", i))
			}
		default:
			return domain.NewInvalidInputError(fmt.Sprintf("Question %d has unknown type: %s", i, q.Type))
		}
		if q.CorrectAnswer == "" {
			return domain.NewInvalidInputError(fmt.Sprintf("Question %d has no correct answer", i))
		}
	}
	return nil
}

// CreateQuiz implements QuizService
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	if req.Title == "" {
		return nil, domain.NewInvalidInputError("Quiz title is required")
	}
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}

	quiz := &domain.Quiz{
		ID:           util.NewULID(),
		InstructorID: req.InstructorID,
		Title:        req.Title,
		Description:  req.Description,
		Questions:    questionsFromDTO(req.Questions),
	}
	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		return nil, err
	}
	return toQuizResponse(quiz), nil
}

// GetQuiz implements QuizService. Returns nil when the quiz is absent.
func (s *quizService) GetQuiz(ctx context.Context, id string, withDeleted bool) (*dto.QuizResponse, error) {
	if !withDeleted && s.quizCache != nil {
		quiz, err := s.quizCache.GetQuiz(ctx, id)
		if err != nil {
			return nil, err
		}
		return toQuizResponse(quiz), nil
	}

	quiz, err := s.repo.GetQuizByID(ctx, id, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return toQuizResponse(quiz), nil
}

// GetAllQuizzes implements QuizService
func (s *quizService) GetAllQuizzes(ctx context.Context, withDeleted bool) ([]*dto.QuizResponse, error) {
	quizzes, err := s.repo.GetAllQuizzes(ctx, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return quizzesToResponses(quizzes), nil
}

// GetQuizzesByInstructor implements QuizService
func (s *quizService) GetQuizzesByInstructor(ctx context.Context, instructorID string, withDeleted bool) ([]*dto.QuizResponse, error) {
	quizzes, err := s.repo.GetQuizzesByInstructorID(ctx, instructorID, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return quizzesToResponses(quizzes), nil
}

func quizzesToResponses(quizzes []*domain.Quiz) []*dto.QuizResponse {
	responses := make([]*dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, toQuizResponse(quiz))
	}
	return responses
}

// UpdateQuiz implements QuizService. Returns nil when the quiz is absent.
func (s *quizService) UpdateQuiz(ctx context.Context, id string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	quiz, err := s.repo.GetQuizByID(ctx, id, domain.ListFilters{})
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, nil
	}

	if req.InstructorID != nil {
		quiz.InstructorID = *req.InstructorID
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, domain.NewInvalidInputError("Quiz title cannot be empty")
		}
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.Questions != nil {
		if err := validateQuestions(*req.Questions); err != nil {
			return nil, err
		}
		quiz.Questions = questionsFromDTO(*req.Questions)
	}

	if err := s.repo.UpdateQuiz(ctx, quiz); err != nil {
		return nil, err
	}
	if s.quizCache != nil {
		s.quizCache.Invalidate(ctx, id)
	}
	return toQuizResponse(quiz), nil
}

// DeleteQuiz implements QuizService. Returns false when no live quiz matched.
func (s *quizService) DeleteQuiz(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.SoftDeleteQuiz(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted && s.quizCache != nil {
		s.quizCache.Invalidate(ctx, id)
	}
	return deleted, nil
}
