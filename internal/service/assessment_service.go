package service

import (
	"context"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/util"
)

// AssessmentService defines the interface for assessment management operations.
type AssessmentService interface {
	CreateAssessment(ctx context.Context, req *dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	GetAssessment(ctx context.Context, id string, withDeleted bool) (*dto.AssessmentResponse, error)
	GetAllAssessments(ctx context.Context, withDeleted bool) ([]*dto.AssessmentResponse, error)
	GetAssessmentsByInstructor(ctx context.Context, instructorID string, withDeleted bool) ([]*dto.AssessmentResponse, error)
	UpdateAssessment(ctx context.Context, id string, req *dto.UpdateAssessmentRequest) (*dto.AssessmentResponse, error)
	DeleteAssessment(ctx context.Context, id string) (bool, error)
}

type assessmentService struct {
	repo domain.AssessmentRepository
}

// NewAssessmentService creates a new instance of assessmentService.
func NewAssessmentService(repo domain.AssessmentRepository) AssessmentService {
	return &assessmentService{repo: repo}
}

func toAssessmentResponse(assessment *domain.Assessment) *dto.AssessmentResponse {
	if assessment == nil {
		return nil
	}
	return &dto.AssessmentResponse{
		ID:           assessment.ID,
		InstructorID: assessment.InstructorID,
		Title:        assessment.Title,
		Description:  assessment.Description,
		Questions:    questionsToDTO(assessment.Questions),
		CreatedAt:    assessment.CreatedAt,
		UpdatedAt:    assessment.UpdatedAt,
		DeletedAt:    assessment.DeletedAt,
	}
}

// CreateAssessment implements AssessmentService
func (s *assessmentService) CreateAssessment(ctx context.Context, req *dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	if req.Title == "" {
		return nil, domain.NewInvalidInputError("Assessment title is required")
	}
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}

	assessment := &domain.Assessment{
		ID:           util.NewULID(),
		InstructorID: req.InstructorID,
		Title:        req.Title,
		Description:  req.Description,
		Questions:    questionsFromDTO(req.Questions),
	}
	if err := s.repo.CreateAssessment(ctx, assessment); err != nil {
		return nil, err
	}
	return toAssessmentResponse(assessment), nil
}

// GetAssessment implements AssessmentService. Returns nil when absent.
func (s *assessmentService) GetAssessment(ctx context.Context, id string, withDeleted bool) (*dto.AssessmentResponse, error) {
	assessment, err := s.repo.GetAssessmentByID(ctx, id, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return toAssessmentResponse(assessment), nil
}

// GetAllAssessments implements AssessmentService
func (s *assessmentService) GetAllAssessments(ctx context.Context, withDeleted bool) ([]*dto.AssessmentResponse, error) {
	assessments, err := s.repo.GetAllAssessments(ctx, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return assessmentsToResponses(assessments), nil
}

// GetAssessmentsByInstructor implements AssessmentService
func (s *assessmentService) GetAssessmentsByInstructor(ctx context.Context, instructorID string, withDeleted bool) ([]*dto.AssessmentResponse, error) {
	assessments, err := s.repo.GetAssessmentsByInstructorID(ctx, instructorID, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return assessmentsToResponses(assessments), nil
}

func assessmentsToResponses(assessments []*domain.Assessment) []*dto.AssessmentResponse {
	responses := make([]*dto.AssessmentResponse, 0, len(assessments))
	for _, assessment := range assessments {
		responses = append(responses, toAssessmentResponse(assessment))
	}
	return responses
}

// UpdateAssessment implements AssessmentService. Returns nil when absent.
func (s *assessmentService) UpdateAssessment(ctx context.Context, id string, req *dto.UpdateAssessmentRequest) (*dto.AssessmentResponse, error) {
	assessment, err := s.repo.GetAssessmentByID(ctx, id, domain.ListFilters{})
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, nil
	}

	if req.InstructorID != nil {
		assessment.InstructorID = *req.InstructorID
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, domain.NewInvalidInputError("Assessment title cannot be empty")
		}
		assessment.Title = *req.Title
	}
	if req.Description != nil {
		assessment.Description = *req.Description
	}
	if req.Questions != nil {
		if err := validateQuestions(*req.Questions); err != nil {
			return nil, err
		}
		assessment.Questions = questionsFromDTO(*req.Questions)
	}

	if err := s.repo.UpdateAssessment(ctx, assessment); err != nil {
		return nil, err
	}
	return toAssessmentResponse(assessment), nil
}

// DeleteAssessment implements AssessmentService. Returns false when no live row matched.
func (s *assessmentService) DeleteAssessment(ctx context.Context, id string) (bool, error) {
	return s.repo.SoftDeleteAssessment(ctx, id)
}
