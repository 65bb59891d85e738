package handler

import (
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmissionHandler handles quiz submission HTTP requests
type SubmissionHandler struct {
	service service.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler instance
func NewSubmissionHandler(service service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

func submissionNotFound(id string) error {
	return domain.NewNotFoundError(fmt.Sprintf("Submission not found with ID: %s", id))
}

// CreateSubmission godoc
// @Summary Create a draft submission
// @Description Stores an ungraded draft for a (student, quiz) pair
// @Tags quiz-submissions
// @Accept json
// @Produce json
// @Param request body dto.CreateSubmissionRequest true "Draft submission"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quiz-submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.CreateSubmission(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSubmission godoc
// @Summary Get a submission by id
// @Tags quiz-submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quiz-submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *fiber.Ctx) error {
	resp, err := h.service.GetSubmission(c.Context(), c.Params("id"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	if resp == nil {
		return submissionNotFound(c.Params("id"))
	}
	return c.JSON(resp)
}

// GetAllSubmissions godoc
// @Summary List submissions
// @Tags quiz-submissions
// @Produce json
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.SubmissionResponse
// @Security BearerAuth
// @Router /quiz-submissions [get]
func (h *SubmissionHandler) GetAllSubmissions(c *fiber.Ctx) error {
	resp, err := h.service.GetAllSubmissions(c.Context(), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSubmissionsByStudent godoc
// @Summary List submissions by student
// @Tags quiz-submissions
// @Produce json
// @Param studentId path string true "Student ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.SubmissionResponse
// @Security BearerAuth
// @Router /quiz-submissions/student/{studentId} [get]
func (h *SubmissionHandler) GetSubmissionsByStudent(c *fiber.Ctx) error {
	resp, err := h.service.GetSubmissionsByStudent(c.Context(), c.Params("studentId"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSubmissionsByQuiz godoc
// @Summary List submissions by quiz
// @Tags quiz-submissions
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.SubmissionResponse
// @Security BearerAuth
// @Router /quiz-submissions/quiz/{quizId} [get]
func (h *SubmissionHandler) GetSubmissionsByQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GetSubmissionsByQuiz(c.Context(), c.Params("quizId"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateSubmission godoc
// @Summary Update a draft submission
// @Description Replaces the answers of an unfinalized submission
// @Tags quiz-submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body dto.UpdateSubmissionRequest true "Fields to update"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quiz-submissions/{id} [put]
func (h *SubmissionHandler) UpdateSubmission(c *fiber.Ctx) error {
	var req dto.UpdateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.UpdateSubmission(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	if resp == nil {
		return submissionNotFound(c.Params("id"))
	}
	return c.JSON(resp)
}

// DeleteSubmission godoc
// @Summary Soft delete a submission
// @Tags quiz-submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quiz-submissions/{id} [delete]
func (h *SubmissionHandler) DeleteSubmission(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteSubmission(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return submissionNotFound(c.Params("id"))
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// SubmitQuiz godoc
// @Summary Submit a quiz for grading
// @Description Grades the answers against the quiz and finalizes the submission. A student may submit each quiz once.
// @Tags quiz-submissions
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizRequest true "Final submission"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quiz-submissions/submit [post]
func (h *SubmissionHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.SubmitQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
