package handler

import (
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz details"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.CreateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetQuiz godoc
// @Summary Get a quiz by id
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GetQuiz(c.Context(), c.Params("id"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	if resp == nil {
		return domain.NewQuizNotFoundError(c.Params("id"))
	}
	return c.JSON(resp)
}

// GetAllQuizzes godoc
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.QuizResponse
// @Security BearerAuth
// @Router /quizzes [get]
func (h *QuizHandler) GetAllQuizzes(c *fiber.Ctx) error {
	resp, err := h.service.GetAllQuizzes(c.Context(), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuizzesByInstructor godoc
// @Summary List quizzes by instructor
// @Tags quizzes
// @Produce json
// @Param instructorId path string true "Instructor ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.QuizResponse
// @Security BearerAuth
// @Router /quizzes/instructor/{instructorId} [get]
func (h *QuizHandler) GetQuizzesByInstructor(c *fiber.Ctx) error {
	resp, err := h.service.GetQuizzesByInstructor(c.Context(), c.Params("instructorId"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.UpdateQuizRequest true "Fields to update"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.UpdateQuiz(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	if resp == nil {
		return domain.NewQuizNotFoundError(c.Params("id"))
	}
	return c.JSON(resp)
}

// DeleteQuiz godoc
// @Summary Soft delete a quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteQuiz(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewQuizNotFoundError(c.Params("id"))
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
