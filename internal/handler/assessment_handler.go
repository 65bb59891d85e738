package handler

import (
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AssessmentHandler handles assessment HTTP requests
type AssessmentHandler struct {
	service service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

func assessmentNotFound(id string) error {
	return domain.NewNotFoundError(fmt.Sprintf("Assessment not found with ID: %s", id))
}

// CreateAssessment godoc
// @Summary Create an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssessmentRequest true "Assessment details"
// @Success 201 {object} dto.AssessmentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /assessments [post]
func (h *AssessmentHandler) CreateAssessment(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.CreateAssessment(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetAssessment godoc
// @Summary Get an assessment by id
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /assessments/{id} [get]
func (h *AssessmentHandler) GetAssessment(c *fiber.Ctx) error {
	resp, err := h.service.GetAssessment(c.Context(), c.Params("id"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	if resp == nil {
		return assessmentNotFound(c.Params("id"))
	}
	return c.JSON(resp)
}

// GetAllAssessments godoc
// @Summary List assessments
// @Tags assessments
// @Produce json
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.AssessmentResponse
// @Security BearerAuth
// @Router /assessments [get]
func (h *AssessmentHandler) GetAllAssessments(c *fiber.Ctx) error {
	resp, err := h.service.GetAllAssessments(c.Context(), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAssessmentsByInstructor godoc
// @Summary List assessments by instructor
// @Tags assessments
// @Produce json
// @Param instructorId path string true "Instructor ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.AssessmentResponse
// @Security BearerAuth
// @Router /assessments/instructor/{instructorId} [get]
func (h *AssessmentHandler) GetAssessmentsByInstructor(c *fiber.Ctx) error {
	resp, err := h.service.GetAssessmentsByInstructor(c.Context(), c.Params("instructorId"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateAssessment godoc
// @Summary Update an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID"
// @Param request body dto.UpdateAssessmentRequest true "Fields to update"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /assessments/{id} [put]
func (h *AssessmentHandler) UpdateAssessment(c *fiber.Ctx) error {
	var req dto.UpdateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.UpdateAssessment(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	if resp == nil {
		return assessmentNotFound(c.Params("id"))
	}
	return c.JSON(resp)
}

// DeleteAssessment godoc
// @Summary Soft delete an assessment
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /assessments/{id} [delete]
func (h *AssessmentHandler) DeleteAssessment(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteAssessment(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return assessmentNotFound(c.Params("id"))
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
