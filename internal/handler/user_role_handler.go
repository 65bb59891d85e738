package handler

import (
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserRoleHandler handles role HTTP requests
type UserRoleHandler struct {
	service service.UserRoleService
}

// NewUserRoleHandler creates a new UserRoleHandler instance
func NewUserRoleHandler(service service.UserRoleService) *UserRoleHandler {
	return &UserRoleHandler{service: service}
}

func roleNotFound(id string) error {
	return domain.NewNotFoundError(fmt.Sprintf("Role not found with ID: %s", id))
}

// CreateRole godoc
// @Summary Create a role
// @Tags user-roles
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRoleRequest true "Role details"
// @Success 201 {object} dto.UserRoleResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /user-roles [post]
func (h *UserRoleHandler) CreateRole(c *fiber.Ctx) error {
	var req dto.CreateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.CreateRole(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetRole godoc
// @Summary Get a role by id
// @Tags user-roles
// @Produce json
// @Param id path string true "Role ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {object} dto.UserRoleResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /user-roles/{id} [get]
func (h *UserRoleHandler) GetRole(c *fiber.Ctx) error {
	resp, err := h.service.GetRole(c.Context(), c.Params("id"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	if resp == nil {
		return roleNotFound(c.Params("id"))
	}
	return c.JSON(resp)
}

// GetAllRoles godoc
// @Summary List roles
// @Tags user-roles
// @Produce json
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.UserRoleResponse
// @Security BearerAuth
// @Router /user-roles [get]
func (h *UserRoleHandler) GetAllRoles(c *fiber.Ctx) error {
	resp, err := h.service.GetAllRoles(c.Context(), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateRole godoc
// @Summary Update a role
// @Tags user-roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param request body dto.UpdateUserRoleRequest true "Fields to update"
// @Success 200 {object} dto.UserRoleResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /user-roles/{id} [put]
func (h *UserRoleHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.UpdateRole(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	if resp == nil {
		return roleNotFound(c.Params("id"))
	}
	return c.JSON(resp)
}

// DeleteRole godoc
// @Summary Soft delete a role
// @Tags user-roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /user-roles/{id} [delete]
func (h *UserRoleHandler) DeleteRole(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteRole(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return roleNotFound(c.Params("id"))
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
