package handler

import (
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func userNotFound(id string) error {
	return domain.NewNotFoundError(fmt.Sprintf("User not found with ID: %s", id))
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.CreateUser(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	resp, err := h.service.GetUser(c.Context(), c.Params("id"), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	if resp == nil {
		return userNotFound(c.Params("id"))
	}
	return c.JSON(resp)
}

// GetAllUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param withDeleted query bool false "Include soft-deleted records"
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	resp, err := h.service.GetAllUsers(c.Context(), c.QueryBool("withDeleted"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.UpdateUser(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	if resp == nil {
		return userNotFound(c.Params("id"))
	}
	return c.JSON(resp)
}

// DeleteUser godoc
// @Summary Soft delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return userNotFound(c.Params("id"))
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
