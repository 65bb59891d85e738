package service

import (
	"context"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/util"
)

// UserRoleService defines the interface for role management operations.
type UserRoleService interface {
	CreateRole(ctx context.Context, req *dto.CreateUserRoleRequest) (*dto.UserRoleResponse, error)
	GetRole(ctx context.Context, id string, withDeleted bool) (*dto.UserRoleResponse, error)
	GetAllRoles(ctx context.Context, withDeleted bool) ([]*dto.UserRoleResponse, error)
	UpdateRole(ctx context.Context, id string, req *dto.UpdateUserRoleRequest) (*dto.UserRoleResponse, error)
	DeleteRole(ctx context.Context, id string) (bool, error)
}

type userRoleService struct {
	repo domain.UserRoleRepository
}

// NewUserRoleService creates a new instance of userRoleService.
func NewUserRoleService(repo domain.UserRoleRepository) UserRoleService {
	return &userRoleService{repo: repo}
}

func toUserRoleResponse(role *domain.UserRole) *dto.UserRoleResponse {
	if role == nil {
		return nil
	}
	return &dto.UserRoleResponse{
		ID:        role.ID,
		Name:      role.Name,
		IsEnabled: role.IsEnabled,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
		DeletedAt: role.DeletedAt,
	}
}

// CreateRole implements UserRoleService
func (s *userRoleService) CreateRole(ctx context.Context, req *dto.CreateUserRoleRequest) (*dto.UserRoleResponse, error) {
	if req.Name == "" {
		return nil, domain.NewInvalidInputError("Role name is required")
	}

	existing, err := s.repo.GetRoleByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewRoleAlreadyExistsError(req.Name)
	}

	role := &domain.UserRole{
		ID:        util.NewULID(),
		Name:      req.Name,
		IsEnabled: true,
	}
	if err := s.repo.CreateRole(ctx, role); err != nil {
		return nil, err
	}
	return toUserRoleResponse(role), nil
}

// GetRole implements UserRoleService. Returns nil when absent.
func (s *userRoleService) GetRole(ctx context.Context, id string, withDeleted bool) (*dto.UserRoleResponse, error) {
	role, err := s.repo.GetRoleByID(ctx, id, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return toUserRoleResponse(role), nil
}

// GetAllRoles implements UserRoleService
func (s *userRoleService) GetAllRoles(ctx context.Context, withDeleted bool) ([]*dto.UserRoleResponse, error) {
	roles, err := s.repo.GetAllRoles(ctx, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.UserRoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, toUserRoleResponse(role))
	}
	return responses, nil
}

// UpdateRole implements UserRoleService. Returns nil when absent.
func (s *userRoleService) UpdateRole(ctx context.Context, id string, req *dto.UpdateUserRoleRequest) (*dto.UserRoleResponse, error) {
	role, err := s.repo.GetRoleByID(ctx, id, domain.ListFilters{})
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.NewInvalidInputError("Role name cannot be empty")
		}
		role.Name = *req.Name
	}
	if req.IsEnabled != nil {
		role.IsEnabled = *req.IsEnabled
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return nil, err
	}
	return toUserRoleResponse(role), nil
}

// DeleteRole implements UserRoleService. Returns false when no live row matched.
func (s *userRoleService) DeleteRole(ctx context.Context, id string) (bool, error) {
	return s.repo.SoftDeleteRole(ctx, id)
}
