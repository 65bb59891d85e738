package service

import (
	"context"
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// UserService defines the interface for user management operations.
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id string, withDeleted bool) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context, withDeleted bool) ([]*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

type userService struct {
	userRepo domain.UserRepository
	roleRepo domain.UserRoleRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo domain.UserRepository, roleRepo domain.UserRoleRepository) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func toUserResponse(user *domain.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         user.ID,
		UserRoleID: user.UserRoleID,
		FirstName:  user.FirstName,
		MiddleName: user.MiddleName,
		LastName:   user.LastName,
		Email:      user.Email,
		IsEnabled:  user.IsEnabled,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		DeletedAt:  user.DeletedAt,
	}
}

func (s *userService) ensureRoleExists(ctx context.Context, roleID string) error {
	role, err := s.roleRepo.GetRoleByID(ctx, roleID, domain.ListFilters{})
	if err != nil {
		return err
	}
	if role == nil {
		return domain.NewNotFoundError(fmt.Sprintf("Role not found with ID: %s", roleID))
	}
	return nil
}

// CreateUser implements UserService
func (s *userService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.NewInvalidInputError("email and password are required")
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, domain.NewInvalidInputError("first_name and last_name are required")
	}
	if req.UserRoleID != "" {
		if err := s.ensureRoleExists(ctx, req.UserRoleID); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		ID:         util.NewULID(),
		UserRoleID: req.UserRoleID,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   string(hash),
		IsEnabled:  true,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetUser implements UserService. Returns nil when absent.
func (s *userService) GetUser(ctx context.Context, id string, withDeleted bool) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, id, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetAllUsers implements UserService
func (s *userService) GetAllUsers(ctx context.Context, withDeleted bool) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.GetAllUsers(ctx, domain.ListFilters{WithDeleted: withDeleted})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses, nil
}

// UpdateUser implements UserService. Returns nil when absent.
func (s *userService) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, id, domain.ListFilters{})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if req.UserRoleID != nil {
		if *req.UserRoleID != "" {
			if err := s.ensureRoleExists(ctx, *req.UserRoleID); err != nil {
				return nil, err
			}
		}
		user.UserRoleID = *req.UserRoleID
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		user.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, domain.NewInvalidInputError("email cannot be empty")
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.NewInternalError("Failed to hash password", err)
		}
		user.Password = string(hash)
	}
	if req.IsEnabled != nil {
		user.IsEnabled = *req.IsEnabled
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// DeleteUser implements UserService. Returns false when no live row matched.
func (s *userService) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.userRepo.SoftDeleteUser(ctx, id)
}
