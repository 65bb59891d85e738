package service

import (
	"context"
	"time"

	"learnhub/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.Quiz, error) {
	args := m.Called(ctx, id, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetAllQuizzes(ctx context.Context, filters domain.ListFilters) ([]*domain.Quiz, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuizzesByInstructorID(ctx context.Context, instructorID string, filters domain.ListFilters) ([]*domain.Quiz, error) {
	args := m.Called(ctx, instructorID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) SoftDeleteQuiz(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockSubmissionRepository ---
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) CreateSubmission(ctx context.Context, submission *domain.QuizSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetSubmissionByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.QuizSubmission, error) {
	args := m.Called(ctx, id, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) GetSubmissionByStudentAndQuiz(ctx context.Context, studentID, quizID string, filters domain.ListFilters) (*domain.QuizSubmission, error) {
	args := m.Called(ctx, studentID, quizID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) GetAllSubmissions(ctx context.Context, filters domain.ListFilters) ([]*domain.QuizSubmission, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) GetSubmissionsByStudentID(ctx context.Context, studentID string, filters domain.ListFilters) ([]*domain.QuizSubmission, error) {
	args := m.Called(ctx, studentID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) GetSubmissionsByQuizID(ctx context.Context, quizID string, filters domain.ListFilters) ([]*domain.QuizSubmission, error) {
	args := m.Called(ctx, quizID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) UpdateSubmission(ctx context.Context, submission *domain.QuizSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) SoftDeleteSubmission(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.User, error) {
	args := m.Called(ctx, id, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetAllUsers(ctx context.Context, filters domain.ListFilters) ([]*domain.User, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDeleteUser(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockUserRoleRepository ---
type MockUserRoleRepository struct {
	mock.Mock
}

func (m *MockUserRoleRepository) CreateRole(ctx context.Context, role *domain.UserRole) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockUserRoleRepository) GetRoleByID(ctx context.Context, id string, filters domain.ListFilters) (*domain.UserRole, error) {
	args := m.Called(ctx, id, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRole), args.Error(1)
}

func (m *MockUserRoleRepository) GetRoleByName(ctx context.Context, name string) (*domain.UserRole, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRole), args.Error(1)
}

func (m *MockUserRoleRepository) GetAllRoles(ctx context.Context, filters domain.ListFilters) ([]*domain.UserRole, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserRole), args.Error(1)
}

func (m *MockUserRoleRepository) UpdateRole(ctx context.Context, role *domain.UserRole) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockUserRoleRepository) SoftDeleteRole(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- fakeTxManager ---
// Runs the callback directly; no transaction semantics in unit tests.
type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
