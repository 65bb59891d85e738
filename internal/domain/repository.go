package domain

import "context"

// ListFilters controls soft-delete visibility on read operations.
// By default soft-deleted records are excluded.
type ListFilters struct {
	WithDeleted bool
}

// QuizRepository defines the persistence port for quizzes.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id string, filters ListFilters) (*Quiz, error)
	GetAllQuizzes(ctx context.Context, filters ListFilters) ([]*Quiz, error)
	GetQuizzesByInstructorID(ctx context.Context, instructorID string, filters ListFilters) ([]*Quiz, error)
	UpdateQuiz(ctx context.Context, quiz *Quiz) error
	SoftDeleteQuiz(ctx context.Context, id string) (bool, error)
}

// SubmissionRepository defines the persistence port for quiz submissions.
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *QuizSubmission) error
	GetSubmissionByID(ctx context.Context, id string, filters ListFilters) (*QuizSubmission, error)
	GetSubmissionByStudentAndQuiz(ctx context.Context, studentID, quizID string, filters ListFilters) (*QuizSubmission, error)
	GetAllSubmissions(ctx context.Context, filters ListFilters) ([]*QuizSubmission, error)
	GetSubmissionsByStudentID(ctx context.Context, studentID string, filters ListFilters) ([]*QuizSubmission, error)
	GetSubmissionsByQuizID(ctx context.Context, quizID string, filters ListFilters) ([]*QuizSubmission, error)
	UpdateSubmission(ctx context.Context, submission *QuizSubmission) error
	SoftDeleteSubmission(ctx context.Context, id string) (bool, error)
}

// AssessmentRepository defines the persistence port for assessments.
type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessment *Assessment) error
	GetAssessmentByID(ctx context.Context, id string, filters ListFilters) (*Assessment, error)
	GetAllAssessments(ctx context.Context, filters ListFilters) ([]*Assessment, error)
	GetAssessmentsByInstructorID(ctx context.Context, instructorID string, filters ListFilters) ([]*Assessment, error)
	UpdateAssessment(ctx context.Context, assessment *Assessment) error
	SoftDeleteAssessment(ctx context.Context, id string) (bool, error)
}

// UserRepository defines the persistence port for users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string, filters ListFilters) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetAllUsers(ctx context.Context, filters ListFilters) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) error
	SoftDeleteUser(ctx context.Context, id string) (bool, error)
}

// UserRoleRepository defines the persistence port for user roles.
type UserRoleRepository interface {
	CreateRole(ctx context.Context, role *UserRole) error
	GetRoleByID(ctx context.Context, id string, filters ListFilters) (*UserRole, error)
	GetRoleByName(ctx context.Context, name string) (*UserRole, error)
	GetAllRoles(ctx context.Context, filters ListFilters) ([]*UserRole, error)
	UpdateRole(ctx context.Context, role *UserRole) error
	SoftDeleteRole(ctx context.Context, id string) (bool, error)
}

// TransactionManager runs a function within a storage transaction. The
// transaction is carried on the context; repositories participate when one
// is present.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
