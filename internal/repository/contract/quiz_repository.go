package contract

import (
	"context"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuizRepository interface {
	// Create persists the quiz and its questions together.
	Create(ctx context.Context, quiz *entity.Quiz) error

	// FindById loads the quiz including its questions.
	FindById(ctx context.Context, id uuid.UUID) (*entity.Quiz, error)

	// FindAll lists quizzes without questions.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	CreateAttempt(ctx context.Context, attempt *entity.QuizAttempt) error
	FindAttempt(ctx context.Context, quizId, studentId uuid.UUID) (*entity.QuizAttempt, error)
	FindAttempts(ctx context.Context, quizId uuid.UUID) ([]*entity.QuizAttempt, error)
}
