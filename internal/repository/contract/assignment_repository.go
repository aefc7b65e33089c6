package contract

import (
	"context"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.Assignment) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Assignment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assignment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateSubmission(ctx context.Context, submission *entity.Submission) error
	UpdateSubmission(ctx context.Context, submission *entity.Submission) error
	FindSubmission(ctx context.Context, assignmentId, studentId uuid.UUID) (*entity.Submission, error)
	FindSubmissionById(ctx context.Context, id uuid.UUID) (*entity.Submission, error)
	FindSubmissions(ctx context.Context, assignmentId uuid.UUID) ([]*entity.Submission, error)
}
