package contract

import (
	"context"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Staff id registry, consumed on teacher registration
	FindStaffId(ctx context.Context, code string) (*entity.StaffId, error)
	MarkStaffIdUsed(ctx context.Context, id uuid.UUID) error
}
