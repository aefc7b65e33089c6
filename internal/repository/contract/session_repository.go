package contract

import (
	"context"
	"time"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClassSessionRepository interface {
	Create(ctx context.Context, session *entity.ClassSession) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.ClassSession, error)

	// FindActive returns the single active session for a (class, subject)
	// pair, or nil when none is running.
	FindActive(ctx context.Context, className, subject string) (*entity.ClassSession, error)

	// Deactivate clears is_active and stamps ended_at. Terminal: nothing
	// ever sets a session active again.
	Deactivate(ctx context.Context, id uuid.UUID, endedAt time.Time) error

	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
