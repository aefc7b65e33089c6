package contract

import (
	"context"

	"virtual-classroom-be/internal/entity"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// CreateBatch inserts a fan-out of notifications in a single statement.
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error

	FindUnread(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)

	// MarkAsRead flips the read flag when the notification belongs to
	// userId; a foreign or unknown id is a silent no-op.
	MarkAsRead(ctx context.Context, id, userId uuid.UUID) error
}
