package contract

import (
	"context"

	"virtual-classroom-be/internal/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// FindRecent returns the newest messages for a (class, subject)
	// transcript, newest first.
	FindRecent(ctx context.Context, className, subject string, limit int) ([]*entity.Message, error)
}
