package unitofwork

import (
	"context"

	"virtual-classroom-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ClassSessionRepository() contract.ClassSessionRepository
	MessageRepository() contract.MessageRepository
	NotificationRepository() contract.NotificationRepository
	AssignmentRepository() contract.AssignmentRepository
	QuizRepository() contract.QuizRepository
}
