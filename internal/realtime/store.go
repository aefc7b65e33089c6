package realtime

import (
	"context"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Store is the narrow persistence surface the relay needs. Keeping it
// small lets relay tests substitute an in-memory fake.
type Store interface {
	FindSessionById(ctx context.Context, id uuid.UUID) (*entity.ClassSession, error)
	SaveMessage(ctx context.Context, message *entity.Message) error
}

type gormStore struct {
	factory unitofwork.RepositoryFactory
}

func NewStore(factory unitofwork.RepositoryFactory) Store {
	return &gormStore{factory: factory}
}

func (s *gormStore) FindSessionById(ctx context.Context, id uuid.UUID) (*entity.ClassSession, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	return uow.ClassSessionRepository().FindById(ctx, id)
}

func (s *gormStore) SaveMessage(ctx context.Context, message *entity.Message) error {
	uow := s.factory.NewUnitOfWork(ctx)
	return uow.MessageRepository().Create(ctx, message)
}
