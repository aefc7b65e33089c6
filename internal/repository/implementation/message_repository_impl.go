package implementation

import (
	"context"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/mapper"
	"virtual-classroom-be/internal/model"
	"virtual-classroom-be/internal/repository/contract"

	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessageMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessageMapper(),
	}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	modelMessage := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(modelMessage).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(modelMessage)
	return nil
}

func (r *MessageRepositoryImpl) FindRecent(ctx context.Context, className, subject string, limit int) ([]*entity.Message, error) {
	var modelMessages []*model.Message
	err := r.db.WithContext(ctx).
		Where("class_name = ? AND subject = ?", className, subject).
		Order("timestamp DESC").
		Limit(limit).
		Find(&modelMessages).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelMessages), nil
}
