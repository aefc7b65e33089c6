package mapper

import (
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		SenderId:  msg.SenderId,
		ClassName: msg.ClassName,
		Subject:   msg.Subject,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		SenderId:  msg.SenderId,
		ClassName: msg.ClassName,
		Subject:   msg.Subject,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
}

func (m *MessageMapper) ToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
