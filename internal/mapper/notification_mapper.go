package mapper

import (
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NotificationMapper) ToModels(notifications []*entity.Notification) []*model.Notification {
	models := make([]*model.Notification, len(notifications))
	for i, n := range notifications {
		models[i] = m.ToModel(n)
	}
	return models
}
