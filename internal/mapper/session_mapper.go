package mapper

import (
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.ClassSession) *entity.ClassSession {
	if s == nil {
		return nil
	}
	return &entity.ClassSession{
		Id:        s.Id,
		TeacherId: s.TeacherId,
		ClassName: s.ClassName,
		Subject:   s.Subject,
		IsActive:  s.IsActive,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.ClassSession) *model.ClassSession {
	if s == nil {
		return nil
	}
	return &model.ClassSession{
		Id:        s.Id,
		TeacherId: s.TeacherId,
		ClassName: s.ClassName,
		Subject:   s.Subject,
		IsActive:  s.IsActive,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.ClassSession) []*entity.ClassSession {
	entities := make([]*entity.ClassSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
