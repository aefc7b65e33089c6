package mapper

import (
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entity.UserRole(u.Role),
		ClassName:    u.ClassName,
		StaffId:      u.StaffId,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		ClassName:    u.ClassName,
		StaffId:      u.StaffId,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) StaffIdToEntity(s *model.StaffId) *entity.StaffId {
	if s == nil {
		return nil
	}
	return &entity.StaffId{
		Id:     s.Id,
		Code:   s.Code,
		IsUsed: s.IsUsed,
	}
}

func (m *UserMapper) StaffIdToModel(s *entity.StaffId) *model.StaffId {
	if s == nil {
		return nil
	}
	return &model.StaffId{
		Id:     s.Id,
		Code:   s.Code,
		IsUsed: s.IsUsed,
	}
}
