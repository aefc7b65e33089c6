package mapper

import (
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/model"
)

type AssignmentMapper struct{}

func NewAssignmentMapper() *AssignmentMapper {
	return &AssignmentMapper{}
}

func (m *AssignmentMapper) ToEntity(a *model.Assignment) *entity.Assignment {
	if a == nil {
		return nil
	}
	return &entity.Assignment{
		Id:          a.Id,
		Title:       a.Title,
		Description: a.Description,
		Subject:     a.Subject,
		ClassName:   a.ClassName,
		TeacherId:   a.TeacherId,
		DueDate:     a.DueDate,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *AssignmentMapper) ToModel(a *entity.Assignment) *model.Assignment {
	if a == nil {
		return nil
	}
	return &model.Assignment{
		Id:          a.Id,
		Title:       a.Title,
		Description: a.Description,
		Subject:     a.Subject,
		ClassName:   a.ClassName,
		TeacherId:   a.TeacherId,
		DueDate:     a.DueDate,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *AssignmentMapper) ToEntities(assignments []*model.Assignment) []*entity.Assignment {
	entities := make([]*entity.Assignment, len(assignments))
	for i, a := range assignments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AssignmentMapper) SubmissionToEntity(s *model.Submission) *entity.Submission {
	if s == nil {
		return nil
	}
	return &entity.Submission{
		Id:           s.Id,
		AssignmentId: s.AssignmentId,
		StudentId:    s.StudentId,
		Content:      s.Content,
		Grade:        s.Grade,
		Feedback:     s.Feedback,
		SubmittedAt:  s.SubmittedAt,
		GradedAt:     s.GradedAt,
	}
}

func (m *AssignmentMapper) SubmissionToModel(s *entity.Submission) *model.Submission {
	if s == nil {
		return nil
	}
	return &model.Submission{
		Id:           s.Id,
		AssignmentId: s.AssignmentId,
		StudentId:    s.StudentId,
		Content:      s.Content,
		Grade:        s.Grade,
		Feedback:     s.Feedback,
		SubmittedAt:  s.SubmittedAt,
		GradedAt:     s.GradedAt,
	}
}

func (m *AssignmentMapper) SubmissionsToEntities(subs []*model.Submission) []*entity.Submission {
	entities := make([]*entity.Submission, len(subs))
	for i, s := range subs {
		entities[i] = m.SubmissionToEntity(s)
	}
	return entities
}
