package mapper

import (
	"encoding/json"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/model"

	"gorm.io/datatypes"
)

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(q *model.Quiz, questions []*model.QuizQuestion) *entity.Quiz {
	if q == nil {
		return nil
	}
	quiz := &entity.Quiz{
		Id:          q.Id,
		Title:       q.Title,
		Description: q.Description,
		Subject:     q.Subject,
		ClassName:   q.ClassName,
		TeacherId:   q.TeacherId,
		TimeLimit:   q.TimeLimit,
		IsActive:    q.IsActive,
		CreatedAt:   q.CreatedAt,
	}
	for _, question := range questions {
		quiz.Questions = append(quiz.Questions, entity.QuizQuestion{
			Id:            question.Id,
			QuizId:        question.QuizId,
			QuestionText:  question.QuestionText,
			OptionA:       question.OptionA,
			OptionB:       question.OptionB,
			OptionC:       question.OptionC,
			OptionD:       question.OptionD,
			CorrectAnswer: question.CorrectAnswer,
			Points:        question.Points,
		})
	}
	return quiz
}

func (m *QuizMapper) ToModel(q *entity.Quiz) *model.Quiz {
	if q == nil {
		return nil
	}
	return &model.Quiz{
		Id:          q.Id,
		Title:       q.Title,
		Description: q.Description,
		Subject:     q.Subject,
		ClassName:   q.ClassName,
		TeacherId:   q.TeacherId,
		TimeLimit:   q.TimeLimit,
		IsActive:    q.IsActive,
		CreatedAt:   q.CreatedAt,
	}
}

func (m *QuizMapper) QuestionToModel(q *entity.QuizQuestion) *model.QuizQuestion {
	if q == nil {
		return nil
	}
	return &model.QuizQuestion{
		Id:            q.Id,
		QuizId:        q.QuizId,
		QuestionText:  q.QuestionText,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectAnswer: q.CorrectAnswer,
		Points:        q.Points,
	}
}

func (m *QuizMapper) AttemptToEntity(a *model.QuizAttempt) *entity.QuizAttempt {
	if a == nil {
		return nil
	}
	answers := make(map[string]string)
	if len(a.Answers) > 0 {
		// Corrupt rows surface as empty answer sets rather than errors.
		_ = json.Unmarshal(a.Answers, &answers)
	}
	return &entity.QuizAttempt{
		Id:          a.Id,
		QuizId:      a.QuizId,
		StudentId:   a.StudentId,
		Answers:     answers,
		Score:       a.Score,
		TotalPoints: a.TotalPoints,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
	}
}

func (m *QuizMapper) AttemptToModel(a *entity.QuizAttempt) (*model.QuizAttempt, error) {
	if a == nil {
		return nil, nil
	}
	raw, err := json.Marshal(a.Answers)
	if err != nil {
		return nil, err
	}
	return &model.QuizAttempt{
		Id:          a.Id,
		QuizId:      a.QuizId,
		StudentId:   a.StudentId,
		Answers:     datatypes.JSON(raw),
		Score:       a.Score,
		TotalPoints: a.TotalPoints,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
	}, nil
}

func (m *QuizMapper) AttemptsToEntities(attempts []*model.QuizAttempt) []*entity.QuizAttempt {
	entities := make([]*entity.QuizAttempt, len(attempts))
	for i, a := range attempts {
		entities[i] = m.AttemptToEntity(a)
	}
	return entities
}
