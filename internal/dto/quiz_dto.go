package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuizRequest struct {
	Title       string                      `json:"title" validate:"required"`
	Description string                      `json:"description"`
	Subject     string                      `json:"subject" validate:"required"`
	ClassName   string                      `json:"class_name" validate:"required"`
	TimeLimit   int                         `json:"time_limit" validate:"min=0"`
	Questions   []CreateQuizQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

type CreateQuizQuestionRequest struct {
	QuestionText  string `json:"question_text" validate:"required"`
	OptionA       string `json:"option_a" validate:"required"`
	OptionB       string `json:"option_b" validate:"required"`
	OptionC       string `json:"option_c" validate:"required"`
	OptionD       string `json:"option_d" validate:"required"`
	CorrectAnswer string `json:"correct_answer" validate:"required,oneof=A B C D"`
	Points        int    `json:"points" validate:"min=1"`
}

type QuizDTO struct {
	Id          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Subject     string            `json:"subject"`
	ClassName   string            `json:"class_name"`
	TeacherId   uuid.UUID         `json:"teacher_id"`
	TimeLimit   int               `json:"time_limit"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	Questions   []QuizQuestionDTO `json:"questions,omitempty"`
}

// QuizQuestionDTO never carries the correct answer; students fetch quizzes
// through the same endpoint teachers do.
type QuizQuestionDTO struct {
	Id           uuid.UUID `json:"id"`
	QuestionText string    `json:"question_text"`
	OptionA      string    `json:"option_a"`
	OptionB      string    `json:"option_b"`
	OptionC      string    `json:"option_c"`
	OptionD      string    `json:"option_d"`
	Points       int       `json:"points"`
}

type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type QuizResultDTO struct {
	AttemptId   uuid.UUID `json:"attempt_id"`
	QuizId      uuid.UUID `json:"quiz_id"`
	Score       int       `json:"score"`
	TotalPoints int       `json:"total_points"`
	CompletedAt time.Time `json:"completed_at"`
}

type ToggleQuizRequest struct {
	IsActive bool `json:"is_active"`
}
