package entity

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	Id          uuid.UUID
	Title       string
	Description string
	Subject     string
	ClassName   string
	TeacherId   uuid.UUID
	TimeLimit   int // minutes
	IsActive    bool
	CreatedAt   time.Time
	Questions   []QuizQuestion
}

type QuizQuestion struct {
	Id            uuid.UUID
	QuizId        uuid.UUID
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string // A, B, C or D
	Points        int
}

// QuizAttempt records a student's single attempt. Answers maps question id
// to the chosen option letter.
type QuizAttempt struct {
	Id          uuid.UUID
	QuizId      uuid.UUID
	StudentId   uuid.UUID
	Answers     map[string]string
	Score       int
	TotalPoints int
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Score computes the attempt score for a set of answers. Total points counts
// every question; only answers matching the correct option earn points.
func (q *Quiz) Score(answers map[string]string) (score, total int) {
	for _, question := range q.Questions {
		total += question.Points
		if answers[question.Id.String()] == question.CorrectAnswer {
			score += question.Points
		}
	}
	return score, total
}
