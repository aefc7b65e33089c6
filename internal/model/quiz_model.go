package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Subject     string    `gorm:"type:varchar(50);not null"`
	ClassName   string    `gorm:"type:varchar(10);not null;index"`
	TeacherId   uuid.UUID `gorm:"type:uuid;not null;index"`
	TimeLimit   int
	IsActive    bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type QuizQuestion struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuizId        uuid.UUID `gorm:"type:uuid;not null;index"`
	QuestionText  string    `gorm:"type:text;not null"`
	OptionA       string    `gorm:"type:varchar(500)"`
	OptionB       string    `gorm:"type:varchar(500)"`
	OptionC       string    `gorm:"type:varchar(500)"`
	OptionD       string    `gorm:"type:varchar(500)"`
	CorrectAnswer string    `gorm:"type:varchar(1)"`
	Points        int       `gorm:"default:1"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

type QuizAttempt struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuizId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_attempts_quiz_student,priority:1"`
	StudentId   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_attempts_quiz_student,priority:2"`
	Answers     datatypes.JSON `gorm:"type:jsonb"`
	Score       int
	TotalPoints int
	StartedAt   time.Time `gorm:"autoCreateTime"`
	CompletedAt *time.Time
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
