package model

import (
	"time"

	"github.com/google/uuid"
)

type Assignment struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Subject     string    `gorm:"type:varchar(50);not null"`
	ClassName   string    `gorm:"type:varchar(10);not null;index"`
	TeacherId   uuid.UUID `gorm:"type:uuid;not null;index"`
	DueDate     *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Assignment) TableName() string {
	return "assignments"
}

type Submission struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssignmentId uuid.UUID `gorm:"type:uuid;not null;index:idx_submissions_assignment_student,priority:1"`
	StudentId    uuid.UUID `gorm:"type:uuid;not null;index:idx_submissions_assignment_student,priority:2"`
	Content      string    `gorm:"type:text"`
	Grade        *int
	Feedback     string    `gorm:"type:text"`
	SubmittedAt  time.Time `gorm:"autoCreateTime"`
	GradedAt     *time.Time
}

func (Submission) TableName() string {
	return "submissions"
}
