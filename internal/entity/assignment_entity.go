package entity

import (
	"time"

	"github.com/google/uuid"
)

type Assignment struct {
	Id          uuid.UUID
	Title       string
	Description string
	Subject     string
	ClassName   string
	TeacherId   uuid.UUID
	DueDate     *time.Time
	CreatedAt   time.Time
}

// Submission is a student's answer to an assignment. One submission per
// student per assignment; grading stamps GradedAt.
type Submission struct {
	Id           uuid.UUID
	AssignmentId uuid.UUID
	StudentId    uuid.UUID
	Content      string
	Grade        *int
	Feedback     string
	SubmittedAt  time.Time
	GradedAt     *time.Time
}
