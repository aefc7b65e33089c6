package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAssignmentRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Subject     string     `json:"subject" validate:"required"`
	ClassName   string     `json:"class_name" validate:"required"`
	DueDate     *time.Time `json:"due_date"`
}

type AssignmentDTO struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Subject     string     `json:"subject"`
	ClassName   string     `json:"class_name"`
	TeacherId   uuid.UUID  `json:"teacher_id"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SubmitAssignmentRequest struct {
	Content string `json:"content" validate:"required"`
}

type GradeSubmissionRequest struct {
	Grade    int    `json:"grade" validate:"min=0,max=100"`
	Feedback string `json:"feedback"`
}

type SubmissionDTO struct {
	Id           uuid.UUID  `json:"id"`
	AssignmentId uuid.UUID  `json:"assignment_id"`
	StudentId    uuid.UUID  `json:"student_id"`
	Content      string     `json:"content"`
	Grade        *int       `json:"grade,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
}
