package dto

import (
	"github.com/google/uuid"
)

// Topics published on the in-process event bus.
const (
	TopicSessionStarted    = "session.started"
	TopicAssignmentCreated = "assignment.created"
	TopicSubmissionGraded  = "submission.graded"
)

type SessionStartedEvent struct {
	SessionId   uuid.UUID `json:"session_id"`
	TeacherName string    `json:"teacher_name"`
	ClassName   string    `json:"class_name"`
	Subject     string    `json:"subject"`
}

type AssignmentCreatedEvent struct {
	AssignmentId uuid.UUID `json:"assignment_id"`
	Title        string    `json:"title"`
	ClassName    string    `json:"class_name"`
	Subject      string    `json:"subject"`
}

type SubmissionGradedEvent struct {
	SubmissionId    uuid.UUID `json:"submission_id"`
	AssignmentTitle string    `json:"assignment_title"`
	StudentId       uuid.UUID `json:"student_id"`
	Grade           int       `json:"grade"`
}
