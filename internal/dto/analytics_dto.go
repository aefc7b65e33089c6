package dto

import (
	"github.com/google/uuid"
)

type ClassAnalyticsDTO struct {
	ClassName         string               `json:"class_name"`
	Subject           string               `json:"subject"`
	StudentCount      int64                `json:"student_count"`
	SessionCount      int64                `json:"session_count"`
	AssignmentCount   int64                `json:"assignment_count"`
	QuizCount         int64                `json:"quiz_count"`
	AssignmentStats   []AssignmentStatsDTO `json:"assignment_stats"`
	QuizStats         []QuizStatsDTO       `json:"quiz_stats"`
	GradeDistribution map[string]int       `json:"grade_distribution"`
}

type AssignmentStatsDTO struct {
	AssignmentId    uuid.UUID `json:"assignment_id"`
	Title           string    `json:"title"`
	SubmissionCount int       `json:"submission_count"`
	GradedCount     int       `json:"graded_count"`
	AverageGrade    float64   `json:"average_grade"`
}

type QuizStatsDTO struct {
	QuizId       uuid.UUID `json:"quiz_id"`
	Title        string    `json:"title"`
	AttemptCount int       `json:"attempt_count"`
	AverageScore float64   `json:"average_score"`
}
