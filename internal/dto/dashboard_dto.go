package dto

type DashboardDTO struct {
	ActiveSessions []SessionDTO      `json:"active_sessions"`
	Assignments    []AssignmentDTO   `json:"assignments"`
	Quizzes        []QuizDTO         `json:"quizzes"`
	Notifications  []NotificationDTO `json:"notifications"`
}
