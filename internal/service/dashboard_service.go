package service

import (
	"context"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/repository/specification"
	"virtual-classroom-be/internal/repository/unitofwork"
)

// dashboardRecentLimit caps each dashboard section.
const dashboardRecentLimit = 5

type IDashboardService interface {
	Dashboard(ctx context.Context, identity *entity.Identity) (*dto.DashboardDTO, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
	}
}

// Dashboard assembles the landing view for the caller. Teachers see
// their own sessions, assignments and quizzes; students see what runs
// for their class.
func (s *dashboardService) Dashboard(ctx context.Context, identity *entity.Identity) (*dto.DashboardDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessionSpecs := []specification.Specification{
		specification.ActiveOnly{},
		specification.OrderBy{Field: "started_at", Desc: true},
	}
	assignmentSpecs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: dashboardRecentLimit},
	}
	quizSpecs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: dashboardRecentLimit},
	}
	if identity.IsTeacher() {
		owned := specification.ByTeacher{TeacherId: identity.UserId}
		sessionSpecs = append(sessionSpecs, owned)
		assignmentSpecs = append(assignmentSpecs, owned)
		quizSpecs = append(quizSpecs, owned)
	} else {
		class := specification.ByClassName{ClassName: identity.ClassName}
		sessionSpecs = append(sessionSpecs, class)
		assignmentSpecs = append(assignmentSpecs, class)
		quizSpecs = append(quizSpecs, class, specification.ActiveOnly{})
	}

	sessions, err := uow.ClassSessionRepository().FindAll(ctx, sessionSpecs...)
	if err != nil {
		return nil, err
	}
	assignments, err := uow.AssignmentRepository().FindAll(ctx, assignmentSpecs...)
	if err != nil {
		return nil, err
	}
	quizzes, err := uow.QuizRepository().FindAll(ctx, quizSpecs...)
	if err != nil {
		return nil, err
	}
	notifications, err := uow.NotificationRepository().FindUnread(ctx, identity.UserId, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	result := &dto.DashboardDTO{
		ActiveSessions: make([]dto.SessionDTO, len(sessions)),
		Assignments:    make([]dto.AssignmentDTO, len(assignments)),
		Quizzes:        make([]dto.QuizDTO, len(quizzes)),
		Notifications:  make([]dto.NotificationDTO, len(notifications)),
	}
	for i, session := range sessions {
		result.ActiveSessions[i] = *toSessionDTO(session)
	}
	for i, assignment := range assignments {
		result.Assignments[i] = *toAssignmentDTO(assignment)
	}
	for i, quiz := range quizzes {
		result.Quizzes[i] = *toQuizDTO(quiz, false)
	}
	for i, notification := range notifications {
		result.Notifications[i] = toNotificationDTO(notification)
	}
	return result, nil
}
