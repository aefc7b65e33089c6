package service

import (
	"context"
	"errors"
	"time"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/pkg/logger"
	"virtual-classroom-be/internal/repository/specification"
	"virtual-classroom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ISessionService interface {
	StartSession(ctx context.Context, identity *entity.Identity, req *dto.StartSessionRequest) (*dto.SessionDTO, error)
	EndSession(ctx context.Context, identity *entity.Identity, sessionId uuid.UUID) (*dto.SessionDTO, error)
	JoinSession(ctx context.Context, identity *entity.Identity, sessionId uuid.UUID) (*dto.JoinSessionResponse, error)
	ActiveSessions(ctx context.Context, identity *entity.Identity) ([]dto.SessionDTO, error)
}

type sessionService struct {
	uowFactory   unitofwork.RepositoryFactory
	publisher    IPublisherService
	historyLimit int
	logger       logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, historyLimit int, log logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory:   uowFactory,
		publisher:    publisher,
		historyLimit: historyLimit,
		logger:       log,
	}
}

// startSessionAttempts bounds retries when a concurrent starter wins the
// insert race for the same (class, subject) pair.
const startSessionAttempts = 3

// StartSession opens a live session for a class and subject. Any session
// still active for the same pair is superseded: marked ended before the
// new one is created, in one transaction, so at most one session per
// (class, subject) is ever active. The invariant is backed by a partial
// unique index on active rows; a starter that loses a concurrent insert
// race sees a duplicate key and retries against the winner's row.
func (s *sessionService) StartSession(ctx context.Context, identity *entity.Identity, req *dto.StartSessionRequest) (*dto.SessionDTO, error) {
	if !identity.IsTeacher() {
		return nil, apperror.NewAuthorization("only teachers can start sessions")
	}

	var session *entity.ClassSession
	var err error
	for attempt := 0; attempt < startSessionAttempts; attempt++ {
		session, err = s.startOnce(ctx, identity, req)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		s.logger.Warn("SessionService", "Lost session insert race, retrying", map[string]interface{}{
			"class_name": req.ClassName,
			"subject":    req.Subject,
		})
	}
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, dto.TopicSessionStarted, dto.SessionStartedEvent{
		SessionId:   session.Id,
		TeacherName: identity.Username,
		ClassName:   session.ClassName,
		Subject:     session.Subject,
	}); err != nil {
		s.logger.Error("SessionService", "Failed to publish session started event", map[string]interface{}{
			"error":      err.Error(),
			"session_id": session.Id,
		})
	}

	return toSessionDTO(session), nil
}

func (s *sessionService) startOnce(ctx context.Context, identity *entity.Identity, req *dto.StartSessionRequest) (*entity.ClassSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()

	stale, err := uow.ClassSessionRepository().FindActive(ctx, req.ClassName, req.Subject)
	if err != nil {
		return nil, err
	}
	if stale != nil {
		if err := uow.ClassSessionRepository().Deactivate(ctx, stale.Id, now); err != nil {
			return nil, err
		}
		s.logger.Info("SessionService", "Superseded stale session", map[string]interface{}{
			"session_id": stale.Id,
			"class_name": req.ClassName,
			"subject":    req.Subject,
		})
	}

	session := &entity.ClassSession{
		TeacherId: identity.UserId,
		ClassName: req.ClassName,
		Subject:   req.Subject,
		IsActive:  true,
		StartedAt: now,
	}
	if err := uow.ClassSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) EndSession(ctx context.Context, identity *entity.Identity, sessionId uuid.UUID) (*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ClassSessionRepository().FindById(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("session", sessionId.String())
	}
	if session.TeacherId != identity.UserId {
		return nil, apperror.NewAuthorization("only the owning teacher can end a session")
	}
	if !session.IsActive {
		return nil, apperror.NewInactiveSession(sessionId)
	}

	now := time.Now()
	if err := uow.ClassSessionRepository().Deactivate(ctx, sessionId, now); err != nil {
		return nil, err
	}

	session.IsActive = false
	session.EndedAt = &now
	return toSessionDTO(session), nil
}

// JoinSession validates the caller against the session and returns the
// recent chat history for the session's class and subject. Teachers may
// join any session, students only sessions of their own class.
func (s *sessionService) JoinSession(ctx context.Context, identity *entity.Identity, sessionId uuid.UUID) (*dto.JoinSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ClassSessionRepository().FindById(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("session", sessionId.String())
	}
	if !session.IsActive {
		return nil, apperror.NewInactiveSession(sessionId)
	}
	if !identity.IsTeacher() && identity.ClassName != session.ClassName {
		return nil, apperror.NewAuthorization("session belongs to another class")
	}

	messages, err := uow.MessageRepository().FindRecent(ctx, session.ClassName, session.Subject, s.historyLimit)
	if err != nil {
		return nil, err
	}

	// FindRecent returns newest first; history reads oldest first.
	history := make([]dto.MessageDTO, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		sender, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: m.SenderId})
		if err != nil {
			return nil, err
		}
		username := "unknown"
		role := ""
		if sender != nil {
			username = sender.Username
			role = string(sender.Role)
		}
		history = append(history, dto.MessageDTO{
			Id:        m.Id,
			Username:  username,
			Message:   m.Content,
			Timestamp: m.Timestamp.Format("15:04"),
			Role:      role,
		})
	}

	return &dto.JoinSessionResponse{
		Session: *toSessionDTO(session),
		History: history,
	}, nil
}

func (s *sessionService) ActiveSessions(ctx context.Context, identity *entity.Identity) ([]dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ActiveOnly{},
		specification.OrderBy{Field: "started_at", Desc: true},
	}
	if identity.IsTeacher() {
		specs = append(specs, specification.ByTeacher{TeacherId: identity.UserId})
	} else {
		specs = append(specs, specification.ByClassName{ClassName: identity.ClassName})
	}

	sessions, err := uow.ClassSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SessionDTO, len(sessions))
	for i, session := range sessions {
		result[i] = *toSessionDTO(session)
	}
	return result, nil
}

func toSessionDTO(session *entity.ClassSession) *dto.SessionDTO {
	return &dto.SessionDTO{
		Id:        session.Id,
		RoomId:    session.RoomId(),
		TeacherId: session.TeacherId,
		ClassName: session.ClassName,
		Subject:   session.Subject,
		IsActive:  session.IsActive,
		StartedAt: session.StartedAt,
		EndedAt:   session.EndedAt,
	}
}
