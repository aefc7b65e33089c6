package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/logger"
	"virtual-classroom-be/internal/pkg/mailer"
	"virtual-classroom-be/internal/repository/specification"
	"virtual-classroom-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Implemented by the WebSocket hub.
type NotificationDelivery interface {
	PushNotification(userId uuid.UUID, notification dto.NotificationDTO)
}

type INotificationService interface {
	Start(ctx context.Context) error
	Unread(ctx context.Context, identity *entity.Identity, limit int) ([]dto.NotificationDTO, error)
	UnreadCount(ctx context.Context, identity *entity.Identity) (int64, error)
	MarkAsRead(ctx context.Context, identity *entity.Identity, notificationId uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber message.Subscriber
	delivery   NotificationDelivery
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber message.Subscriber,
	delivery NotificationDelivery,
	email mailer.IEmailService,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		delivery:   delivery,
		mailer:     email,
		logger:     log,
	}
}

// Start begins consuming the event bus. One goroutine per topic.
func (s *notificationService) Start(ctx context.Context) error {
	handlers := map[string]func(context.Context, *message.Message){
		dto.TopicSessionStarted:    s.handleSessionStarted,
		dto.TopicAssignmentCreated: s.handleAssignmentCreated,
		dto.TopicSubmissionGraded:  s.handleSubmissionGraded,
	}

	for topic, handler := range handlers {
		messages, err := s.subscriber.Subscribe(ctx, topic)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go func(topic string, handler func(context.Context, *message.Message)) {
			for msg := range messages {
				handler(ctx, msg)
				msg.Ack()
			}
		}(topic, handler)
	}

	s.logger.Info("NotificationService", "Notification service started", nil)
	return nil
}

func (s *notificationService) handleSessionStarted(ctx context.Context, msg *message.Message) {
	var event dto.SessionStartedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Warn("NotificationService", "Malformed session started event", map[string]interface{}{"error": err.Error()})
		return
	}

	title := fmt.Sprintf("New %s Session Started", event.Subject)
	body := fmt.Sprintf("%s has started a %s session for %s", event.TeacherName, event.Subject, event.ClassName)

	s.notifyClass(ctx, event.ClassName, title, body)
}

func (s *notificationService) handleAssignmentCreated(ctx context.Context, msg *message.Message) {
	var event dto.AssignmentCreatedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Warn("NotificationService", "Malformed assignment created event", map[string]interface{}{"error": err.Error()})
		return
	}

	title := fmt.Sprintf("New Assignment: %s", event.Title)
	body := fmt.Sprintf("New assignment in %s for %s", event.Subject, event.ClassName)

	s.notifyClass(ctx, event.ClassName, title, body)
}

func (s *notificationService) handleSubmissionGraded(ctx context.Context, msg *message.Message) {
	var event dto.SubmissionGradedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Warn("NotificationService", "Malformed submission graded event", map[string]interface{}{"error": err.Error()})
		return
	}

	title := "Assignment Graded"
	body := fmt.Sprintf("Your assignment %q has been graded: %d/100", event.AssignmentTitle, event.Grade)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notification := &entity.Notification{
		UserId:    event.StudentId,
		Title:     title,
		Message:   body,
		CreatedAt: time.Now(),
	}
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		s.logger.Error("NotificationService", "Failed to persist notification", map[string]interface{}{"error": err.Error()})
		return
	}

	s.push(notification)

	if s.mailer != nil {
		student, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: event.StudentId})
		if err == nil && student != nil && student.Email != "" {
			go func(email string) {
				if err := s.mailer.SendNotification(email, title, body); err != nil {
					s.logger.Warn("NotificationService", "Failed to send grade email", map[string]interface{}{"error": err.Error()})
				}
			}(student.Email)
		}
	}
}

// notifyClass fans a notification out to every student of a class. All
// rows are inserted in one transaction, then pushed over WebSocket.
func (s *notificationService) notifyClass(ctx context.Context, className, title, body string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	students, err := uow.UserRepository().FindAll(ctx,
		specification.ByRole{Role: string(entity.UserRoleStudent)},
		specification.ByClassName{ClassName: className},
	)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to load class roster", map[string]interface{}{
			"error":      err.Error(),
			"class_name": className,
		})
		return
	}
	if len(students) == 0 {
		return
	}

	now := time.Now()
	notifications := make([]*entity.Notification, len(students))
	for i, student := range students {
		notifications[i] = &entity.Notification{
			UserId:    student.Id,
			Title:     title,
			Message:   body,
			CreatedAt: now,
		}
	}

	if err := uow.Begin(ctx); err != nil {
		s.logger.Error("NotificationService", "Failed to begin notification tx", map[string]interface{}{"error": err.Error()})
		return
	}
	defer uow.Rollback()

	if err := uow.NotificationRepository().CreateBatch(ctx, notifications); err != nil {
		s.logger.Error("NotificationService", "Failed to persist notifications", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error("NotificationService", "Failed to commit notifications", map[string]interface{}{"error": err.Error()})
		return
	}

	for _, notification := range notifications {
		s.push(notification)
	}
}

func (s *notificationService) push(notification *entity.Notification) {
	if s.delivery == nil {
		return
	}
	s.delivery.PushNotification(notification.UserId, toNotificationDTO(notification))
}

func (s *notificationService) Unread(ctx context.Context, identity *entity.Identity, limit int) ([]dto.NotificationDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindUnread(ctx, identity.UserId, limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.NotificationDTO, len(notifications))
	for i, notification := range notifications {
		result[i] = toNotificationDTO(notification)
	}
	return result, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, identity *entity.Identity) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().CountUnread(ctx, identity.UserId)
}

func (s *notificationService) MarkAsRead(ctx context.Context, identity *entity.Identity, notificationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAsRead(ctx, notificationId, identity.UserId)
}

func toNotificationDTO(notification *entity.Notification) dto.NotificationDTO {
	return dto.NotificationDTO{
		Id:        notification.Id,
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
