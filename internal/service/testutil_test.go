package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/repository/contract"
	"virtual-classroom-be/internal/repository/specification"
	"virtual-classroom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They interpret the specification types the
// services actually use; anything unrecognized matches everything.

type fakeUow struct {
	users         *fakeUserRepo
	sessions      *fakeSessionRepo
	messages      *fakeMessageRepo
	notifications *fakeNotificationRepo
	assignments   *fakeAssignmentRepo
	quizzes       *fakeQuizRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                 { return u.users }
func (u *fakeUow) ClassSessionRepository() contract.ClassSessionRepository { return u.sessions }
func (u *fakeUow) MessageRepository() contract.MessageRepository           { return u.messages }
func (u *fakeUow) NotificationRepository() contract.NotificationRepository { return u.notifications }
func (u *fakeUow) AssignmentRepository() contract.AssignmentRepository     { return u.assignments }
func (u *fakeUow) QuizRepository() contract.QuizRepository                 { return u.quizzes }

type fakeFactory struct {
	uow *fakeUow
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		uow: &fakeUow{
			users:         &fakeUserRepo{staffIds: make(map[string]*entity.StaffId)},
			sessions:      &fakeSessionRepo{},
			messages:      &fakeMessageRepo{},
			notifications: &fakeNotificationRepo{},
			assignments:   &fakeAssignmentRepo{},
			quizzes:       &fakeQuizRepo{},
		},
	}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// Users

type fakeUserRepo struct {
	mu       sync.Mutex
	users    []*entity.User
	staffIds map[string]*entity.StaffId
}

func (r *fakeUserRepo) addUser(user *entity.User) *entity.User {
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return user
}

func (r *fakeUserRepo) addStaffId(code string) *entity.StaffId {
	staffId := &entity.StaffId{Id: uuid.New(), Code: code}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staffIds[code] = staffId
	return staffId
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByUsername:
			if u.Username != s.Username {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByRole:
			if string(u.Role) != s.Role {
				return false
			}
		case specification.ByClassName:
			if u.ClassName != s.ClassName {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.addUser(user)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if matchUser(user, specs) {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.User
	for _, user := range r.users {
		if matchUser(user, specs) {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, _ := r.FindAll(ctx, specs...)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) FindStaffId(ctx context.Context, code string) (*entity.StaffId, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.staffIds[code], nil
}

func (r *fakeUserRepo) MarkStaffIdUsed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, staffId := range r.staffIds {
		if staffId.Id == id {
			staffId.IsUsed = true
		}
	}
	return nil
}

// Sessions

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []*entity.ClassSession

	// beforeCreate fires once before the next insert, outside the lock,
	// so tests can interleave a competing writer.
	beforeCreate func()

	// createErr, when set, fails every insert with that error.
	createErr error
}

func matchSession(s *entity.ClassSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ActiveOnly:
			if !s.IsActive {
				return false
			}
		case specification.ByClassName:
			if s.ClassName != sp.ClassName {
				return false
			}
		case specification.BySubject:
			if s.Subject != sp.Subject {
				return false
			}
		case specification.ByTeacher:
			if s.TeacherId != sp.TeacherId {
				return false
			}
		}
	}
	return true
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ClassSession) error {
	r.mu.Lock()
	hook := r.beforeCreate
	r.beforeCreate = nil
	r.mu.Unlock()
	if hook != nil {
		hook()
	}

	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	// Mirrors the partial unique index on active (class_name, subject).
	if session.IsActive {
		for _, existing := range r.sessions {
			if existing.IsActive && existing.ClassName == session.ClassName && existing.Subject == session.Subject {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeSessionRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.ClassSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.sessions {
		if session.Id == id {
			return session, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindActive(ctx context.Context, className, subject string) (*entity.ClassSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.sessions {
		if session.IsActive && session.ClassName == className && session.Subject == subject {
			return session, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Deactivate(ctx context.Context, id uuid.UUID, endedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.sessions {
		if session.Id == id && session.IsActive {
			ended := endedAt
			session.IsActive = false
			session.EndedAt = &ended
		}
	}
	return nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.ClassSession
	for _, session := range r.sessions {
		if matchSession(session, specs) {
			result = append(result, session)
		}
	}
	return result, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	sessions, _ := r.FindAll(ctx, specs...)
	return int64(len(sessions)), nil
}

// Messages

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) FindRecent(ctx context.Context, className, subject string, limit int) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Message
	for _, message := range r.messages {
		if message.ClassName == className && message.Subject == subject {
			result = append(result, message)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Notifications

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.Id == uuid.Nil {
		notification.Id = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	for _, notification := range notifications {
		if err := r.Create(ctx, notification); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeNotificationRepo) FindUnread(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Notification
	for _, notification := range r.notifications {
		if notification.UserId == userId && !notification.IsRead {
			result = append(result, notification)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	unread, _ := r.FindUnread(ctx, userId, 0)
	return int64(len(unread)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(ctx context.Context, id, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.Id == id && notification.UserId == userId {
			notification.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) all() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Notification(nil), r.notifications...)
}

// Assignments

type fakeAssignmentRepo struct {
	mu          sync.Mutex
	assignments []*entity.Assignment
	submissions []*entity.Submission
}

func matchAssignment(a *entity.Assignment, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByClassName:
			if a.ClassName != s.ClassName {
				return false
			}
		case specification.BySubject:
			if a.Subject != s.Subject {
				return false
			}
		case specification.ByTeacher:
			if a.TeacherId != s.TeacherId {
				return false
			}
		}
	}
	return true
}

func (r *fakeAssignmentRepo) Create(ctx context.Context, assignment *entity.Assignment) error {
	if assignment.Id == uuid.Nil {
		assignment.Id = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments = append(r.assignments, assignment)
	return nil
}

func (r *fakeAssignmentRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, assignment := range r.assignments {
		if assignment.Id == id {
			return assignment, nil
		}
	}
	return nil, nil
}

func (r *fakeAssignmentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Assignment
	for _, assignment := range r.assignments {
		if matchAssignment(assignment, specs) {
			result = append(result, assignment)
		}
	}
	return result, nil
}

func (r *fakeAssignmentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	assignments, _ := r.FindAll(ctx, specs...)
	return int64(len(assignments)), nil
}

func (r *fakeAssignmentRepo) CreateSubmission(ctx context.Context, submission *entity.Submission) error {
	if submission.Id == uuid.Nil {
		submission.Id = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, submission)
	return nil
}

func (r *fakeAssignmentRepo) UpdateSubmission(ctx context.Context, submission *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.submissions {
		if existing.Id == submission.Id {
			r.submissions[i] = submission
		}
	}
	return nil
}

func (r *fakeAssignmentRepo) FindSubmission(ctx context.Context, assignmentId, studentId uuid.UUID) (*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, submission := range r.submissions {
		if submission.AssignmentId == assignmentId && submission.StudentId == studentId {
			return submission, nil
		}
	}
	return nil, nil
}

func (r *fakeAssignmentRepo) FindSubmissionById(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, submission := range r.submissions {
		if submission.Id == id {
			return submission, nil
		}
	}
	return nil, nil
}

func (r *fakeAssignmentRepo) FindSubmissions(ctx context.Context, assignmentId uuid.UUID) ([]*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Submission
	for _, submission := range r.submissions {
		if submission.AssignmentId == assignmentId {
			result = append(result, submission)
		}
	}
	return result, nil
}

// Quizzes

type fakeQuizRepo struct {
	mu       sync.Mutex
	quizzes  []*entity.Quiz
	attempts []*entity.QuizAttempt

	// beforeCreateAttempt fires once before the next attempt insert,
	// outside the lock, so tests can interleave a competing writer.
	beforeCreateAttempt func()
}

func matchQuiz(q *entity.Quiz, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ActiveOnly:
			if !q.IsActive {
				return false
			}
		case specification.ByClassName:
			if q.ClassName != s.ClassName {
				return false
			}
		case specification.BySubject:
			if q.Subject != s.Subject {
				return false
			}
		case specification.ByTeacher:
			if q.TeacherId != s.TeacherId {
				return false
			}
		}
	}
	return true
}

func (r *fakeQuizRepo) Create(ctx context.Context, quiz *entity.Quiz) error {
	if quiz.Id == uuid.Nil {
		quiz.Id = uuid.New()
	}
	for i := range quiz.Questions {
		if quiz.Questions[i].Id == uuid.Nil {
			quiz.Questions[i].Id = uuid.New()
		}
		quiz.Questions[i].QuizId = quiz.Id
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizzes = append(r.quizzes, quiz)
	return nil
}

func (r *fakeQuizRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, quiz := range r.quizzes {
		if quiz.Id == id {
			return quiz, nil
		}
	}
	return nil, nil
}

func (r *fakeQuizRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Quiz
	for _, quiz := range r.quizzes {
		if matchQuiz(quiz, specs) {
			result = append(result, quiz)
		}
	}
	return result, nil
}

func (r *fakeQuizRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	quizzes, _ := r.FindAll(ctx, specs...)
	return int64(len(quizzes)), nil
}

func (r *fakeQuizRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, quiz := range r.quizzes {
		if quiz.Id == id {
			quiz.IsActive = active
		}
	}
	return nil
}

func (r *fakeQuizRepo) CreateAttempt(ctx context.Context, attempt *entity.QuizAttempt) error {
	r.mu.Lock()
	hook := r.beforeCreateAttempt
	r.beforeCreateAttempt = nil
	r.mu.Unlock()
	if hook != nil {
		hook()
	}

	if attempt.Id == uuid.Nil {
		attempt.Id = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Mirrors the unique index on (quiz_id, student_id).
	for _, existing := range r.attempts {
		if existing.QuizId == attempt.QuizId && existing.StudentId == attempt.StudentId {
			return gorm.ErrDuplicatedKey
		}
	}
	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *fakeQuizRepo) FindAttempt(ctx context.Context, quizId, studentId uuid.UUID) (*entity.QuizAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, attempt := range r.attempts {
		if attempt.QuizId == quizId && attempt.StudentId == studentId {
			return attempt, nil
		}
	}
	return nil, nil
}

func (r *fakeQuizRepo) FindAttempts(ctx context.Context, quizId uuid.UUID) ([]*entity.QuizAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.QuizAttempt
	for _, attempt := range r.attempts {
		if attempt.QuizId == quizId {
			result = append(result, attempt)
		}
	}
	return result, nil
}

// Publisher and delivery fakes

type publishedEvent struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{topic: topic, payload: raw})
	return nil
}

func (p *fakePublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

type pushedNotification struct {
	userId       uuid.UUID
	notification dto.NotificationDTO
}

type fakeDelivery struct {
	mu     sync.Mutex
	pushed []pushedNotification
}

func (d *fakeDelivery) PushNotification(userId uuid.UUID, notification dto.NotificationDTO) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pushed = append(d.pushed, pushedNotification{userId: userId, notification: notification})
}

func (d *fakeDelivery) all() []pushedNotification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]pushedNotification(nil), d.pushed...)
}

func teacherIdentity(username string) *entity.Identity {
	return &entity.Identity{
		UserId:   uuid.New(),
		Username: username,
		Role:     entity.UserRoleTeacher,
	}
}

func studentIdentity(username, className string) *entity.Identity {
	return &entity.Identity{
		UserId:    uuid.New(),
		Username:  username,
		Role:      entity.UserRoleStudent,
		ClassName: className,
	}
}
