package service

import (
	"context"
	"time"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/pkg/logger"
	"virtual-classroom-be/internal/repository/specification"
	"virtual-classroom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, identity *entity.Identity, req *dto.CreateAssignmentRequest) (*dto.AssignmentDTO, error)
	ListAssignments(ctx context.Context, identity *entity.Identity) ([]dto.AssignmentDTO, error)
	SubmitAssignment(ctx context.Context, identity *entity.Identity, assignmentId uuid.UUID, req *dto.SubmitAssignmentRequest) (*dto.SubmissionDTO, error)
	GradeSubmission(ctx context.Context, identity *entity.Identity, submissionId uuid.UUID, req *dto.GradeSubmissionRequest) (*dto.SubmissionDTO, error)
	ListSubmissions(ctx context.Context, identity *entity.Identity, assignmentId uuid.UUID) ([]dto.SubmissionDTO, error)
	MySubmission(ctx context.Context, identity *entity.Identity, assignmentId uuid.UUID) (*dto.SubmissionDTO, error)
}

type assignmentService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewAssignmentService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IAssignmentService {
	return &assignmentService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *assignmentService) CreateAssignment(ctx context.Context, identity *entity.Identity, req *dto.CreateAssignmentRequest) (*dto.AssignmentDTO, error) {
	if !identity.IsTeacher() {
		return nil, apperror.NewAuthorization("only teachers can create assignments")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignment := &entity.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		ClassName:   req.ClassName,
		TeacherId:   identity.UserId,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
	}
	if err := uow.AssignmentRepository().Create(ctx, assignment); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, dto.TopicAssignmentCreated, dto.AssignmentCreatedEvent{
		AssignmentId: assignment.Id,
		Title:        assignment.Title,
		ClassName:    assignment.ClassName,
		Subject:      assignment.Subject,
	}); err != nil {
		s.logger.Error("AssignmentService", "Failed to publish assignment created event", map[string]interface{}{
			"error":         err.Error(),
			"assignment_id": assignment.Id,
		})
	}

	return toAssignmentDTO(assignment), nil
}

func (s *assignmentService) ListAssignments(ctx context.Context, identity *entity.Identity) ([]dto.AssignmentDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if identity.IsTeacher() {
		specs = append(specs, specification.ByTeacher{TeacherId: identity.UserId})
	} else {
		specs = append(specs, specification.ByClassName{ClassName: identity.ClassName})
	}

	assignments, err := uow.AssignmentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		result[i] = *toAssignmentDTO(assignment)
	}
	return result, nil
}

func (s *assignmentService) SubmitAssignment(ctx context.Context, identity *entity.Identity, assignmentId uuid.UUID, req *dto.SubmitAssignmentRequest) (*dto.SubmissionDTO, error) {
	if identity.IsTeacher() {
		return nil, apperror.NewAuthorization("teachers cannot submit assignments")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignment, err := uow.AssignmentRepository().FindById(ctx, assignmentId)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, apperror.NewNotFound("assignment", assignmentId.String())
	}
	if assignment.ClassName != identity.ClassName {
		return nil, apperror.NewAuthorization("assignment belongs to another class")
	}

	existing, err := uow.AssignmentRepository().FindSubmission(ctx, assignmentId, identity.UserId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidation("assignment already submitted")
	}

	submission := &entity.Submission{
		AssignmentId: assignmentId,
		StudentId:    identity.UserId,
		Content:      req.Content,
		SubmittedAt:  time.Now(),
	}
	if err := uow.AssignmentRepository().CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	return toSubmissionDTO(submission), nil
}

func (s *assignmentService) GradeSubmission(ctx context.Context, identity *entity.Identity, submissionId uuid.UUID, req *dto.GradeSubmissionRequest) (*dto.SubmissionDTO, error) {
	if !identity.IsTeacher() {
		return nil, apperror.NewAuthorization("only teachers can grade submissions")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission, err := uow.AssignmentRepository().FindSubmissionById(ctx, submissionId)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperror.NewNotFound("submission", submissionId.String())
	}

	assignment, err := uow.AssignmentRepository().FindById(ctx, submission.AssignmentId)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, apperror.NewNotFound("assignment", submission.AssignmentId.String())
	}
	if assignment.TeacherId != identity.UserId {
		return nil, apperror.NewAuthorization("assignment belongs to another teacher")
	}

	now := time.Now()
	grade := req.Grade
	submission.Grade = &grade
	submission.Feedback = req.Feedback
	submission.GradedAt = &now

	if err := uow.AssignmentRepository().UpdateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, dto.TopicSubmissionGraded, dto.SubmissionGradedEvent{
		SubmissionId:    submission.Id,
		AssignmentTitle: assignment.Title,
		StudentId:       submission.StudentId,
		Grade:           grade,
	}); err != nil {
		s.logger.Error("AssignmentService", "Failed to publish submission graded event", map[string]interface{}{
			"error":         err.Error(),
			"submission_id": submission.Id,
		})
	}

	return toSubmissionDTO(submission), nil
}

func (s *assignmentService) ListSubmissions(ctx context.Context, identity *entity.Identity, assignmentId uuid.UUID) ([]dto.SubmissionDTO, error) {
	if !identity.IsTeacher() {
		return nil, apperror.NewAuthorization("only teachers can list submissions")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignment, err := uow.AssignmentRepository().FindById(ctx, assignmentId)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, apperror.NewNotFound("assignment", assignmentId.String())
	}
	if assignment.TeacherId != identity.UserId {
		return nil, apperror.NewAuthorization("assignment belongs to another teacher")
	}

	submissions, err := uow.AssignmentRepository().FindSubmissions(ctx, assignmentId)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SubmissionDTO, len(submissions))
	for i, submission := range submissions {
		result[i] = *toSubmissionDTO(submission)
	}
	return result, nil
}

func (s *assignmentService) MySubmission(ctx context.Context, identity *entity.Identity, assignmentId uuid.UUID) (*dto.SubmissionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission, err := uow.AssignmentRepository().FindSubmission(ctx, assignmentId, identity.UserId)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperror.NewNotFound("submission", assignmentId.String())
	}
	return toSubmissionDTO(submission), nil
}

func toAssignmentDTO(assignment *entity.Assignment) *dto.AssignmentDTO {
	return &dto.AssignmentDTO{
		Id:          assignment.Id,
		Title:       assignment.Title,
		Description: assignment.Description,
		Subject:     assignment.Subject,
		ClassName:   assignment.ClassName,
		TeacherId:   assignment.TeacherId,
		DueDate:     assignment.DueDate,
		CreatedAt:   assignment.CreatedAt,
	}
}

func toSubmissionDTO(submission *entity.Submission) *dto.SubmissionDTO {
	return &dto.SubmissionDTO{
		Id:           submission.Id,
		AssignmentId: submission.AssignmentId,
		StudentId:    submission.StudentId,
		Content:      submission.Content,
		Grade:        submission.Grade,
		Feedback:     submission.Feedback,
		SubmittedAt:  submission.SubmittedAt,
		GradedAt:     submission.GradedAt,
	}
}
