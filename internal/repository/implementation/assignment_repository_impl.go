package implementation

import (
	"context"
	"errors"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/mapper"
	"virtual-classroom-be/internal/model"
	"virtual-classroom-be/internal/repository/contract"
	"virtual-classroom-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssignmentMapper
}

func NewAssignmentRepository(db *gorm.DB) contract.AssignmentRepository {
	return &AssignmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssignmentMapper(),
	}
}

func (r *AssignmentRepositoryImpl) Create(ctx context.Context, assignment *entity.Assignment) error {
	modelAssignment := r.mapper.ToModel(assignment)
	if err := r.db.WithContext(ctx).Create(modelAssignment).Error; err != nil {
		return err
	}
	*assignment = *r.mapper.ToEntity(modelAssignment)
	return nil
}

func (r *AssignmentRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	var modelAssignment model.Assignment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelAssignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelAssignment), nil
}

func (r *AssignmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assignment, error) {
	var modelAssignments []*model.Assignment
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelAssignments).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAssignments), nil
}

func (r *AssignmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Assignment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AssignmentRepositoryImpl) CreateSubmission(ctx context.Context, submission *entity.Submission) error {
	modelSubmission := r.mapper.SubmissionToModel(submission)
	if err := r.db.WithContext(ctx).Create(modelSubmission).Error; err != nil {
		return err
	}
	*submission = *r.mapper.SubmissionToEntity(modelSubmission)
	return nil
}

func (r *AssignmentRepositoryImpl) UpdateSubmission(ctx context.Context, submission *entity.Submission) error {
	modelSubmission := r.mapper.SubmissionToModel(submission)
	return r.db.WithContext(ctx).Save(modelSubmission).Error
}

func (r *AssignmentRepositoryImpl) FindSubmission(ctx context.Context, assignmentId, studentId uuid.UUID) (*entity.Submission, error) {
	var modelSubmission model.Submission
	err := r.db.WithContext(ctx).
		Where("assignment_id = ? AND student_id = ?", assignmentId, studentId).
		First(&modelSubmission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubmissionToEntity(&modelSubmission), nil
}

func (r *AssignmentRepositoryImpl) FindSubmissionById(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	var modelSubmission model.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelSubmission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubmissionToEntity(&modelSubmission), nil
}

func (r *AssignmentRepositoryImpl) FindSubmissions(ctx context.Context, assignmentId uuid.UUID) ([]*entity.Submission, error) {
	var modelSubmissions []*model.Submission
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentId).
		Order("submitted_at DESC").
		Find(&modelSubmissions).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.SubmissionsToEntities(modelSubmissions), nil
}
