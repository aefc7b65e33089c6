package implementation

import (
	"context"
	"errors"
	"time"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/mapper"
	"virtual-classroom-be/internal/model"
	"virtual-classroom-be/internal/repository/contract"
	"virtual-classroom-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClassSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewClassSessionRepository(db *gorm.DB) contract.ClassSessionRepository {
	return &ClassSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *ClassSessionRepositoryImpl) Create(ctx context.Context, session *entity.ClassSession) error {
	modelSession := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(modelSession).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(modelSession)
	return nil
}

func (r *ClassSessionRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.ClassSession, error) {
	var modelSession model.ClassSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelSession).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelSession), nil
}

func (r *ClassSessionRepositoryImpl) FindActive(ctx context.Context, className, subject string) (*entity.ClassSession, error) {
	// Locked inside the supersession transaction so concurrent starters
	// for the same pair serialize on the active row.
	var modelSession model.ClassSession
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("class_name = ? AND subject = ? AND is_active = ?", className, subject, true).
		First(&modelSession).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelSession), nil
}

func (r *ClassSessionRepositoryImpl) Deactivate(ctx context.Context, id uuid.UUID, endedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.ClassSession{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active": false,
			"ended_at":  endedAt,
		}).Error
}

func (r *ClassSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassSession, error) {
	var modelSessions []*model.ClassSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSessions).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelSessions), nil
}

func (r *ClassSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ClassSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
