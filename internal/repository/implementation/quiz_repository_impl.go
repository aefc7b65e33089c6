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

type QuizRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuizMapper
}

func NewQuizRepository(db *gorm.DB) contract.QuizRepository {
	return &QuizRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuizMapper(),
	}
}

func (r *QuizRepositoryImpl) Create(ctx context.Context, quiz *entity.Quiz) error {
	modelQuiz := r.mapper.ToModel(quiz)
	if err := r.db.WithContext(ctx).Create(modelQuiz).Error; err != nil {
		return err
	}
	quiz.Id = modelQuiz.Id
	quiz.CreatedAt = modelQuiz.CreatedAt

	for i := range quiz.Questions {
		quiz.Questions[i].QuizId = modelQuiz.Id
		modelQuestion := r.mapper.QuestionToModel(&quiz.Questions[i])
		if err := r.db.WithContext(ctx).Create(modelQuestion).Error; err != nil {
			return err
		}
		quiz.Questions[i].Id = modelQuestion.Id
	}
	return nil
}

func (r *QuizRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Quiz, error) {
	var modelQuiz model.Quiz
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelQuiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var modelQuestions []*model.QuizQuestion
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", id).
		Order("created_at ASC").
		Find(&modelQuestions).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntity(&modelQuiz, modelQuestions), nil
}

func (r *QuizRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error) {
	var modelQuizzes []*model.Quiz
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelQuizzes).Error; err != nil {
		return nil, err
	}

	quizzes := make([]*entity.Quiz, len(modelQuizzes))
	for i, q := range modelQuizzes {
		quizzes[i] = r.mapper.ToEntity(q, nil)
	}
	return quizzes, nil
}

func (r *QuizRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Quiz{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *QuizRepositoryImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&model.Quiz{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *QuizRepositoryImpl) CreateAttempt(ctx context.Context, attempt *entity.QuizAttempt) error {
	modelAttempt, err := r.mapper.AttemptToModel(attempt)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(modelAttempt).Error; err != nil {
		return err
	}
	*attempt = *r.mapper.AttemptToEntity(modelAttempt)
	return nil
}

func (r *QuizRepositoryImpl) FindAttempt(ctx context.Context, quizId, studentId uuid.UUID) (*entity.QuizAttempt, error) {
	var modelAttempt model.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("quiz_id = ? AND student_id = ?", quizId, studentId).
		First(&modelAttempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AttemptToEntity(&modelAttempt), nil
}

func (r *QuizRepositoryImpl) FindAttempts(ctx context.Context, quizId uuid.UUID) ([]*entity.QuizAttempt, error) {
	var modelAttempts []*model.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizId).
		Order("completed_at DESC").
		Find(&modelAttempts).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.AttemptsToEntities(modelAttempts), nil
}
