package service

import (
	"context"
	"errors"
	"time"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/repository/specification"
	"virtual-classroom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IQuizService interface {
	CreateQuiz(ctx context.Context, identity *entity.Identity, req *dto.CreateQuizRequest) (*dto.QuizDTO, error)
	ListQuizzes(ctx context.Context, identity *entity.Identity) ([]dto.QuizDTO, error)
	GetQuiz(ctx context.Context, identity *entity.Identity, quizId uuid.UUID) (*dto.QuizDTO, error)
	SubmitQuiz(ctx context.Context, identity *entity.Identity, quizId uuid.UUID, req *dto.SubmitQuizRequest) (*dto.QuizResultDTO, error)
	ToggleQuizActive(ctx context.Context, identity *entity.Identity, quizId uuid.UUID, active bool) error
	QuizResults(ctx context.Context, identity *entity.Identity, quizId uuid.UUID) ([]dto.QuizResultDTO, error)
	MyResult(ctx context.Context, identity *entity.Identity, quizId uuid.UUID) (*dto.QuizResultDTO, error)
}

type quizService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuizService(uowFactory unitofwork.RepositoryFactory) IQuizService {
	return &quizService{
		uowFactory: uowFactory,
	}
}

func (s *quizService) CreateQuiz(ctx context.Context, identity *entity.Identity, req *dto.CreateQuizRequest) (*dto.QuizDTO, error) {
	if !identity.IsTeacher() {
		return nil, apperror.NewAuthorization("only teachers can create quizzes")
	}

	quiz := &entity.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		ClassName:   req.ClassName,
		TeacherId:   identity.UserId,
		TimeLimit:   req.TimeLimit,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	for _, q := range req.Questions {
		quiz.Questions = append(quiz.Questions, entity.QuizQuestion{
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.QuizRepository().Create(ctx, quiz); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toQuizDTO(quiz, true), nil
}

func (s *quizService) ListQuizzes(ctx context.Context, identity *entity.Identity) ([]dto.QuizDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if identity.IsTeacher() {
		specs = append(specs, specification.ByTeacher{TeacherId: identity.UserId})
	} else {
		specs = append(specs,
			specification.ByClassName{ClassName: identity.ClassName},
			specification.ActiveOnly{},
		)
	}

	quizzes, err := uow.QuizRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.QuizDTO, len(quizzes))
	for i, quiz := range quizzes {
		result[i] = *toQuizDTO(quiz, false)
	}
	return result, nil
}

func (s *quizService) GetQuiz(ctx context.Context, identity *entity.Identity, quizId uuid.UUID) (*dto.QuizDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindById(ctx, quizId)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperror.NewNotFound("quiz", quizId.String())
	}

	if !identity.IsTeacher() {
		if quiz.ClassName != identity.ClassName {
			return nil, apperror.NewAuthorization("quiz belongs to another class")
		}
		if !quiz.IsActive {
			return nil, apperror.NewNotFound("quiz", quizId.String())
		}
	}

	return toQuizDTO(quiz, true), nil
}

// SubmitQuiz scores the student's answers against the stored questions.
// Each student gets exactly one attempt per quiz.
func (s *quizService) SubmitQuiz(ctx context.Context, identity *entity.Identity, quizId uuid.UUID, req *dto.SubmitQuizRequest) (*dto.QuizResultDTO, error) {
	if identity.IsTeacher() {
		return nil, apperror.NewAuthorization("teachers cannot take quizzes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindById(ctx, quizId)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperror.NewNotFound("quiz", quizId.String())
	}
	if quiz.ClassName != identity.ClassName {
		return nil, apperror.NewAuthorization("quiz belongs to another class")
	}
	if !quiz.IsActive {
		return nil, apperror.NewValidation("quiz is not accepting attempts")
	}

	existing, err := uow.QuizRepository().FindAttempt(ctx, quizId, identity.UserId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidation("quiz already attempted")
	}

	score, total := quiz.Score(req.Answers)

	now := time.Now()
	attempt := &entity.QuizAttempt{
		QuizId:      quizId,
		StudentId:   identity.UserId,
		Answers:     req.Answers,
		Score:       score,
		TotalPoints: total,
		StartedAt:   now,
		CompletedAt: &now,
	}
	// The unique index on (quiz_id, student_id) catches a double submit
	// that slips past the attempt check.
	if err := uow.QuizRepository().CreateAttempt(ctx, attempt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewValidation("quiz already attempted")
		}
		return nil, err
	}

	return toQuizResultDTO(attempt), nil
}

func (s *quizService) ToggleQuizActive(ctx context.Context, identity *entity.Identity, quizId uuid.UUID, active bool) error {
	if !identity.IsTeacher() {
		return apperror.NewAuthorization("only teachers can toggle quizzes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindById(ctx, quizId)
	if err != nil {
		return err
	}
	if quiz == nil {
		return apperror.NewNotFound("quiz", quizId.String())
	}
	if quiz.TeacherId != identity.UserId {
		return apperror.NewAuthorization("quiz belongs to another teacher")
	}

	return uow.QuizRepository().SetActive(ctx, quizId, active)
}

func (s *quizService) QuizResults(ctx context.Context, identity *entity.Identity, quizId uuid.UUID) ([]dto.QuizResultDTO, error) {
	if !identity.IsTeacher() {
		return nil, apperror.NewAuthorization("only teachers can list quiz results")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindById(ctx, quizId)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperror.NewNotFound("quiz", quizId.String())
	}
	if quiz.TeacherId != identity.UserId {
		return nil, apperror.NewAuthorization("quiz belongs to another teacher")
	}

	attempts, err := uow.QuizRepository().FindAttempts(ctx, quizId)
	if err != nil {
		return nil, err
	}

	result := make([]dto.QuizResultDTO, len(attempts))
	for i, attempt := range attempts {
		result[i] = *toQuizResultDTO(attempt)
	}
	return result, nil
}

func (s *quizService) MyResult(ctx context.Context, identity *entity.Identity, quizId uuid.UUID) (*dto.QuizResultDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	attempt, err := uow.QuizRepository().FindAttempt(ctx, quizId, identity.UserId)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, apperror.NewNotFound("quiz attempt", quizId.String())
	}
	return toQuizResultDTO(attempt), nil
}

// toQuizDTO hides correct answers from everyone. Teachers review answers
// through the raw question bank they authored, not the read API.
func toQuizDTO(quiz *entity.Quiz, withQuestions bool) *dto.QuizDTO {
	result := &dto.QuizDTO{
		Id:          quiz.Id,
		Title:       quiz.Title,
		Description: quiz.Description,
		Subject:     quiz.Subject,
		ClassName:   quiz.ClassName,
		TeacherId:   quiz.TeacherId,
		TimeLimit:   quiz.TimeLimit,
		IsActive:    quiz.IsActive,
		CreatedAt:   quiz.CreatedAt,
	}
	if withQuestions {
		for _, q := range quiz.Questions {
			result.Questions = append(result.Questions, dto.QuizQuestionDTO{
				Id:           q.Id,
				QuestionText: q.QuestionText,
				OptionA:      q.OptionA,
				OptionB:      q.OptionB,
				OptionC:      q.OptionC,
				OptionD:      q.OptionD,
				Points:       q.Points,
			})
		}
	}
	return result
}

func toQuizResultDTO(attempt *entity.QuizAttempt) *dto.QuizResultDTO {
	result := &dto.QuizResultDTO{
		AttemptId:   attempt.Id,
		QuizId:      attempt.QuizId,
		Score:       attempt.Score,
		TotalPoints: attempt.TotalPoints,
	}
	if attempt.CompletedAt != nil {
		result.CompletedAt = *attempt.CompletedAt
	}
	return result
}
