package service

import (
	"context"
	"testing"
	"time"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createQuizRequest() *dto.CreateQuizRequest {
	return &dto.CreateQuizRequest{
		Title:     "Forces and Motion",
		Subject:   "Physics",
		ClassName: "SS1A",
		TimeLimit: 15,
		Questions: []dto.CreateQuizQuestionRequest{
			{
				QuestionText:  "Unit of force?",
				OptionA:       "Newton",
				OptionB:       "Joule",
				OptionC:       "Watt",
				OptionD:       "Pascal",
				CorrectAnswer: "A",
				Points:        2,
			},
			{
				QuestionText:  "Acceleration due to gravity?",
				OptionA:       "8.9",
				OptionB:       "9.8",
				OptionC:       "10.8",
				OptionD:       "11.2",
				CorrectAnswer: "B",
				Points:        3,
			},
		},
	}
}

func TestCreateQuizRequiresTeacher(t *testing.T) {
	svc := NewQuizService(newFakeFactory())

	_, err := svc.CreateQuiz(context.Background(), studentIdentity("amina", "SS1A"), createQuizRequest())
	assert.True(t, apperror.IsAuthorization(err))
}

func TestCreateQuizHidesCorrectAnswers(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	teacher := teacherIdentity("mr_okafor")

	quiz, err := svc.CreateQuiz(context.Background(), teacher, createQuizRequest())
	require.NoError(t, err)

	assert.True(t, quiz.IsActive)
	assert.Equal(t, teacher.UserId, quiz.TeacherId)
	require.Len(t, quiz.Questions, 2)
	for _, question := range quiz.Questions {
		assert.NotEqual(t, uuid.Nil, question.Id)
	}

	// Stored questions keep the answer key for scoring.
	stored, err := factory.uow.quizzes.FindById(context.Background(), quiz.Id)
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Questions[0].CorrectAnswer)
}

func TestListQuizzesScopedByRole(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	teacher := teacherIdentity("mr_okafor")

	active, err := svc.CreateQuiz(context.Background(), teacher, createQuizRequest())
	require.NoError(t, err)

	hidden, err := svc.CreateQuiz(context.Background(), teacher, createQuizRequest())
	require.NoError(t, err)
	require.NoError(t, svc.ToggleQuizActive(context.Background(), teacher, hidden.Id, false))

	otherClass := createQuizRequest()
	otherClass.ClassName = "SS1B"
	_, err = svc.CreateQuiz(context.Background(), teacher, otherClass)
	require.NoError(t, err)

	// Students see only active quizzes of their own class.
	visible, err := svc.ListQuizzes(context.Background(), studentIdentity("amina", "SS1A"))
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.Id, visible[0].Id)

	// The owning teacher sees everything they authored.
	mine, err := svc.ListQuizzes(context.Background(), teacher)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}

func TestGetQuizStudentVisibility(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	teacher := teacherIdentity("mr_okafor")

	quiz, err := svc.CreateQuiz(context.Background(), teacher, createQuizRequest())
	require.NoError(t, err)

	_, err = svc.GetQuiz(context.Background(), studentIdentity("chiamaka", "SS1B"), quiz.Id)
	assert.True(t, apperror.IsAuthorization(err))

	got, err := svc.GetQuiz(context.Background(), studentIdentity("amina", "SS1A"), quiz.Id)
	require.NoError(t, err)
	assert.Len(t, got.Questions, 2)

	// A deactivated quiz is indistinguishable from a missing one.
	require.NoError(t, svc.ToggleQuizActive(context.Background(), teacher, quiz.Id, false))
	_, err = svc.GetQuiz(context.Background(), studentIdentity("amina", "SS1A"), quiz.Id)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.GetQuiz(context.Background(), teacher, quiz.Id)
	assert.NoError(t, err)
}

func TestSubmitQuizScoresAnswers(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	teacher := teacherIdentity("mr_okafor")

	quiz, err := svc.CreateQuiz(context.Background(), teacher, createQuizRequest())
	require.NoError(t, err)

	answers := map[string]string{
		quiz.Questions[0].Id.String(): "A",
		quiz.Questions[1].Id.String(): "C",
	}

	result, err := svc.SubmitQuiz(context.Background(), studentIdentity("amina", "SS1A"), quiz.Id, &dto.SubmitQuizRequest{Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 5, result.TotalPoints)
	assert.False(t, result.CompletedAt.IsZero())
}

func TestSubmitQuizOneAttemptPerStudent(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	teacher := teacherIdentity("mr_okafor")

	quiz, err := svc.CreateQuiz(context.Background(), teacher, createQuizRequest())
	require.NoError(t, err)

	amina := studentIdentity("amina", "SS1A")
	_, err = svc.SubmitQuiz(context.Background(), amina, quiz.Id, &dto.SubmitQuizRequest{Answers: map[string]string{}})
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(context.Background(), amina, quiz.Id, &dto.SubmitQuizRequest{Answers: map[string]string{}})
	assert.True(t, apperror.IsValidation(err))

	// A classmate still gets their own attempt.
	_, err = svc.SubmitQuiz(context.Background(), studentIdentity("tunde", "SS1A"), quiz.Id, &dto.SubmitQuizRequest{Answers: map[string]string{}})
	assert.NoError(t, err)
}

func TestSubmitQuizDuplicateInsertIsValidation(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	teacher := teacherIdentity("mr_okafor")

	quiz, err := svc.CreateQuiz(context.Background(), teacher, createQuizRequest())
	require.NoError(t, err)

	// A second submit from the same student lands between the attempt
	// check and the insert, so the insert hits the unique index.
	amina := studentIdentity("amina", "SS1A")
	factory.uow.quizzes.beforeCreateAttempt = func() {
		now := time.Now()
		require.NoError(t, factory.uow.quizzes.CreateAttempt(context.Background(), &entity.QuizAttempt{
			QuizId:      quiz.Id,
			StudentId:   amina.UserId,
			StartedAt:   now,
			CompletedAt: &now,
		}))
	}

	_, err = svc.SubmitQuiz(context.Background(), amina, quiz.Id, &dto.SubmitQuizRequest{Answers: map[string]string{}})
	assert.True(t, apperror.IsValidation(err))

	attempts, err := factory.uow.quizzes.FindAttempts(context.Background(), quiz.Id)
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestSubmitQuizRejections(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	teacher := teacherIdentity("mr_okafor")

	quiz, err := svc.CreateQuiz(context.Background(), teacher, createQuizRequest())
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(context.Background(), teacher, quiz.Id, &dto.SubmitQuizRequest{Answers: map[string]string{}})
	assert.True(t, apperror.IsAuthorization(err))

	_, err = svc.SubmitQuiz(context.Background(), studentIdentity("chiamaka", "SS1B"), quiz.Id, &dto.SubmitQuizRequest{Answers: map[string]string{}})
	assert.True(t, apperror.IsAuthorization(err))

	_, err = svc.SubmitQuiz(context.Background(), studentIdentity("amina", "SS1A"), uuid.New(), &dto.SubmitQuizRequest{Answers: map[string]string{}})
	assert.True(t, apperror.IsNotFound(err))

	require.NoError(t, svc.ToggleQuizActive(context.Background(), teacher, quiz.Id, false))
	_, err = svc.SubmitQuiz(context.Background(), studentIdentity("amina", "SS1A"), quiz.Id, &dto.SubmitQuizRequest{Answers: map[string]string{}})
	assert.True(t, apperror.IsValidation(err))
}

func TestToggleQuizOwnership(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	owner := teacherIdentity("mr_okafor")

	quiz, err := svc.CreateQuiz(context.Background(), owner, createQuizRequest())
	require.NoError(t, err)

	err = svc.ToggleQuizActive(context.Background(), teacherIdentity("mrs_bello"), quiz.Id, false)
	assert.True(t, apperror.IsAuthorization(err))

	err = svc.ToggleQuizActive(context.Background(), studentIdentity("amina", "SS1A"), quiz.Id, false)
	assert.True(t, apperror.IsAuthorization(err))

	require.NoError(t, svc.ToggleQuizActive(context.Background(), owner, quiz.Id, false))
	stored, err := factory.uow.quizzes.FindById(context.Background(), quiz.Id)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestQuizResultsForOwner(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuizService(factory)
	owner := teacherIdentity("mr_okafor")

	quiz, err := svc.CreateQuiz(context.Background(), owner, createQuizRequest())
	require.NoError(t, err)

	amina := studentIdentity("amina", "SS1A")
	submitted, err := svc.SubmitQuiz(context.Background(), amina, quiz.Id, &dto.SubmitQuizRequest{Answers: map[string]string{
		quiz.Questions[0].Id.String(): "A",
		quiz.Questions[1].Id.String(): "B",
	}})
	require.NoError(t, err)

	results, err := svc.QuizResults(context.Background(), owner, quiz.Id)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].Score)

	_, err = svc.QuizResults(context.Background(), teacherIdentity("mrs_bello"), quiz.Id)
	assert.True(t, apperror.IsAuthorization(err))

	mine, err := svc.MyResult(context.Background(), amina, quiz.Id)
	require.NoError(t, err)
	assert.Equal(t, submitted.AttemptId, mine.AttemptId)

	_, err = svc.MyResult(context.Background(), studentIdentity("tunde", "SS1A"), quiz.Id)
	assert.True(t, apperror.IsNotFound(err))
}
