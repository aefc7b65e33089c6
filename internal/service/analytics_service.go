package service

import (
	"context"
	"fmt"
	"time"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/repository/specification"
	"virtual-classroom-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

type IAnalyticsService interface {
	ClassAnalytics(ctx context.Context, identity *entity.Identity, className, subject string) (*dto.ClassAnalyticsDTO, error)
}

type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory) IAnalyticsService {
	return &analyticsService{
		uowFactory: uowFactory,
		cache:      cache.New(5*time.Minute, 10*time.Minute),
	}
}

// ClassAnalytics aggregates per-class teaching stats. Results are cached
// for five minutes; the dashboard polls more often than grades change.
func (s *analyticsService) ClassAnalytics(ctx context.Context, identity *entity.Identity, className, subject string) (*dto.ClassAnalyticsDTO, error) {
	if !identity.IsTeacher() {
		return nil, apperror.NewAuthorization("only teachers can view analytics")
	}

	cacheKey := fmt.Sprintf("analytics:%s:%s:%s", identity.UserId, className, subject)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.ClassAnalyticsDTO), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	studentCount, err := uow.UserRepository().Count(ctx,
		specification.ByRole{Role: string(entity.UserRoleStudent)},
		specification.ByClassName{ClassName: className},
	)
	if err != nil {
		return nil, err
	}

	sessionCount, err := uow.ClassSessionRepository().Count(ctx,
		specification.ByClassName{ClassName: className},
		specification.BySubject{Subject: subject},
	)
	if err != nil {
		return nil, err
	}

	assignments, err := uow.AssignmentRepository().FindAll(ctx,
		specification.ByClassName{ClassName: className},
		specification.BySubject{Subject: subject},
		specification.ByTeacher{TeacherId: identity.UserId},
	)
	if err != nil {
		return nil, err
	}

	quizzes, err := uow.QuizRepository().FindAll(ctx,
		specification.ByClassName{ClassName: className},
		specification.BySubject{Subject: subject},
		specification.ByTeacher{TeacherId: identity.UserId},
	)
	if err != nil {
		return nil, err
	}

	result := &dto.ClassAnalyticsDTO{
		ClassName:         className,
		Subject:           subject,
		StudentCount:      studentCount,
		SessionCount:      sessionCount,
		AssignmentCount:   int64(len(assignments)),
		QuizCount:         int64(len(quizzes)),
		GradeDistribution: map[string]int{"A": 0, "B": 0, "C": 0, "D": 0, "F": 0},
	}

	for _, assignment := range assignments {
		submissions, err := uow.AssignmentRepository().FindSubmissions(ctx, assignment.Id)
		if err != nil {
			return nil, err
		}

		stats := dto.AssignmentStatsDTO{
			AssignmentId:    assignment.Id,
			Title:           assignment.Title,
			SubmissionCount: len(submissions),
		}
		gradeSum := 0
		for _, submission := range submissions {
			if submission.Grade == nil {
				continue
			}
			stats.GradedCount++
			gradeSum += *submission.Grade
			result.GradeDistribution[gradeBand(*submission.Grade)]++
		}
		if stats.GradedCount > 0 {
			stats.AverageGrade = float64(gradeSum) / float64(stats.GradedCount)
		}
		result.AssignmentStats = append(result.AssignmentStats, stats)
	}

	for _, quiz := range quizzes {
		attempts, err := uow.QuizRepository().FindAttempts(ctx, quiz.Id)
		if err != nil {
			return nil, err
		}

		stats := dto.QuizStatsDTO{
			QuizId:       quiz.Id,
			Title:        quiz.Title,
			AttemptCount: len(attempts),
		}
		if len(attempts) > 0 {
			scoreSum := 0
			for _, attempt := range attempts {
				scoreSum += attempt.Score
			}
			stats.AverageScore = float64(scoreSum) / float64(len(attempts))
		}
		result.QuizStats = append(result.QuizStats, stats)
	}

	s.cache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func gradeBand(grade int) string {
	switch {
	case grade >= 70:
		return "A"
	case grade >= 60:
		return "B"
	case grade >= 50:
		return "C"
	case grade >= 45:
		return "D"
	default:
		return "F"
	}
}
