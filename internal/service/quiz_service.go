package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"elearning-service/internal/models"
	"elearning-service/internal/repository"
)

type QuizService struct {
	Quizzes *repository.QuizRepository
	Courses *repository.CourseRepository
}

func NewQuizService(quizzes *repository.QuizRepository, courses *repository.CourseRepository) *QuizService {
	return &QuizService{Quizzes: quizzes, Courses: courses}
}

// CreateQuiz validates the quiz before it is stored so no ungradable content
// (short option lists, out-of-range answer keys) ever reaches the scorer.
// Unset question point values are normalized to the default.
func (s *QuizService) CreateQuiz(ctx context.Context, courseID primitive.ObjectID, title string, questions []models.Question) (*models.Quiz, error) {
	if _, err := s.Courses.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	for i := range questions {
		if questions[i].Points <= 0 {
			questions[i].Points = models.DefaultQuestionPoints
		}
	}
	quiz := &models.Quiz{
		Title:     title,
		Course:    courseID,
		Questions: questions,
		CreatedAt: time.Now(),
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	if err := s.Quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	return s.Quizzes.FindAll(ctx)
}

func (s *QuizService) GetQuiz(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	return s.Quizzes.FindByID(ctx, id)
}
