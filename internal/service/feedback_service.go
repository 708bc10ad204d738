package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"elearning-service/internal/models"
)

// FeedbackStore is the slice of the feedback repository this service needs.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByAttempt(ctx context.Context, attemptID primitive.ObjectID) (*models.Feedback, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Feedback, error)
	FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Feedback, error)
}

type AttemptReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Attempt, error)
}

type QuizReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error)
}

// MessageFor maps a percentage to one of four qualitative bands.
func MessageFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "Excellent work! You have mastered this topic."
	case percentage >= 70:
		return "Good job! You have a solid understanding."
	case percentage >= 50:
		return "Not bad, but there is room for improvement."
	default:
		return "Keep practicing! Review the material and try again."
	}
}

// Percentage rounds score/total to the nearest whole percent. An empty quiz
// has no total, so its percentage is defined as 0.
func Percentage(score, totalScore int) int {
	if totalScore == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalScore) * 100))
}

type FeedbackService struct {
	Feedbacks FeedbackStore
	Attempts  AttemptReader
	Quizzes   QuizReader
}

func NewFeedbackService(feedbacks FeedbackStore, attempts AttemptReader, quizzes QuizReader) *FeedbackService {
	return &FeedbackService{Feedbacks: feedbacks, Attempts: attempts, Quizzes: quizzes}
}

func (s *FeedbackService) GetAttempt(ctx context.Context, attemptID primitive.ObjectID) (*models.Attempt, error) {
	return s.Attempts.FindByID(ctx, attemptID)
}

// GetOrCreate returns the feedback record for an attempt, computing and
// persisting it on first request. An existing record is returned untouched
// even if the quiz has since been edited: feedback is a point-in-time
// snapshot. Two concurrent first requests are resolved by the unique index
// on the attempt field; the losing writer re-reads the winner's record. The
// second return value reports whether this call created the record.
func (s *FeedbackService) GetOrCreate(ctx context.Context, attempt *models.Attempt) (*models.Feedback, bool, error) {
	existing, err := s.Feedbacks.FindByAttempt(ctx, attempt.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	quiz, err := s.Quizzes.FindByID(ctx, attempt.Quiz)
	if err != nil {
		return nil, false, err
	}

	total := quiz.TotalScore()
	pct := Percentage(attempt.Score, total)
	feedback := &models.Feedback{
		User:           attempt.User,
		Quiz:           attempt.Quiz,
		Attempt:        attempt.ID,
		Score:          attempt.Score,
		TotalScore:     total,
		Percentage:     pct,
		Message:        MessageFor(pct),
		CorrectAnswers: quiz.AnswerKey(),
		StudentAnswers: attempt.Answers,
		CreatedAt:      time.Now(),
	}

	if err := s.Feedbacks.Create(ctx, feedback); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			winner, rerr := s.Feedbacks.FindByAttempt(ctx, attempt.ID)
			if rerr != nil {
				return nil, false, rerr
			}
			return winner, false, nil
		}
		return nil, false, err
	}
	return feedback, true, nil
}

func (s *FeedbackService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Feedback, error) {
	return s.Feedbacks.FindByUser(ctx, userID)
}

func (s *FeedbackService) ListByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Feedback, error) {
	return s.Feedbacks.FindByQuiz(ctx, quizID)
}
