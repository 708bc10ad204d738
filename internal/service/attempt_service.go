package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"elearning-service/internal/models"
)

type AttemptWriter interface {
	Create(ctx context.Context, attempt *models.Attempt) error
}

// UserScorer reads a user's progression state and applies score updates.
type UserScorer interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ApplyScore(ctx context.Context, id primitive.ObjectID, earned int, badge string) error
}

// SubmissionResult is what a graded submission produces: the stored attempt
// plus the user's updated progression.
type SubmissionResult struct {
	Attempt      *models.Attempt
	NewPoints    int
	Badges       []string
	AwardedBadge string
}

type AttemptService struct {
	Attempts AttemptWriter
	Quizzes  QuizReader
	Users    UserScorer
}

func NewAttemptService(attempts AttemptWriter, quizzes QuizReader, users UserScorer) *AttemptService {
	return &AttemptService{Attempts: attempts, Quizzes: quizzes, Users: users}
}

// Submit grades the answer sheet, records the attempt and applies the score
// to the user's points and badges. The progression write is a single atomic
// update ($inc plus conditional badge append), so concurrent submissions by
// the same user cannot lose points.
//
// Once the attempt is stored it is returned even when the progression step
// fails, so callers can still hand the client its attempt id.
func (s *AttemptService) Submit(ctx context.Context, userID, quizID primitive.ObjectID, answers []*int) (*SubmissionResult, error) {
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	score := ScoreQuiz(quiz, answers)

	attempt := &models.Attempt{
		User:      userID,
		Quiz:      quizID,
		Answers:   answers,
		Score:     score,
		CreatedAt: time.Now(),
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}
	result := &SubmissionResult{Attempt: attempt}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return result, err
	}

	newPoints, newBadges := ApplyScore(user.Points, user.Badges, score)
	awarded := AwardedBadge(user.Badges, newBadges)
	if err := s.Users.ApplyScore(ctx, userID, score, awarded); err != nil {
		return result, err
	}

	result.NewPoints = newPoints
	result.Badges = newBadges
	result.AwardedBadge = awarded
	return result, nil
}
