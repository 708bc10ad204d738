package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"elearning-service/internal/models"
)

type fakeAttemptWriter struct {
	created []*models.Attempt
}

func (f *fakeAttemptWriter) Create(ctx context.Context, attempt *models.Attempt) error {
	attempt.ID = primitive.NewObjectID()
	f.created = append(f.created, attempt)
	return nil
}

type fakeUserScorer struct {
	user          *models.User
	findErr       error
	applyErr      error
	appliedEarned int
	appliedBadge  string
}

func (f *fakeUserScorer) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.user, nil
}

func (f *fakeUserScorer) ApplyScore(ctx context.Context, id primitive.ObjectID, earned int, badge string) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.appliedEarned = earned
	f.appliedBadge = badge
	return nil
}

func TestSubmitGradesAndAppliesScore(t *testing.T) {
	quiz := twoQuestionQuiz()
	quiz.ID = primitive.NewObjectID()
	userID := primitive.NewObjectID()

	attempts := &fakeAttemptWriter{}
	users := &fakeUserScorer{user: &models.User{ID: userID, Points: 10}}
	svc := NewAttemptService(attempts, &fakeQuizReader{quiz: quiz}, users)

	result, err := svc.Submit(context.Background(), userID, quiz.ID, []*int{intPtr(1), intPtr(1)})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Attempt.Score != 20 {
		t.Errorf("expected score 20, got %d", result.Attempt.Score)
	}
	if result.Attempt.ID.IsZero() {
		t.Error("stored attempt has no id")
	}
	if result.NewPoints != 30 {
		t.Errorf("expected new points 30, got %d", result.NewPoints)
	}
	if result.AwardedBadge != BadgeQuizExplorer {
		t.Errorf("expected %q awarded, got %q", BadgeQuizExplorer, result.AwardedBadge)
	}
	if users.appliedEarned != 20 || users.appliedBadge != BadgeQuizExplorer {
		t.Errorf("progression write got earned=%d badge=%q", users.appliedEarned, users.appliedBadge)
	}
	if len(attempts.created) != 1 {
		t.Errorf("expected one stored attempt, got %d", len(attempts.created))
	}
}

func TestSubmitUnknownQuiz(t *testing.T) {
	svc := NewAttemptService(&fakeAttemptWriter{}, &fakeQuizReader{}, &fakeUserScorer{})

	result, err := svc.Submit(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), nil)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
	if result != nil {
		t.Errorf("expected no result, got %+v", result)
	}
}

// When the progression step fails after the attempt was stored, the stored
// attempt still comes back with the error so the caller can report its id.
func TestSubmitReturnsStoredAttemptOnProgressionFailure(t *testing.T) {
	quiz := twoQuestionQuiz()
	quiz.ID = primitive.NewObjectID()

	testCases := []struct {
		name  string
		users *fakeUserScorer
	}{
		{"user lookup fails", &fakeUserScorer{findErr: errors.New("user lookup failed")}},
		{"score write fails", &fakeUserScorer{user: &models.User{}, applyErr: errors.New("write failed")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAttemptService(&fakeAttemptWriter{}, &fakeQuizReader{quiz: quiz}, tc.users)

			result, err := svc.Submit(context.Background(), primitive.NewObjectID(), quiz.ID, []*int{intPtr(1)})
			if err == nil {
				t.Fatal("expected an error")
			}
			if result == nil || result.Attempt == nil {
				t.Fatal("expected the stored attempt back with the error")
			}
			if result.Attempt.ID.IsZero() {
				t.Error("stored attempt has no id")
			}
			if result.NewPoints != 0 || result.Badges != nil {
				t.Errorf("progression fields should stay empty, got %+v", result)
			}
		})
	}
}
