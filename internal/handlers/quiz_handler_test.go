package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"elearning-service/internal/middleware"
	"elearning-service/internal/models"
	"elearning-service/internal/service"
)

type nopPublisher struct{}

func (nopPublisher) Publish(models.EventType, any) error { return nil }
func (nopPublisher) Close()                              {}

type stubQuizzes struct{ quiz *models.Quiz }

func (s *stubQuizzes) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	if s.quiz == nil {
		return nil, mongo.ErrNoDocuments
	}
	return s.quiz, nil
}

type stubAttempts struct{}

func (s *stubAttempts) Create(ctx context.Context, attempt *models.Attempt) error {
	attempt.ID = primitive.NewObjectID()
	return nil
}

type stubUsers struct {
	user    *models.User
	findErr error
}

func (s *stubUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.user, nil
}

func (s *stubUsers) ApplyScore(ctx context.Context, id primitive.ObjectID, earned int, badge string) error {
	return nil
}

func newAttemptRouter(t *testing.T, quiz *models.Quiz, users *stubUsers) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(nil, "test-secret", time.Hour)
	student := &models.User{ID: primitive.NewObjectID(), Name: "Bob", Role: models.RoleStudent}
	token, err := auth.GenerateToken(student)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	attempts := service.NewAttemptService(&stubAttempts{}, &stubQuizzes{quiz: quiz}, users)
	h := NewQuizHandler(nil, attempts, nopPublisher{})

	r := gin.New()
	r.POST("/api/quizzes/:id/attempt", middleware.Auth(auth), h.SubmitAttempt)
	return r, token
}

func postAttempt(r *gin.Engine, token, quizID, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/"+quizID+"/attempt", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-auth-token", token)
	r.ServeHTTP(w, req)
	return w
}

func gradedQuiz() *models.Quiz {
	return &models.Quiz{
		ID:    primitive.NewObjectID(),
		Title: "Algo Quiz 1",
		Questions: []models.Question{
			{Question: "Q1", Options: []string{"a", "b"}, CorrectIndex: 1, Points: 10},
			{Question: "Q2", Options: []string{"a", "b"}, CorrectIndex: 1, Points: 10},
		},
	}
}

func TestSubmitAttemptHappyPath(t *testing.T) {
	quiz := gradedQuiz()
	users := &stubUsers{user: &models.User{ID: primitive.NewObjectID(), Points: 10}}
	r, token := newAttemptRouter(t, quiz, users)

	w := postAttempt(r, token, quiz.ID.Hex(), `{"answers":[1,1]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Attempt   *models.Attempt `json:"attempt"`
		AttemptID string          `json:"attemptId"`
		NewPoints *int            `json:"newPoints"`
		Badges    []string        `json:"badges"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Attempt == nil || resp.Attempt.Score != 20 {
		t.Errorf("expected attempt with score 20, got %+v", resp.Attempt)
	}
	if resp.AttemptID == "" {
		t.Error("expected a non-empty attemptId")
	}
	if resp.NewPoints == nil || *resp.NewPoints != 30 {
		t.Errorf("expected newPoints 30, got %v", resp.NewPoints)
	}
	if len(resp.Badges) != 1 || resp.Badges[0] != service.BadgeQuizExplorer {
		t.Errorf("expected badges [%s], got %v", service.BadgeQuizExplorer, resp.Badges)
	}
}

func TestSubmitAttemptRejectsBadAnswers(t *testing.T) {
	quiz := gradedQuiz()
	users := &stubUsers{user: &models.User{}}
	r, token := newAttemptRouter(t, quiz, users)

	for _, body := range []string{`{}`, `{"answers":null}`, `{"answers":"nope"}`, ``} {
		w := postAttempt(r, token, quiz.ID.Hex(), body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestSubmitAttemptUnknownQuiz(t *testing.T) {
	users := &stubUsers{user: &models.User{}}
	r, token := newAttemptRouter(t, nil, users)

	w := postAttempt(r, token, primitive.NewObjectID().Hex(), `{"answers":[0]}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// A progression failure after the attempt is stored still returns the
// attempt, with null points, so the client learns its attempt id.
func TestSubmitAttemptReportsAttemptOnProgressionFailure(t *testing.T) {
	quiz := gradedQuiz()
	users := &stubUsers{findErr: errors.New("user lookup failed")}
	r, token := newAttemptRouter(t, quiz, users)

	w := postAttempt(r, token, quiz.ID.Hex(), `{"answers":[1,1]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if id, _ := resp["attemptId"].(string); id == "" {
		t.Error("expected a non-empty attemptId")
	}
	if resp["newPoints"] != nil {
		t.Errorf("expected null newPoints, got %v", resp["newPoints"])
	}
}
