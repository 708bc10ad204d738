package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"elearning-service/internal/event"
	"elearning-service/internal/middleware"
	"elearning-service/internal/models"
	"elearning-service/internal/service"
)

type QuizHandler struct {
	Quizzes   *service.QuizService
	Attempts  *service.AttemptService
	Publisher event.Publisher
}

func NewQuizHandler(quizzes *service.QuizService, attempts *service.AttemptService, publisher event.Publisher) *QuizHandler {
	return &QuizHandler{Quizzes: quizzes, Attempts: attempts, Publisher: publisher}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req models.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	courseID, err := primitive.ObjectIDFromHex(req.Course)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid course id"})
		return
	}

	quiz, err := h.Quizzes.CreateQuiz(context.Background(), courseID, req.Title, req.Questions)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Course not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	h.Publisher.Publish(models.EventTypeQuizCreated, gin.H{
		"quizId":    quiz.ID.Hex(),
		"courseId":  quiz.Course.Hex(),
		"timestamp": time.Now(),
	})
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Quizzes.ListQuizzes(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
		return
	}
	quiz, err := h.Quizzes.GetQuiz(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// SubmitAttempt grades a submitted answer sheet, stores the attempt and
// returns the user's updated points and badges.
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	quizID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Quiz not found"})
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return
	}

	var req models.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Answers == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Answers array is required"})
		return
	}

	result, err := h.Attempts.Submit(context.Background(), userID, quizID, req.Answers)
	if err != nil {
		// The attempt may already be stored when the progression step fails;
		// still hand the client its attempt with null points.
		if result != nil && result.Attempt != nil {
			c.JSON(http.StatusOK, models.SubmitAttemptResponse{
				Attempt:   result.Attempt,
				AttemptID: result.Attempt.ID.Hex(),
			})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	h.Publisher.Publish(models.EventTypeAttemptSubmitted, models.AttemptEvent{
		AttemptID: result.Attempt.ID.Hex(),
		UserID:    userID.Hex(),
		QuizID:    quizID.Hex(),
		Score:     result.Attempt.Score,
		NewPoints: result.NewPoints,
		Timestamp: time.Now(),
	})
	if result.AwardedBadge != "" {
		h.Publisher.Publish(models.EventTypeBadgeAwarded, models.BadgeEvent{
			UserID:    userID.Hex(),
			Badge:     result.AwardedBadge,
			Points:    result.NewPoints,
			Timestamp: time.Now(),
		})
	}

	c.JSON(http.StatusOK, models.SubmitAttemptResponse{
		Attempt:   result.Attempt,
		AttemptID: result.Attempt.ID.Hex(),
		NewPoints: &result.NewPoints,
		Badges:    result.Badges,
	})
}
