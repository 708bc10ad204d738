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

type FeedbackHandler struct {
	Feedback  *service.FeedbackService
	Publisher event.Publisher
}

func NewFeedbackHandler(feedback *service.FeedbackService, publisher event.Publisher) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedback, Publisher: publisher}
}

// GetForAttempt returns the feedback for an attempt, generating it on first
// request. Only the attempt's owner, faculty or an admin may read it.
func (h *FeedbackHandler) GetForAttempt(c *gin.Context) {
	attemptID, err := primitive.ObjectIDFromHex(c.Param("attemptId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Attempt not found"})
		return
	}
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return
	}

	attempt, err := h.Feedback.GetAttempt(context.Background(), attemptID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Attempt not found"})
		return
	}
	if attempt.User.Hex() != claims.UserID && !middleware.IsStaff(claims) {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized"})
		return
	}

	feedback, created, err := h.Feedback.GetOrCreate(context.Background(), attempt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	if created {
		h.Publisher.Publish(models.EventTypeFeedbackCreated, models.FeedbackEvent{
			FeedbackID: feedback.ID.Hex(),
			AttemptID:  attemptID.Hex(),
			UserID:     feedback.User.Hex(),
			Percentage: feedback.Percentage,
			Timestamp:  time.Now(),
		})
	}
	c.JSON(http.StatusOK, feedback)
}

// ListForUser returns a user's feedback history, newest first. Users may
// only read their own; faculty and admins may read anyone's.
func (h *FeedbackHandler) ListForUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return
	}
	if claims.UserID != userID.Hex() && !middleware.IsStaff(claims) {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized"})
		return
	}

	feedbacks, err := h.Feedback.ListByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}
	c.JSON(http.StatusOK, feedbacks)
}

// ListForQuiz returns all feedback produced for a quiz; faculty/admin only.
func (h *FeedbackHandler) ListForQuiz(c *gin.Context) {
	quizID, err := primitive.ObjectIDFromHex(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Quiz not found"})
		return
	}
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return
	}
	if !middleware.IsStaff(claims) {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized"})
		return
	}

	feedbacks, err := h.Feedback.ListByQuiz(context.Background(), quizID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}
	c.JSON(http.StatusOK, feedbacks)
}
