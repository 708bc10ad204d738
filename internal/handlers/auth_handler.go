package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"elearning-service/internal/event"
	"elearning-service/internal/middleware"
	"elearning-service/internal/models"
	"elearning-service/internal/service"
)

type AuthHandler struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Publisher event.Publisher
}

func NewAuthHandler(auth *service.AuthService, users *service.UserService, publisher event.Publisher) *AuthHandler {
	return &AuthHandler{Auth: auth, Users: users, Publisher: publisher}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	resp, err := h.Auth.Register(context.Background(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"msg": "User already exists"})
		case errors.Is(err, service.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid role"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		}
		return
	}

	h.Publisher.Publish(models.EventTypeUserRegistered, gin.H{
		"userId":    resp.User.ID.Hex(),
		"role":      resp.User.Role,
		"timestamp": time.Now(),
	})
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	resp, err := h.Auth.Login(context.Background(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's current record, points and badges
// included.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return
	}
	user, err := h.Users.GetUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
