package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"elearning-service/internal/models"
	"elearning-service/internal/repository"
)

// UserService backs the admin user-management endpoints.
type UserService struct {
	Users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.Users.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if _, err := s.Users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Email != nil {
		update["email"] = *req.Email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, ErrInvalidRole
		}
		update["role"] = *req.Role
	}
	if req.Points != nil {
		update["points"] = *req.Points
	}
	if req.Badges != nil {
		update["badges"] = req.Badges
	}
	if len(update) > 0 {
		if err := s.Users.Update(ctx, id, update); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}
	return s.Users.FindByID(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return s.Users.Delete(ctx, id)
}
