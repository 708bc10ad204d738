package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"elearning-service/internal/models"
	"elearning-service/internal/repository"
)

type CourseService struct {
	Courses *repository.CourseRepository
}

func NewCourseService(courses *repository.CourseRepository) *CourseService {
	return &CourseService{Courses: courses}
}

func (s *CourseService) CreateCourse(ctx context.Context, facultyID primitive.ObjectID, title, description string) (*models.Course, error) {
	course := &models.Course{
		Title:       title,
		Description: description,
		Faculty:     facultyID,
		CreatedAt:   time.Now(),
	}
	if err := s.Courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.Courses.FindAll(ctx)
}

func (s *CourseService) GetCourse(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	return s.Courses.FindByID(ctx, id)
}

func (s *CourseService) UpdateCourse(ctx context.Context, id primitive.ObjectID, req *models.UpdateCourseRequest) (*models.Course, error) {
	if _, err := s.Courses.FindByID(ctx, id); err != nil {
		return nil, err
	}

	update := bson.M{}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Faculty != nil {
		facultyID, err := primitive.ObjectIDFromHex(*req.Faculty)
		if err != nil {
			return nil, err
		}
		update["faculty"] = facultyID
	}
	if len(update) > 0 {
		if err := s.Courses.Update(ctx, id, update); err != nil {
			return nil, err
		}
	}
	return s.Courses.FindByID(ctx, id)
}

func (s *CourseService) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	return s.Courses.Delete(ctx, id)
}
