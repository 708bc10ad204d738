package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"elearning-service/internal/models"
	"elearning-service/internal/repository"
)

type MaterialService struct {
	Materials *repository.MaterialRepository
	Courses   *repository.CourseRepository
}

func NewMaterialService(materials *repository.MaterialRepository, courses *repository.CourseRepository) *MaterialService {
	return &MaterialService{Materials: materials, Courses: courses}
}

func (s *MaterialService) CreateMaterial(ctx context.Context, facultyID primitive.ObjectID, req *models.CreateMaterialRequest) (*models.Material, error) {
	courseID, err := primitive.ObjectIDFromHex(req.Course)
	if err != nil {
		return nil, err
	}
	if _, err := s.Courses.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	fileType := req.FileType
	if fileType == "" {
		fileType = models.FileTypeOther
	}
	if !fileType.Valid() {
		return nil, ErrInvalidFileType
	}

	material := &models.Material{
		Title:       req.Title,
		Description: req.Description,
		Course:      courseID,
		Faculty:     facultyID,
		FileURL:     req.FileURL,
		FileType:    fileType,
		CreatedAt:   time.Now(),
	}
	if err := s.Materials.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) ListMaterials(ctx context.Context) ([]models.Material, error) {
	return s.Materials.FindAll(ctx)
}

func (s *MaterialService) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Material, error) {
	return s.Materials.FindByCourse(ctx, courseID)
}

func (s *MaterialService) GetMaterial(ctx context.Context, id primitive.ObjectID) (*models.Material, error) {
	return s.Materials.FindByID(ctx, id)
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id primitive.ObjectID) error {
	return s.Materials.Delete(ctx, id)
}
