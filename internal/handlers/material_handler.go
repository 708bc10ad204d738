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

type MaterialHandler struct {
	Materials *service.MaterialService
	Publisher event.Publisher
}

func NewMaterialHandler(materials *service.MaterialService, publisher event.Publisher) *MaterialHandler {
	return &MaterialHandler{Materials: materials, Publisher: publisher}
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req models.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Title and course are required"})
		return
	}
	facultyID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return
	}

	material, err := h.Materials.CreateMaterial(context.Background(), facultyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Course not found"})
		case errors.Is(err, service.ErrInvalidFileType):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid file type"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		}
		return
	}

	h.Publisher.Publish(models.EventTypeMaterialCreated, gin.H{
		"materialId": material.ID.Hex(),
		"courseId":   material.Course.Hex(),
		"timestamp":  time.Now(),
	})
	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	materials, err := h.Materials.ListMaterials(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	if materials == nil {
		materials = []models.Material{}
	}
	c.JSON(http.StatusOK, materials)
}

func (h *MaterialHandler) ListByCourse(c *gin.Context) {
	courseID, err := primitive.ObjectIDFromHex(c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Course not found"})
		return
	}
	materials, err := h.Materials.ListByCourse(context.Background(), courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	if materials == nil {
		materials = []models.Material{}
	}
	c.JSON(http.StatusOK, materials)
}

// DeleteMaterial removes a material; only the faculty member who created it
// may delete it.
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Material not found"})
		return
	}
	facultyID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return
	}

	material, err := h.Materials.GetMaterial(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Material not found"})
		return
	}
	if material.Faculty != facultyID {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Not authorized to delete this material"})
		return
	}

	if err := h.Materials.DeleteMaterial(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Material deleted"})
}
