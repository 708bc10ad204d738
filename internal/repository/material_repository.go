package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"elearning-service/internal/models"
)

type MaterialRepository struct {
	Col *mongo.Collection
}

func NewMaterialRepository(db *mongo.Database) *MaterialRepository {
	return &MaterialRepository{Col: db.Collection("materials")}
}

func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	res, err := r.Col.InsertOne(ctx, material)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		material.ID = oid
	}
	return nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Material, error) {
	var material models.Material
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&material)
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *MaterialRepository) FindAll(ctx context.Context) ([]models.Material, error) {
	return r.find(ctx, bson.M{})
}

func (r *MaterialRepository) FindByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Material, error) {
	return r.find(ctx, bson.M{"course": courseID})
}

func (r *MaterialRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MaterialRepository) find(ctx context.Context, filter bson.M) ([]models.Material, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var materials []models.Material
	for cur.Next(ctx) {
		var m models.Material
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, nil
}
