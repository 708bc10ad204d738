package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"elearning-service/internal/models"
)

type FeedbackRepository struct {
	Col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{Col: db.Collection("feedback")}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	res, err := r.Col.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		feedback.ID = oid
	}
	return nil
}

func (r *FeedbackRepository) FindByAttempt(ctx context.Context, attemptID primitive.ObjectID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.Col.FindOne(ctx, bson.M{"attempt": attemptID}).Decode(&feedback)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Feedback, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *FeedbackRepository) FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Feedback, error) {
	return r.find(ctx, bson.M{"quiz": quizID})
}

func (r *FeedbackRepository) find(ctx context.Context, filter bson.M) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var feedbacks []models.Feedback
	for cur.Next(ctx) {
		var f models.Feedback
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, nil
}
