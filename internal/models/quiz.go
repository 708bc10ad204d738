package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultQuestionPoints is used when a question does not carry its own value.
const DefaultQuestionPoints = 10

type Question struct {
	Question     string   `bson:"question" json:"question"`
	Options      []string `bson:"options" json:"options"`
	CorrectIndex int      `bson:"correct_index" json:"correctIndex"`
	Points       int      `bson:"points" json:"points"`
}

// PointValue returns the question's worth, falling back to the default
// when the stored value is missing or non-positive.
func (q Question) PointValue() int {
	if q.Points <= 0 {
		return DefaultQuestionPoints
	}
	return q.Points
}

type Quiz struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Course    primitive.ObjectID `bson:"course" json:"course"`
	Questions []Question         `bson:"questions" json:"questions"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// TotalScore is the sum of all question point values.
func (qz *Quiz) TotalScore() int {
	total := 0
	for _, q := range qz.Questions {
		total += q.PointValue()
	}
	return total
}

// AnswerKey returns the correct option index for every question, in order.
func (qz *Quiz) AnswerKey() []int {
	key := make([]int, len(qz.Questions))
	for i, q := range qz.Questions {
		key[i] = q.CorrectIndex
	}
	return key
}

// Validate rejects quizzes whose questions cannot be graded: every question
// needs at least two options and a correct index pointing at one of them.
func (qz *Quiz) Validate() error {
	if qz.Title == "" {
		return errors.New("title is required")
	}
	for i, q := range qz.Questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: at least two options are required", i)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("question %d: correct index %d is out of range", i, q.CorrectIndex)
		}
	}
	return nil
}
