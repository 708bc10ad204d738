package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is the durable, point-in-time evaluation of an attempt. It
// snapshots the quiz answer key at creation time, so later quiz edits do not
// rewrite history. At most one record exists per attempt (unique index).
type Feedback struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Quiz           primitive.ObjectID `bson:"quiz" json:"quiz"`
	Attempt        primitive.ObjectID `bson:"attempt" json:"attempt"`
	Score          int                `bson:"score" json:"score"`
	TotalScore     int                `bson:"total_score" json:"totalScore"`
	Percentage     int                `bson:"percentage" json:"percentage"`
	Message        string             `bson:"feedback" json:"feedback"`
	CorrectAnswers []int              `bson:"correct_answers" json:"correctAnswers"`
	StudentAnswers []*int             `bson:"student_answers" json:"studentAnswers"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}
