package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attempt is one user's submission of answers to a quiz. Entries in Answers
// line up with the quiz's questions; a nil entry means the question was left
// unanswered. Attempts are append-only and never modified after creation.
type Attempt struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Quiz      primitive.ObjectID `bson:"quiz" json:"quiz"`
	Answers   []*int             `bson:"answers" json:"answers"`
	Score     int                `bson:"score" json:"score"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
