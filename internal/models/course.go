package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Faculty     primitive.ObjectID `bson:"faculty" json:"faculty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
