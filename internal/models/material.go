package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FileType string

const (
	FileTypePDF      FileType = "pdf"
	FileTypeVideo    FileType = "video"
	FileTypeDocument FileType = "document"
	FileTypeLink     FileType = "link"
	FileTypeOther    FileType = "other"
)

func (f FileType) Valid() bool {
	switch f {
	case FileTypePDF, FileTypeVideo, FileTypeDocument, FileTypeLink, FileTypeOther:
		return true
	}
	return false
}

type Material struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Course      primitive.ObjectID `bson:"course" json:"course"`
	Faculty     primitive.ObjectID `bson:"faculty" json:"faculty"`
	FileURL     string             `bson:"file_url" json:"fileUrl"`
	FileType    FileType           `bson:"file_type" json:"fileType"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
