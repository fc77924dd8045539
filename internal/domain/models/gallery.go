// internal/domain/models/gallery.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryImage is a photo in the public gallery. Src is the serving
// URL; StoragePath is the blob key used for deletion. Older records
// imported from external albums may have a Src but no StoragePath, in
// which case deletion falls back to the URL.
type GalleryImage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Src         string             `bson:"src" json:"src"`
	StoragePath string             `bson:"storage_path,omitempty" json:"storage_path,omitempty"`
	Alt         string             `bson:"alt" json:"alt"`
	Category    string             `bson:"category" json:"category"`
	UploadedBy  string             `bson:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
