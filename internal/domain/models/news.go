// internal/domain/models/news.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsItem is a chapter news article. Content is HTML from the admin
// editor; it is sanitized before it reaches the store.
type NewsItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Date        time.Time          `bson:"date" json:"date"`
	Summary     string             `bson:"summary" json:"summary"`
	Content     string             `bson:"content" json:"content"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	StoragePath string             `bson:"storage_path,omitempty" json:"storage_path,omitempty"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"` // optional external link

	CreatedBy string    `bson:"created_by" json:"created_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
