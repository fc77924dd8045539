// internal/domain/models/leadership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadershipEntry elevates a member profile to a titled, ordered
// position on the About page. Order is a dense rank: after any reorder
// the set of order values is a contiguous 0..N-1 matching the display
// sequence. An entry whose UID no longer resolves to a profile is
// skipped at render time, not treated as an error.
type LeadershipEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID         string             `bson:"uid" json:"uid"` // member profile reference
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
