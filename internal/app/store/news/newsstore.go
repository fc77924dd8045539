package newsstore

import (
	"context"
	"errors"
	"time"

	"github.com/byuhkorea/alumnihub/internal/app/system/htmlsanitize"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a news id does not resolve.
var ErrNotFound = errors.New("news item not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("news")}
}

// List returns all news items newest-first.
func (s *Store) List(ctx context.Context) ([]models.NewsItem, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.NewsItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get loads one news item by id.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*models.NewsItem, error) {
	var n models.NewsItem
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// Create inserts a news item. Content is sanitized here so unsafe HTML
// can never reach the collection regardless of which handler calls in.
func (s *Store) Create(ctx context.Context, n models.NewsItem) (models.NewsItem, error) {
	n.ID = primitive.NewObjectID()
	n.Content = htmlsanitize.Sanitize(n.Content)

	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.NewsItem{}, err
	}
	return n, nil
}

// Update holds the editable fields of a news item.
type Update struct {
	Title       string
	Date        time.Time
	Summary     string
	Content     string
	Link        string
	ImageURL    string
	StoragePath string
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{
		"title":      upd.Title,
		"date":       upd.Date,
		"summary":    upd.Summary,
		"content":    htmlsanitize.Sanitize(upd.Content),
		"link":       upd.Link,
		"updated_at": time.Now(),
	}
	if upd.ImageURL != "" {
		set["image_url"] = upd.ImageURL
		set["storage_path"] = upd.StoragePath
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
