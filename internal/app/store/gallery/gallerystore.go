package gallerystore

import (
	"context"
	"errors"
	"time"

	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a gallery image id does not resolve.
var ErrNotFound = errors.New("gallery image not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gallery")}
}

// List returns gallery images newest-first. An empty category means
// all categories.
func (s *Store) List(ctx context.Context, category string) ([]models.GalleryImage, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GalleryImage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get loads one image record by id.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	var g models.GalleryImage
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Categories returns the distinct category values in use, for the
// public gallery's filter bar.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	vals, err := s.c.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if str, ok := v.(string); ok && str != "" {
			out = append(out, str)
		}
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, g models.GalleryImage) (models.GalleryImage, error) {
	g.ID = primitive.NewObjectID()
	g.CreatedAt = time.Now()
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.GalleryImage{}, err
	}
	return g, nil
}

// Delete removes the image record. Blob cleanup happens before this
// call and its failure never blocks the record delete; an orphaned
// blob is preferable to a gallery entry with a dead link.
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
