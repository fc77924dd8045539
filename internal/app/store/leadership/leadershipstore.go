package leadershipstore

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

// ErrNotFound is returned when a leadership entry id does not resolve.
var ErrNotFound = errors.New("leadership entry not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("leadership")}
}

// List returns entries in display order (order ascending).
func (s *Store) List(ctx context.Context) ([]models.LeadershipEntry, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.LeadershipEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Add appends an entry at the end of the display order.
func (s *Store) Add(ctx context.Context, e models.LeadershipEntry) (models.LeadershipEntry, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.LeadershipEntry{}, err
	}

	e.ID = primitive.NewObjectID()
	e.Order = int(n)
	e.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.LeadershipEntry{}, err
	}
	return e, nil
}

// Update changes an entry's title and description. Order is changed
// only through Reorder so the rank sequence stays dense.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, title, description string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"title": title, "description": description}})
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

// Reorder rewrites every entry's rank to its position in ids: the
// first id gets order 0, the next 1, and so on. The writes go out as
// one ordered bulk so a full reorder is a single round trip and a
// failed write stops before corrupting the remaining ranks.
func (s *Store) Reorder(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(ids))
	for i, id := range ids {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": i}}))
	}

	_, err := s.c.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	return err
}
