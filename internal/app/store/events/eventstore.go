package eventstore

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

// ErrNotFound is returned when an event id does not resolve.
var ErrNotFound = errors.New("event not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// List returns all events newest-first by event date.
func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Event
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get loads one event by id.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var e models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create inserts a new event. Attendees always starts empty; RSVPs are
// only ever added through SetRSVP.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = primitive.NewObjectID()
	e.Attendees = []string{}
	e.RSVPResponses = nil

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// Update holds the editable fields of an event. Attendee state is not
// editable from the admin form and is left untouched.
type Update struct {
	Title         string
	Date          time.Time
	Time          string
	Location      string
	Description   string
	ImageURL      string
	StoragePath   string
	RSVPQuestions []string
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{
		"title":          upd.Title,
		"date":           upd.Date,
		"time":           upd.Time,
		"location":       upd.Location,
		"description":    upd.Description,
		"rsvp_questions": upd.RSVPQuestions,
		"updated_at":     time.Now(),
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

// SetRSVP records uid as attending in a single update: the attendee
// set add and the answer write land atomically, so answers can never
// exist for a uid that is not in Attendees. Repeating the call is a
// no-op for attendance and overwrites the stored answers.
func (s *Store) SetRSVP(ctx context.Context, id primitive.ObjectID, uid string, answers []string) error {
	update := bson.M{
		"$addToSet": bson.M{"attendees": uid},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	if len(answers) > 0 {
		update["$set"].(bson.M)["rsvp_responses."+uid] = answers
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CancelRSVP removes uid's attendance and stored answers in one
// atomic update. Cancelling when not attending is a no-op.
func (s *Store) CancelRSVP(ctx context.Context, id primitive.ObjectID, uid string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$pull":  bson.M{"attendees": uid},
		"$unset": bson.M{"rsvp_responses." + uid: ""},
		"$set":   bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
