package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/byuhkorea/alumnihub/internal/app/system/normalize"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no profile exists for a uid.
	ErrNotFound = errors.New("profile not found")
	// ErrExists is returned when creating a profile for a uid that already has one.
	ErrExists = errors.New("profile already exists")

	ErrBadRole = errors.New(`role must be "member"|"manager"|"admin"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Get loads a profile by the Google subject id.
func (s *Store) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := s.c.FindOne(ctx, bson.M{"_id": uid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new profile after normalizing fields. The role is
// always "member" on creation regardless of what the caller set; role
// changes go through UpdateRole only.
func (s *Store) Create(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	p.Name = normalize.Name(p.Name)
	p.NameCI = text.Fold(p.Name)
	p.Email = normalize.Email(p.Email)
	p.Phone = normalize.Phone(p.Phone)
	p.GraduationYear = normalize.GraduationYear(p.GraduationYear)
	p.Role = models.RoleMember

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.UserProfile{}, ErrExists
		}
		return models.UserProfile{}, err
	}
	return p, nil
}

// ProfileUpdate holds the fields a member can change about themselves.
// Role is deliberately absent: self-service edits can never touch it.
type ProfileUpdate struct {
	Name            string
	Phone           string
	Company         string
	Position        string
	LinkedIn        string
	GraduationYear  string
	ProfileImageURL string
}

// Update applies a member's self-service edits.
func (s *Store) Update(ctx context.Context, uid string, upd ProfileUpdate) error {
	name := normalize.Name(upd.Name)
	set := bson.M{
		"name":            name,
		"name_ci":         text.Fold(name),
		"phone":           normalize.Phone(upd.Phone),
		"company":         strings.TrimSpace(upd.Company),
		"position":        strings.TrimSpace(upd.Position),
		"linked_in":       strings.TrimSpace(upd.LinkedIn),
		"graduation_year": normalize.GraduationYear(upd.GraduationYear),
		"updated_at":      time.Now(),
	}
	if upd.ProfileImageURL != "" {
		set["profile_image_url"] = upd.ProfileImageURL
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRole changes a member's role. Admin console only.
func (s *Store) UpdateRole(ctx context.Context, uid, role string) error {
	role = normalize.Role(role)
	if !models.ValidRole(role) {
		return ErrBadRole
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPhotoIfEmpty backfills the profile image from the identity
// provider for profiles created before photos were captured. It never
// overwrites a photo the member already has.
func (s *Store) SetPhotoIfEmpty(ctx context.Context, uid, url string) error {
	if url == "" {
		return nil
	}
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": uid, "$or": bson.A{
			bson.M{"profile_image_url": ""},
			bson.M{"profile_image_url": bson.M{"$exists": false}},
		}},
		bson.M{"$set": bson.M{"profile_image_url": url}})
	return err
}

// ListAll returns every profile ordered by folded name.
func (s *Store) ListAll(ctx context.Context) ([]models.UserProfile, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.UserProfile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Filter narrows a profile list to entries matching the query with a
// case-folded substring match over name, email, company, position, and
// graduation year. A blank query returns the input unchanged.
func Filter(profiles []models.UserProfile, query string) []models.UserProfile {
	q := text.Fold(strings.TrimSpace(query))
	if q == "" {
		return profiles
	}
	var out []models.UserProfile
	for _, p := range profiles {
		if strings.Contains(p.NameCI, q) ||
			strings.Contains(text.Fold(p.Email), q) ||
			strings.Contains(text.Fold(p.Company), q) ||
			strings.Contains(text.Fold(p.Position), q) ||
			strings.Contains(p.GraduationYear, q) {
			out = append(out, p)
		}
	}
	return out
}
