package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProfile inserts a member profile keyed by uid.
func (f *Fixtures) CreateProfile(ctx context.Context, uid, name, role string) models.UserProfile {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.UserProfile{
		UID:       uid,
		Name:      name,
		NameCI:    text.Fold(name),
		Email:     uid + "@test.com",
		Phone:     "010-0000-0000",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}

// CreateEvent inserts an event on the given date.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, date time.Time) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	ev := models.Event{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Date:      date,
		Location:  "Seoul",
		Attendees: []string{},
		CreatedBy: "google-sub-admin",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}

// CreateNews inserts a news item on the given date.
func (f *Fixtures) CreateNews(ctx context.Context, title string, date time.Time) models.NewsItem {
	f.t.Helper()

	now := time.Now().UTC()
	n := models.NewsItem{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Date:      date,
		Summary:   "summary of " + title,
		Content:   "<p>content</p>",
		CreatedBy: "google-sub-admin",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("news").InsertOne(ctx, n); err != nil {
		f.t.Fatalf("failed to create test news item: %v", err)
	}
	return n
}

// CreateGalleryImage inserts a gallery record.
func (f *Fixtures) CreateGalleryImage(ctx context.Context, category string) models.GalleryImage {
	f.t.Helper()

	img := models.GalleryImage{
		ID:          primitive.NewObjectID(),
		Src:         "/files/images/gallery/test.jpg",
		StoragePath: "gallery/test.jpg",
		Alt:         "test image",
		Category:    category,
		UploadedBy:  "google-sub-admin",
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("gallery").InsertOne(ctx, img); err != nil {
		f.t.Fatalf("failed to create test gallery image: %v", err)
	}
	return img
}

// CreateLeadershipEntry inserts a leadership roster entry at the given
// order.
func (f *Fixtures) CreateLeadershipEntry(ctx context.Context, uid, title string, order int) models.LeadershipEntry {
	f.t.Helper()

	e := models.LeadershipEntry{
		ID:        primitive.NewObjectID(),
		UID:       uid,
		Title:     title,
		Order:     order,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("leadership").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test leadership entry: %v", err)
	}
	return e
}
