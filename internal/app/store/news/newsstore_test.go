package newsstore_test

import (
	"strings"
	"testing"
	"time"

	newsstore "github.com/byuhkorea/alumnihub/internal/app/store/news"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/byuhkorea/alumnihub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_SanitizesContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := newsstore.New(db)
	created, err := store.Create(ctx, models.NewsItem{
		Title:     "Reunion Recap",
		Date:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Content:   `<p>Great turnout!</p><script>alert("x")</script>`,
		CreatedBy: "sub-admin",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got.Content, "<script") {
		t.Errorf("script tag survived sanitization: %q", got.Content)
	}
	if !strings.Contains(got.Content, "<p>Great turnout!</p>") {
		t.Errorf("benign markup stripped: %q", got.Content)
	}
}

func TestUpdate_SanitizesContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	n := f.CreateNews(ctx, "Post", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	store := newsstore.New(db)
	err := store.Update(ctx, n.ID, newsstore.Update{
		Title:   "Post",
		Date:    n.Date,
		Content: `ok <img src=x onerror=alert(1)>`,
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	got, _ := store.Get(ctx, n.ID)
	if strings.Contains(got.Content, "onerror") {
		t.Errorf("event handler survived sanitization: %q", got.Content)
	}
}

func TestList_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)

	f.CreateNews(ctx, "older", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	f.CreateNews(ctx, "newer", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	got, err := newsstore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "newer" {
		t.Errorf("order wrong: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	n := f.CreateNews(ctx, "Gone", time.Now().UTC())

	store := newsstore.New(db)
	if err := store.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.Get(ctx, n.ID); err != newsstore.ErrNotFound {
		t.Errorf("Get() after delete = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, primitive.NewObjectID()); err != newsstore.ErrNotFound {
		t.Errorf("Delete(missing) = %v, want ErrNotFound", err)
	}
}
