package eventstore_test

import (
	"testing"
	"time"

	eventstore "github.com/byuhkorea/alumnihub/internal/app/store/events"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/byuhkorea/alumnihub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := eventstore.New(db)
	created, err := store.Create(ctx, models.Event{
		Title:         "Spring Picnic",
		Date:          time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		Location:      "Han River Park",
		RSVPQuestions: []string{"Dietary restrictions?"},
		CreatedBy:     "sub-admin",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Title != "Spring Picnic" {
		t.Errorf("title: got %q", got.Title)
	}
	if got.Attendees == nil || len(got.Attendees) != 0 {
		t.Errorf("attendees should start as an empty list, got %v", got.Attendees)
	}
}

func TestList_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)

	f.CreateEvent(ctx, "older", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	f.CreateEvent(ctx, "newer", time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))

	got, err := eventstore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "newer" {
		t.Errorf("order wrong: %+v", got)
	}
}

func TestSetRSVP(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	ev := f.CreateEvent(ctx, "Game Night", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	store := eventstore.New(db)

	if err := store.SetRSVP(ctx, ev.ID, "sub-a", []string{"vegetarian"}); err != nil {
		t.Fatalf("SetRSVP() error: %v", err)
	}

	got, _ := store.Get(ctx, ev.ID)
	if !got.HasAttendee("sub-a") {
		t.Error("attendee not recorded")
	}
	if answers := got.RSVPResponses["sub-a"]; len(answers) != 1 || answers[0] != "vegetarian" {
		t.Errorf("answers: %v", got.RSVPResponses)
	}
}

func TestSetRSVP_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	ev := f.CreateEvent(ctx, "Game Night", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	store := eventstore.New(db)
	for i := 0; i < 3; i++ {
		if err := store.SetRSVP(ctx, ev.ID, "sub-a", nil); err != nil {
			t.Fatalf("SetRSVP() #%d error: %v", i, err)
		}
	}

	got, _ := store.Get(ctx, ev.ID)
	if len(got.Attendees) != 1 {
		t.Errorf("attendees duplicated: %v", got.Attendees)
	}
}

func TestSetRSVP_ResubmitReplacesAnswers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	ev := f.CreateEvent(ctx, "Dinner", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))

	store := eventstore.New(db)
	if err := store.SetRSVP(ctx, ev.ID, "sub-a", []string{"first"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetRSVP(ctx, ev.ID, "sub-a", []string{"second"}); err != nil {
		t.Fatal(err)
	}

	got, _ := store.Get(ctx, ev.ID)
	if answers := got.RSVPResponses["sub-a"]; len(answers) != 1 || answers[0] != "second" {
		t.Errorf("answers not replaced: %v", got.RSVPResponses)
	}
}

func TestCancelRSVP(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	ev := f.CreateEvent(ctx, "Hike", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	store := eventstore.New(db)
	if err := store.SetRSVP(ctx, ev.ID, "sub-a", []string{"yes"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetRSVP(ctx, ev.ID, "sub-b", nil); err != nil {
		t.Fatal(err)
	}

	if err := store.CancelRSVP(ctx, ev.ID, "sub-a"); err != nil {
		t.Fatalf("CancelRSVP() error: %v", err)
	}

	got, _ := store.Get(ctx, ev.ID)
	if got.HasAttendee("sub-a") {
		t.Error("cancelled attendee still present")
	}
	if !got.HasAttendee("sub-b") {
		t.Error("other attendee was removed")
	}
	if _, ok := got.RSVPResponses["sub-a"]; ok {
		t.Error("cancelled attendee's answers were kept")
	}
}

func TestCancelRSVP_WhenNotAttendingIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	ev := f.CreateEvent(ctx, "Hike", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	if err := eventstore.New(db).CancelRSVP(ctx, ev.ID, "sub-never"); err != nil {
		t.Errorf("CancelRSVP() on non-attendee: %v", err)
	}
}

func TestUpdate_ImageKeptWhenNotReplaced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := eventstore.New(db)
	created, err := store.Create(ctx, models.Event{
		Title:       "Photo Walk",
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Location:    "Bukchon",
		ImageURL:    "https://cdn.test/events/a.jpg",
		StoragePath: "events/a.jpg",
		CreatedBy:   "sub-admin",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = store.Update(ctx, created.ID, eventstore.Update{
		Title:    "Photo Walk (rescheduled)",
		Date:     time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		Location: "Bukchon",
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	got, _ := store.Get(ctx, created.ID)
	if got.Title != "Photo Walk (rescheduled)" {
		t.Errorf("title: %q", got.Title)
	}
	if got.ImageURL != "https://cdn.test/events/a.jpg" {
		t.Errorf("image dropped on update without replacement: %q", got.ImageURL)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	ev := f.CreateEvent(ctx, "Gone Soon", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	store := eventstore.New(db)
	if err := store.Delete(ctx, ev.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.Get(ctx, ev.ID); err != eventstore.ErrNotFound {
		t.Errorf("Get() after delete = %v, want ErrNotFound", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := eventstore.New(db).Get(ctx, primitive.NewObjectID()); err != eventstore.ErrNotFound {
		t.Errorf("Get() = %v, want ErrNotFound", err)
	}
}
