package gallerystore_test

import (
	"testing"

	gallerystore "github.com/byuhkorea/alumnihub/internal/app/store/gallery"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/byuhkorea/alumnihub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := gallerystore.New(db)
	created, err := store.Create(ctx, models.GalleryImage{
		Src:         "/files/images/gallery/a.jpg",
		StoragePath: "gallery/a.jpg",
		Alt:         "beach day",
		Category:    "2026-summer",
		UploadedBy:  "sub-admin",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("Create() did not assign an id")
	}

	got, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 1 || got[0].Alt != "beach day" {
		t.Errorf("list: %+v", got)
	}
}

func TestList_FiltersByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)

	f.CreateGalleryImage(ctx, "picnic")
	f.CreateGalleryImage(ctx, "picnic")
	f.CreateGalleryImage(ctx, "reunion")

	store := gallerystore.New(db)

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("all: %d, want 3", len(all))
	}

	picnic, err := store.List(ctx, "picnic")
	if err != nil {
		t.Fatal(err)
	}
	if len(picnic) != 2 {
		t.Errorf("picnic: %d, want 2", len(picnic))
	}
}

func TestCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)

	f.CreateGalleryImage(ctx, "picnic")
	f.CreateGalleryImage(ctx, "picnic")
	f.CreateGalleryImage(ctx, "reunion")

	cats, err := gallerystore.New(db).Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() error: %v", err)
	}
	if len(cats) != 2 {
		t.Errorf("categories: %v", cats)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	img := f.CreateGalleryImage(ctx, "picnic")

	store := gallerystore.New(db)
	if err := store.Delete(ctx, img.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.Get(ctx, img.ID); err != gallerystore.ErrNotFound {
		t.Errorf("Get() after delete = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, primitive.NewObjectID()); err != gallerystore.ErrNotFound {
		t.Errorf("Delete(missing) = %v, want ErrNotFound", err)
	}
}
