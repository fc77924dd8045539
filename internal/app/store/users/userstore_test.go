package userstore_test

import (
	"testing"

	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/byuhkorea/alumnihub/internal/testutil"
)

func TestCreate_NormalizesAndForcesMemberRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)
	_, err := store.Create(ctx, models.UserProfile{
		UID:   "sub-1",
		Name:  "  Kim   Ji-woo ",
		Email: " JiWoo@Example.COM ",
		Phone: "01012345678",
		Role:  models.RoleAdmin, // self-assignment must not stick
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := store.Get(ctx, "sub-1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Role != models.RoleMember {
		t.Errorf("role: got %q, want member", got.Role)
	}
	if got.Name != "Kim Ji-woo" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.Email != "jiwoo@example.com" {
		t.Errorf("email: got %q", got.Email)
	}
	if got.Phone != "010-1234-5678" {
		t.Errorf("phone: got %q", got.Phone)
	}
	if got.NameCI == "" {
		t.Error("name_ci not populated")
	}
}

func TestCreate_DuplicateUID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)
	p := models.UserProfile{UID: "sub-dup", Name: "A", Email: "a@test.com", Phone: "010-1111-2222"}
	if _, err := store.Create(ctx, p); err != nil {
		t.Fatalf("first Create() error: %v", err)
	}
	if _, err := store.Create(ctx, p); err != userstore.ErrExists {
		t.Errorf("second Create() = %v, want ErrExists", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := userstore.New(db).Get(ctx, "nope"); err != userstore.ErrNotFound {
		t.Errorf("Get() = %v, want ErrNotFound", err)
	}
}

func TestUpdate_CannotTouchRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	f.CreateProfile(ctx, "sub-2", "Lee Min-jun", models.RoleManager)

	store := userstore.New(db)
	err := store.Update(ctx, "sub-2", userstore.ProfileUpdate{
		Name:    "Lee Min-jun",
		Phone:   "010-9999-8888",
		Company: "Acme",
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	got, _ := store.Get(ctx, "sub-2")
	if got.Role != models.RoleManager {
		t.Errorf("role changed by profile update: %q", got.Role)
	}
	if got.Company != "Acme" {
		t.Errorf("company: got %q", got.Company)
	}
}

func TestUpdateRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	f.CreateProfile(ctx, "sub-3", "Park Seo-yeon", models.RoleMember)

	store := userstore.New(db)

	if err := store.UpdateRole(ctx, "sub-3", "Manager"); err != nil {
		t.Fatalf("UpdateRole() error: %v", err)
	}
	got, _ := store.Get(ctx, "sub-3")
	if got.Role != models.RoleManager {
		t.Errorf("role: got %q, want manager", got.Role)
	}

	if err := store.UpdateRole(ctx, "sub-3", "superuser"); err != userstore.ErrBadRole {
		t.Errorf("bad role: got %v, want ErrBadRole", err)
	}
	if err := store.UpdateRole(ctx, "missing", models.RoleAdmin); err != userstore.ErrNotFound {
		t.Errorf("missing uid: got %v, want ErrNotFound", err)
	}
}

func TestSetPhotoIfEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	f.CreateProfile(ctx, "sub-4", "Choi Ha-eun", models.RoleMember)

	store := userstore.New(db)

	if err := store.SetPhotoIfEmpty(ctx, "sub-4", "https://lh3.test/photo1"); err != nil {
		t.Fatalf("SetPhotoIfEmpty() error: %v", err)
	}
	got, _ := store.Get(ctx, "sub-4")
	if got.ProfileImageURL != "https://lh3.test/photo1" {
		t.Errorf("photo: got %q", got.ProfileImageURL)
	}

	// A second backfill never overwrites an existing photo.
	if err := store.SetPhotoIfEmpty(ctx, "sub-4", "https://lh3.test/photo2"); err != nil {
		t.Fatalf("SetPhotoIfEmpty() error: %v", err)
	}
	got, _ = store.Get(ctx, "sub-4")
	if got.ProfileImageURL != "https://lh3.test/photo1" {
		t.Errorf("photo overwritten: %q", got.ProfileImageURL)
	}
}

func TestListAll_SortedByFoldedName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)
	f.CreateProfile(ctx, "s1", "charlie", models.RoleMember)
	f.CreateProfile(ctx, "s2", "Alice", models.RoleMember)
	f.CreateProfile(ctx, "s3", "Bob", models.RoleMember)

	got, err := userstore.New(db).ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Name != "Alice" || got[1].Name != "Bob" || got[2].Name != "charlie" {
		t.Errorf("order: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestFilter(t *testing.T) {
	profiles := []models.UserProfile{
		{Name: "Kim Ji-woo", NameCI: "kim ji-woo", Email: "jiwoo@byuh.test", Company: "Samsung", Position: "Engineer", GraduationYear: "2018"},
		{Name: "Lee Min-jun", NameCI: "lee min-jun", Email: "minjun@byuh.test", Company: "LG", Position: "Designer", GraduationYear: "2020"},
		{Name: "Park Seo-yeon", NameCI: "park seo-yeon", Email: "seoyeon@byuh.test", Company: "Hyundai", Position: "Manager", GraduationYear: "2018"},
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"kim", 1},
		{"KIM", 1},
		{"byuh.test", 3},
		{"2018", 2},
		{"samsung", 1},
		{"designer", 1},
		{"nothing-matches", 0},
	}
	for _, tt := range tests {
		got := userstore.Filter(profiles, tt.query)
		if len(got) != tt.want {
			t.Errorf("Filter(%q) returned %d, want %d", tt.query, len(got), tt.want)
		}
	}
}
