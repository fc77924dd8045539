package cache

import (
	"context"
	"errors"
	"testing"
)

func TestGetOrLoad_CachesValue(t *testing.T) {
	c := New()
	calls := 0
	load := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOrLoad(context.Background(), c, KeyEvents, TTLFrequent, load)
		if err != nil {
			t.Fatalf("GetOrLoad() error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("loader ran %d times, want 1", calls)
	}
}

func TestGetOrLoad_ErrorNotCached(t *testing.T) {
	c := New()
	calls := 0
	load := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("db down")
		}
		return 42, nil
	}

	if _, err := GetOrLoad(context.Background(), c, KeyNews, TTLFrequent, load); err == nil {
		t.Fatal("expected error from first load")
	}
	got, err := GetOrLoad(context.Background(), c, KeyNews, TTLFrequent, load)
	if err != nil {
		t.Fatalf("second load error: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if calls != 2 {
		t.Errorf("loader ran %d times, want 2", calls)
	}
}

func TestInvalidate(t *testing.T) {
	c := New()
	calls := 0
	load := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	if _, err := GetOrLoad(context.Background(), c, KeyGallery, TTLModerate, load); err != nil {
		t.Fatal(err)
	}
	c.Invalidate(KeyGallery)
	if _, err := GetOrLoad(context.Background(), c, KeyGallery, TTLModerate, load); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("loader ran %d times after invalidation, want 2", calls)
	}
}

func TestInvalidate_OnlyNamedKeys(t *testing.T) {
	c := New()
	evCalls, newsCalls := 0, 0

	loadEvents := func(ctx context.Context) (string, error) { evCalls++; return "e", nil }
	loadNews := func(ctx context.Context) (string, error) { newsCalls++; return "n", nil }

	_, _ = GetOrLoad(context.Background(), c, KeyEvents, TTLFrequent, loadEvents)
	_, _ = GetOrLoad(context.Background(), c, KeyNews, TTLFrequent, loadNews)

	c.Invalidate(KeyEvents)

	_, _ = GetOrLoad(context.Background(), c, KeyEvents, TTLFrequent, loadEvents)
	_, _ = GetOrLoad(context.Background(), c, KeyNews, TTLFrequent, loadNews)

	if evCalls != 2 {
		t.Errorf("events loader ran %d times, want 2", evCalls)
	}
	if newsCalls != 1 {
		t.Errorf("news loader ran %d times, want 1", newsCalls)
	}
}

func TestGetOrLoad_MismatchedTypeReloads(t *testing.T) {
	// A key holding one type does not satisfy a read expecting another.
	c := New()
	if _, err := GetOrLoad(context.Background(), c, KeyDirectory, TTLModerate, func(ctx context.Context) (string, error) {
		return "s", nil
	}); err != nil {
		t.Fatal(err)
	}

	got, err := GetOrLoad(context.Background(), c, KeyDirectory, TTLModerate, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("GetOrLoad() error: %v", err)
	}
	if got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}
