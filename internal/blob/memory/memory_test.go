package memory

import (
	"context"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "user_v5"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "user_v5", []byte(`{"name":"Somsak"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get(ctx, "user_v5")
	if err != nil || !ok {
		t.Fatalf("expected present key, got ok=%v err=%v", ok, err)
	}
	if string(got) != `{"name":"Somsak"}` {
		t.Fatalf("unexpected value %q", got)
	}

	// Overwrite replaces the previous value.
	if err := s.Set(ctx, "user_v5", []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _, _ = s.Get(ctx, "user_v5")
	if string(got) != `{}` {
		t.Fatalf("expected overwrite, got %q", got)
	}

	if err := s.Delete(ctx, "user_v5"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "user_v5"); ok {
		t.Fatalf("expected key gone after delete")
	}
	// Deleting an absent key is not an error.
	if err := s.Delete(ctx, "user_v5"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestStoreCopiesValues(t *testing.T) {
	s := New()
	ctx := context.Background()

	value := []byte("abc")
	if err := s.Set(ctx, "k", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'x'

	got, _, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("store must not alias caller buffers, got %q", got)
	}
	got[0] = 'y'
	again, _, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("reads must not alias stored buffers, got %q", again)
	}
}
