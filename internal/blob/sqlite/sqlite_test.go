package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "raijai.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "transactions_v5"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "transactions_v5", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get(ctx, "transactions_v5")
	if err != nil || !ok || string(got) != `[]` {
		t.Fatalf("expected [] back, got %q ok=%v err=%v", got, ok, err)
	}

	if err := s.Set(ctx, "transactions_v5", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = s.Get(ctx, "transactions_v5")
	if string(got) != `[{"id":1}]` {
		t.Fatalf("expected overwrite, got %q", got)
	}

	if err := s.Delete(ctx, "transactions_v5"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "transactions_v5"); ok {
		t.Fatalf("expected key gone after delete")
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "raijai.db")
	ctx := context.Background()

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Set(ctx, "darkMode", []byte("true")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(ctx, "darkMode")
	if err != nil || !ok || string(got) != "true" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", got, ok, err)
	}
}
