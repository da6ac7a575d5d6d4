package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"workable/internal/config"
	"workable/internal/service"
	"workable/internal/session"
)

func testStore(t *testing.T) (*session.Store, *config.Config) {
	t.Helper()
	cfg := &config.Config{Dir: t.TempDir()}
	return session.NewStore(cfg), cfg
}

func TestStore_LoadAbsent(t *testing.T) {
	store, _ := testStore(t)

	if _, ok := store.Load(); ok {
		t.Error("expected no session in empty dir")
	}
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	store, _ := testStore(t)

	want := service.Session{
		Identity: service.Identity{ID: "7", Email: "a@b.co", Name: "Ada"},
		Token:    "tok-1",
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, ok := store.Load()
	if !ok {
		t.Fatal("expected session after save")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, _ := testStore(t)

	first := service.Session{
		Identity: service.Identity{ID: "1", Email: "a@b.co"},
		Token:    "tok-1",
	}
	second := service.Session{
		Identity: service.Identity{ID: "2", Email: "a@b.co"},
		Token:    "tok-2",
	}
	if err := store.Save(first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save(second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, ok := store.Load()
	if !ok {
		t.Fatal("expected session after save")
	}
	if got != second {
		t.Errorf("expected overwritten session %+v, got %+v", second, got)
	}
}

func TestStore_MissingTokenMeansAbsent(t *testing.T) {
	store, cfg := testStore(t)

	if err := os.WriteFile(cfg.IdentityPath(), []byte(`{"id":"1","email":"a@b.co"}`), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, ok := store.Load(); ok {
		t.Error("expected no session without a token file")
	}
}

func TestStore_CorruptIdentitySelfHeals(t *testing.T) {
	store, cfg := testStore(t)

	if err := os.WriteFile(cfg.TokenPath(), []byte("tok-1"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.WriteFile(cfg.IdentityPath(), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, ok := store.Load(); ok {
		t.Fatal("expected corrupt identity to read as absent")
	}

	// The corrupt record must be cleared so the next load starts clean.
	if _, err := os.Stat(cfg.TokenPath()); !os.IsNotExist(err) {
		t.Error("expected token file to be cleared")
	}
	if _, err := os.Stat(cfg.IdentityPath()); !os.IsNotExist(err) {
		t.Error("expected identity file to be cleared")
	}
}

func TestStore_Clear(t *testing.T) {
	store, cfg := testStore(t)

	sess := service.Session{
		Identity: service.Identity{ID: "1", Email: "a@b.co"},
		Token:    "tok-1",
	}
	if err := store.Save(sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	store.Clear()

	if _, ok := store.Load(); ok {
		t.Error("expected no session after clear")
	}
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	for _, e := range entries {
		t.Errorf("unexpected file after clear: %s", filepath.Join(cfg.Dir, e.Name()))
	}
}
