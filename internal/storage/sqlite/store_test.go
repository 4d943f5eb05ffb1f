package sqlite

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/AadarshCanCode/Wellnest/internal/storage"
	"github.com/AadarshCanCode/Wellnest/internal/storage/storagetest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "wellnest.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Provider(t *testing.T) {
	storagetest.Run(t, newTestStore(t))
}

func TestStore_ReopenKeepsData(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put("k", []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened := NewStore(s.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("k")
	if err != nil || string(got) != `[1,2,3]` {
		t.Errorf("Get() = %s, %v", got, err)
	}
}

func TestStore_LoadUninitialized(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.db"))
	if err := s.Load(); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Load() error = %v", err)
	}
}

func TestStore_InitIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	current, latest, err := s.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	if current != latest || current < 1 {
		t.Errorf("SchemaVersion() = %d, %d", current, latest)
	}
}

func TestStore_LoadData(t *testing.T) {
	data, err := storage.LoadData(newTestStore(t))
	if err != nil {
		t.Fatalf("LoadData() error = %v", err)
	}
	if len(data.Habits) != 0 {
		t.Errorf("fresh store has habits: %v", data.Habits)
	}
}
