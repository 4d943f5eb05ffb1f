// Package storagetest holds the behaviour every storage.Provider must share.
package storagetest

import (
	"errors"
	"testing"

	"github.com/AadarshCanCode/Wellnest/internal/storage"
)

// Run exercises p, which must be initialized and empty.
func Run(t *testing.T, p storage.Provider) {
	t.Helper()

	t.Run("missing key", func(t *testing.T) {
		if _, err := p.Get("absent"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
		if err := p.Delete("absent"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("put get overwrite delete", func(t *testing.T) {
		if err := p.Put("k", []byte(`{"a":1}`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := p.Put("k", []byte(`{"a":2}`)); err != nil {
			t.Fatalf("Put() overwrite error = %v", err)
		}
		got, err := p.Get("k")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != `{"a":2}` {
			t.Errorf("Get() = %s, want {\"a\":2}", got)
		}
		if err := p.Delete("k"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := p.Get("k"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get() after delete error = %v", err)
		}
	})

	t.Run("keys sorted", func(t *testing.T) {
		for _, k := range []string{"b", "a", "c"} {
			if err := p.Put(k, []byte(`true`)); err != nil {
				t.Fatalf("Put(%s) error = %v", k, err)
			}
		}
		keys, err := p.Keys()
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
			t.Errorf("Keys() = %v, want [a b c]", keys)
		}
	})
}
