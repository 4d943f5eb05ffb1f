package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// JSONStore keeps every key in a single JSON object on disk. Values must
// themselves be valid JSON.
type JSONStore struct {
	path   string
	values map[string]json.RawMessage
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

// Init creates the file if missing. An existing file is loaded, not replaced.
func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	values := make(map[string]json.RawMessage)
	if err := s.save(values); err != nil {
		return err
	}
	s.values = values
	return nil
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'wellnest init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	values := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse storage: %w", err)
		}
	}
	s.values = values
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save(values map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// temp file + rename keeps the store readable if the write is interrupted
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.values == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *JSONStore) Put(key string, value []byte) error {
	if s.values == nil {
		return fmt.Errorf("storage not loaded")
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	next := s.cloneValues()
	next[key] = append(json.RawMessage(nil), value...)
	if err := s.save(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

func (s *JSONStore) Delete(key string) error {
	if s.values == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.values[key]; !ok {
		return ErrNotFound
	}
	next := s.cloneValues()
	delete(next, key)
	if err := s.save(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// cloneValues copies the key map so a failed write leaves s.values as persisted.
func (s *JSONStore) cloneValues() map[string]json.RawMessage {
	next := make(map[string]json.RawMessage, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	return next
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.values == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
